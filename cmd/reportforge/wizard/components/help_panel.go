package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/help"
)

const (
	defaultHelpWidth = 60
	minHelpWidth     = 24
)

var (
	helpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	helpDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// HelpPanel shows the help text of the focused field.
type HelpPanel struct {
	texts map[string]help.HelpText
	field string
	width int
}

// NewHelpPanel returns a panel reading from texts; nil uses help.Texts.
func NewHelpPanel(texts map[string]help.HelpText) *HelpPanel {
	if texts == nil {
		texts = help.Texts
	}
	return &HelpPanel{texts: texts, width: defaultHelpWidth}
}

// SetField selects the field whose help is shown. Unknown keys, such as
// those of notes, show a hint instead.
func (h *HelpPanel) SetField(field string) {
	h.field = field
}

// Field returns the selected field key.
func (h *HelpPanel) Field() string {
	return h.field
}

// SetSize sets the outer width of the panel. Widths below 24 are ignored.
func (h *HelpPanel) SetSize(width, _ int) {
	if width < minHelpWidth {
		return
	}
	h.width = width
}

// View renders the panel: title, description, then one bullet per detail line.
func (h *HelpPanel) View() string {
	style := helpBorderStyle.Width(h.width - 2)

	text, ok := h.texts[h.field]
	if !ok {
		return style.Render(helpDetailStyle.Render("Tab to a field to see its help"))
	}

	lines := []string{helpTitleStyle.Render(text.Title), text.Description}
	if text.Details != "" {
		lines = append(lines, "")
		for _, d := range strings.Split(text.Details, "\n") {
			if d = strings.TrimSpace(d); d != "" {
				lines = append(lines, helpDetailStyle.Render("· "+d))
			}
		}
	}
	return style.Render(strings.Join(lines, "\n"))
}
