package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/components"
	"github.com/mrsinham/reportforge/internal/report"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the form
	SummaryActionBack SummaryAction = iota
	// SummaryActionSubmit validates and records the submission
	SummaryActionSubmit
	// SummaryActionExport writes the report files
	SummaryActionExport
	// SummaryActionSaveDraft saves the form to a YAML file
	SummaryActionSaveDraft
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack      = "back"
	actionSubmit    = "submit"
	actionExport    = "export"
	actionSaveDraft = "save_draft"
	actionCancel    = "cancel"
)

// previewLines caps the document lines shown on the summary.
const previewLines = 18

var (
	summaryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true).
				MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	previewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	previewMoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Italic(true)
)

// Status is the outcome of the last action, shown above the action list.
type Status struct {
	Text string
	OK   bool
}

// SummaryScreen shows the record and the document preview, and lets the
// user pick what to do with them.
type SummaryScreen struct {
	form      *huh.Form
	rec       report.Record
	doc       report.Document
	labels    report.Labels
	formats   []string
	status    Status
	helpPanel *components.HelpPanel
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(rec report.Record, doc report.Document, labels report.Labels, formats []string, status Status) *SummaryScreen {
	s := &SummaryScreen{
		rec:       rec,
		doc:       doc,
		labels:    labels,
		formats:   formats,
		status:    status,
		helpPanel: components.NewHelpPanel(nil),
		action:    actionSubmit,
	}
	s.helpPanel.SetField("action")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Submit", actionSubmit),
					huh.NewOption("Download ("+strings.Join(formats, ", ")+")", actionExport),
					huh.NewOption("Save draft to YAML", actionSaveDraft),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/2, 0)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Report")

	panelWidth := 45
	left := summaryPanelStyle.Width(panelWidth).Render(s.buildRecordPanel())
	right := summaryPanelStyle.Width(panelWidth + 20).Render(s.buildPreview())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	parts := []string{title, "", panels, ""}
	if st := components.Status(s.status.Text, s.status.OK); st != "" {
		parts = append(parts, st, "")
	}
	parts = append(parts, s.form.View(), "", s.helpPanel.View(), "", "Enter: Select action | Esc: Back")

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// buildRecordPanel lists the record fields with the report labels.
func (s *SummaryScreen) buildRecordPanel() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Patient"))
	sb.WriteString("\n\n")

	age := ""
	birth := ""
	if s.rec.HasBirthDate() {
		birth = report.FormatDate(s.rec.BirthDate)
		age = fmt.Sprintf("%d %s", s.rec.Age(), s.labels.AgeUnit)
	}

	fields := []struct {
		label string
		value string
	}{
		{s.labels.CurrentDate, report.FormatDate(s.rec.CurrentDate())},
		{s.labels.Name, s.rec.Name},
		{s.labels.IdentityNumber, s.rec.IdentityNumber},
		{s.labels.BirthDate, birth},
		{s.labels.Sex, s.labels.SexLabel(s.rec.Sex)},
		{s.labels.Age, age},
		{s.labels.Study, s.rec.Study},
	}

	for _, f := range fields {
		sb.WriteString(summaryLabelStyle.Render(f.label + " "))
		sb.WriteString(summaryValueStyle.Render(f.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildPreview renders the first lines of the document as plain text.
func (s *SummaryScreen) buildPreview() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Document Preview"))
	sb.WriteString("\n\n")

	lines := s.doc.Lines()
	shown := min(len(lines), previewLines)
	sb.WriteString(previewStyle.Render(strings.Join(lines[:shown], "\n")))
	if rest := len(lines) - shown; rest > 0 {
		sb.WriteString("\n")
		sb.WriteString(previewMoreStyle.Render(fmt.Sprintf("... %d more lines", rest)))
	}

	return sb.String()
}

// Done returns true if the form was completed
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionSubmit:
		return SummaryActionSubmit
	case actionExport:
		return SummaryActionExport
	case actionSaveDraft:
		return SummaryActionSaveDraft
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionSubmit
	}
}
