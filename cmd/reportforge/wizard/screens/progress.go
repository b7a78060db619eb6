package screens

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/components"
)

// ExportedFile is one file written by an export.
type ExportedFile struct {
	Path string
	Size int64
}

// CompletionMsg is sent when the export completes successfully
type CompletionMsg struct {
	Files     []ExportedFile // in format order
	Duration  time.Duration
	OutputDir string // absolute when it could be resolved
}

// Paths returns the path of every exported file.
func (m CompletionMsg) Paths() []string {
	paths := make([]string, len(m.Files))
	for i, f := range m.Files {
		paths[i] = f.Path
	}
	return paths
}

// TotalSize returns the summed size of the exported files in bytes.
func (m CompletionMsg) TotalSize() int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Size
	}
	return n
}

// ErrorMsg is sent when the export fails
type ErrorMsg struct {
	Error error
}

var (
	exportingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	fileNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	fileSizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

const resultHint = "Enter: Back to summary | q: Exit"

// ExportingView renders the wait message shown while files are written.
func ExportingView(formats []string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Exporting report..."),
		exportingStyle.Render("Formats: "+strings.Join(formats, ", ")),
		"",
		hintStyle.Render("Press Ctrl+C to cancel"),
	)
}

// resultKeys holds the exit state shared by the result screens: enter or esc
// leave the screen, q or ctrl+c exit the wizard.
type resultKeys struct {
	done bool
	quit bool
}

func (k *resultKeys) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter", "esc":
		k.done = true
	case "ctrl+c", "q":
		k.done = true
		k.quit = true
		return tea.Quit
	}
	return nil
}

// Done returns true if the user left the screen
func (k *resultKeys) Done() bool { return k.done }

// Quit returns true if the user asked to exit the wizard
func (k *resultKeys) Quit() bool { return k.quit }

// CompletionScreen lists the exported files.
type CompletionScreen struct {
	resultKeys
	msg CompletionMsg
}

// NewCompletionScreen creates a new completion screen
func NewCompletionScreen(msg CompletionMsg) *CompletionScreen {
	return &CompletionScreen{msg: msg}
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	var sb strings.Builder

	sb.WriteString(successStyle.Render(fmt.Sprintf("✓ Report exported in %.2fs", s.msg.Duration.Seconds())))
	sb.WriteString("\n\n")

	for _, f := range s.msg.Files {
		sb.WriteString("  • ")
		sb.WriteString(fileNameStyle.Render(filepath.Base(f.Path)))
		sb.WriteString(" ")
		sb.WriteString(fileSizeStyle.Render(humanize.Bytes(uint64(f.Size))))
		sb.WriteString("\n")
	}
	if len(s.msg.Files) > 1 {
		sb.WriteString(fileSizeStyle.Render("  total " + humanize.Bytes(uint64(s.msg.TotalSize()))))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(components.SubtitleStyle.Render("Saved in " + s.msg.OutputDir))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render(resultHint))

	return sb.String()
}

// ErrorScreen displays a failed export or draft save
type ErrorScreen struct {
	resultKeys
	title string
	err   error
}

// NewErrorScreen creates a new error screen headed by title
func NewErrorScreen(title string, err error) *ErrorScreen {
	return &ErrorScreen{title: title, err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		failureStyle.Render("✗ "+s.title),
		"",
		"  "+s.err.Error(),
		"",
		hintStyle.Render(resultHint),
	)
}

// Error returns the error
func (s *ErrorScreen) Error() error {
	return s.err
}
