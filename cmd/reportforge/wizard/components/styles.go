package components

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginBottom(1)

	// StatusOKStyle renders confirmations such as an accepted submission.
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// StatusErrorStyle renders rejections and validation messages.
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)
)

// Status renders msg in the OK or error style.
func Status(msg string, ok bool) string {
	if msg == "" {
		return ""
	}
	if ok {
		return StatusOKStyle.Render("✓ " + msg)
	}
	return StatusErrorStyle.Render("✗ " + msg)
}
