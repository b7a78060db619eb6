package screens

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/components"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/types"
	"github.com/mrsinham/reportforge/internal/report"
)

// PatientScreen is the report form: patient identity, study and findings.
type PatientScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	state     *types.FormState
	ctrl      *report.Controller
	labels    report.Labels
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewPatientScreen creates the form bound to state. The identity message is
// shown as the number is typed; ctrl receives the number when the field is
// left. An invalid number never blocks the form.
func NewPatientScreen(state *types.FormState, ctrl *report.Controller, labels report.Labels) *PatientScreen {
	s := &PatientScreen{
		helpPanel: components.NewHelpPanel(nil),
		state:     state,
		ctrl:      ctrl,
		labels:    labels,
	}
	today := ctrl.Record().CurrentDate()

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(trimLabel(labels.CurrentDate)).
				Description(report.FormatDate(today)),

			huh.NewInput().
				Key("name").
				Title(trimLabel(labels.Name)).
				Value(&state.Name),

			huh.NewInput().
				Key("identity_number").
				Title(trimLabel(labels.IdentityNumber)).
				DescriptionFunc(s.identityMessage, &state.ID).
				CharLimit(13).
				Value(&state.ID).
				Validate(s.syncIdentityNumber),

			huh.NewInput().
				Key("birth_date").
				Title(trimLabel(labels.BirthDate)).
				Description("YYYY-MM-DD").
				Value(&state.BirthDate).
				Validate(birthDateValidator(today)),

			huh.NewNote().
				Title(trimLabel(labels.Age)).
				DescriptionFunc(s.ageText, &state.BirthDate),

			huh.NewSelect[string]().
				Key("sex").
				Title(trimLabel(labels.Sex)).
				Options(
					huh.NewOption("-", ""),
					huh.NewOption(labels.Male, report.SexMale.Code()),
					huh.NewOption(labels.Female, report.SexFemale.Code()),
				).
				Value(&state.Sex),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("study").
				Title(trimLabel(labels.Study)).
				Value(&state.Study),

			huh.NewText().
				Key("report").
				Title(trimLabel(labels.Report)).
				Lines(10).
				CharLimit(0).
				Value(&state.Report),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// identityMessage returns the message for the typed identity number, empty
// while the field is empty or the number is valid. It only reads state.
func (s *PatientScreen) identityMessage() string {
	if s.state.ID == "" || report.ValidateIdentityNumber(s.state.ID) {
		return ""
	}
	return s.labels.InvalidIdentity
}

// syncIdentityNumber hands the field value to the controller, including an
// emptied field. It always returns nil so export stays possible.
func (s *PatientScreen) syncIdentityNumber(id string) error {
	s.ctrl.SetIdentityNumber(id)
	return nil
}

func (s *PatientScreen) ageText() string {
	birth, err := report.ParseDate(strings.TrimSpace(s.state.BirthDate))
	if err != nil {
		return "-"
	}
	today := s.ctrl.Record().CurrentDate()
	if birth.After(today) {
		return "-"
	}
	return fmt.Sprintf("%d %s", report.DeriveAge(birth, today), s.labels.AgeUnit)
}

// birthDateValidator accepts an empty value or a YYYY-MM-DD date not after today.
func birthDateValidator(today time.Time) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		birth, err := report.ParseDate(s)
		if err != nil {
			return errors.New("invalid date format, use YYYY-MM-DD")
		}
		if birth.After(today) {
			return report.ErrBirthDateInFuture
		}
		return nil
	}
}

// trimLabel drops the trailing colon of report labels for form titles.
func trimLabel(l string) string {
	return strings.TrimSuffix(l, ":")
}

// Init implements tea.Model
func (s *PatientScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *PatientScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/2, msg.Height/3)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *PatientScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render(strings.ToUpper(s.labels.Title))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Continue | Esc: Cancel",
	)
}

// Done returns true if the form was completed
func (s *PatientScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *PatientScreen) Cancelled() bool { return s.cancelled }

// State returns the form values.
func (s *PatientScreen) State() *types.FormState { return s.state }
