// Package wizard provides the interactive report form.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/components"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/screens"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/types"
	"github.com/mrsinham/reportforge/internal/export"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/rs/zerolog"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseForm Phase = iota
	PhaseSummary
	PhaseSaveDraft
	PhaseExporting
	PhaseComplete
	PhaseError
)

// Deps are the collaborators of a wizard session.
type Deps struct {
	Controller *report.Controller
	Exporter   *export.Exporter
	Labels     report.Labels
	Formats    []string
	OutputDir  string
	Logger     zerolog.Logger
}

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *types.FormState
	deps  Deps

	phase Phase

	patientScreen    *screens.PatientScreen
	summaryScreen    *screens.SummaryScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	// Save draft form
	saveDraftForm *huh.Form
	draftHelp     *components.HelpPanel
	draftPath     string

	// Outcome of the last summary action
	status screens.Status

	cancelExport context.CancelFunc

	width  int
	height int

	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a wizard editing state, or an empty form when state is nil.
func NewWizard(state *types.FormState, deps Deps) *Wizard {
	if state == nil {
		state = &types.FormState{}
	}
	if len(deps.Formats) == 0 {
		deps.Formats = []string{export.DefaultFormat}
	}

	w := &Wizard{
		state:     state,
		deps:      deps,
		phase:     PhaseForm,
		draftPath: "draft.yaml",
	}
	w.patientScreen = screens.NewPatientScreen(w.state, deps.Controller, deps.Labels)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.patientScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseForm:
		return w.updateForm(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveDraft:
		return w.updateSaveDraft(msg)
	case PhaseExporting:
		return w.updateExporting(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseForm:
		return w.patientScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveDraft:
		return w.viewSaveDraft()
	case PhaseExporting:
		return screens.ExportingView(w.deps.Formats)
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase { return w.phase }

// Status returns the outcome of the last summary action.
func (w *Wizard) Status() screens.Status { return w.status }

// Err returns the error the wizard ended with, if any.
func (w *Wizard) Err() error { return w.err }

// updateForm handles updates in the form phase.
func (w *Wizard) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.patientScreen.Update(msg)
	if ps, ok := model.(*screens.PatientScreen); ok {
		w.patientScreen = ps
	}

	if w.patientScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.patientScreen.Done() {
		if _, err := ApplyForm(w.deps.Controller, *w.state); err != nil {
			// The form validates dates; anything left is shown on the summary.
			w.status = screens.Status{Text: err.Error()}
		}
		return w.transitionToSummary()
	}

	return w, cmd
}

// transitionToForm reopens the form on the current values.
func (w *Wizard) transitionToForm() (tea.Model, tea.Cmd) {
	w.phase = PhaseForm
	w.patientScreen = screens.NewPatientScreen(w.state, w.deps.Controller, w.deps.Labels)
	return w, w.patientScreen.Init()
}

// transitionToSummary moves to the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	rec := w.deps.Controller.Record()
	w.summaryScreen = screens.NewSummaryScreen(rec, w.deps.Exporter.Build(rec), w.deps.Labels, w.deps.Formats, w.status)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			w.status = screens.Status{}
			return w.transitionToForm()

		case screens.SummaryActionSubmit:
			w.submit()
			return w.transitionToSummary()

		case screens.SummaryActionExport:
			return w.startExport()

		case screens.SummaryActionSaveDraft:
			return w.transitionToSaveDraft()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// submit validates the record through the controller and records the outcome.
// The form stays editable whatever the result.
func (w *Wizard) submit() {
	res := w.deps.Controller.Submit()
	if res.Accepted() {
		w.status = screens.Status{Text: "Submission accepted", OK: true}
		return
	}
	w.status = screens.Status{Text: res.Message}
}

// transitionToSaveDraft shows the save draft dialog.
func (w *Wizard) transitionToSaveDraft() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveDraft
	w.draftHelp = components.NewHelpPanel(nil)
	w.draftHelp.SetField("draft_path")

	w.saveDraftForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("draft_path").
				Title("Save draft to").
				Description("Enter the path for the YAML draft file").
				Value(&w.draftPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveDraftForm.Init()
}

// updateSaveDraft handles updates in the save draft phase.
func (w *Wizard) updateSaveDraft(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveDraftForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveDraftForm = f
	}

	if w.saveDraftForm.State == huh.StateCompleted {
		return w.saveDraft()
	}

	return w, cmd
}

func (w *Wizard) saveDraft() (tea.Model, tea.Cmd) {
	if err := SaveToYAML(w.state, w.draftPath); err != nil {
		w.deps.Logger.Error().Err(err).Str("path", w.draftPath).Msg("saving draft failed")
		w.phase = PhaseError
		w.errorScreen = screens.NewErrorScreen("Saving draft failed", err)
		return w, nil
	}
	w.deps.Logger.Info().Str("path", w.draftPath).Msg("draft saved")
	w.status = screens.Status{Text: "Draft saved to " + w.draftPath, OK: true}
	return w.transitionToSummary()
}

// viewSaveDraft renders the save draft dialog.
func (w *Wizard) viewSaveDraft() string {
	title := components.TitleStyle.Render("Save Draft")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveDraftForm.View(),
		"",
		w.draftHelp.View(),
		"",
		"Enter: Save | Esc: Back",
	)
}

// startExport writes the report files in the background. Export does not
// require a valid identity number; only submission does.
func (w *Wizard) startExport() (tea.Model, tea.Cmd) {
	w.phase = PhaseExporting

	ctx, cancel := context.WithCancel(context.Background())
	w.cancelExport = cancel

	return w, exportCmd(ctx, w.deps.Exporter, w.deps.Controller.Record(), w.deps.Formats, w.deps.OutputDir)
}

// exportCmd runs the export and reports a CompletionMsg or an ErrorMsg.
func exportCmd(ctx context.Context, ex *export.Exporter, rec report.Record, formats []string, outputDir string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		paths, err := ex.ExportRecord(ctx, rec, formats)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		files := make([]screens.ExportedFile, 0, len(paths))
		for _, p := range paths {
			f := screens.ExportedFile{Path: p}
			if info, err := os.Stat(p); err == nil {
				f.Size = info.Size()
			}
			files = append(files, f)
		}

		dir := outputDir
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}

		return screens.CompletionMsg{
			Files:     files,
			Duration:  time.Since(start),
			OutputDir: dir,
		}
	}
}

// updateExporting waits for the export command to report back.
func (w *Wizard) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.CompletionMsg:
		w.stopExport()
		w.deps.Logger.Info().Strs("paths", msg.Paths()).Msg("report exported")
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		w.stopExport()
		w.deps.Logger.Error().Err(msg.Error).Msg("export failed")
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen("Export failed", msg.Error)
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.stopExport()
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, nil
}

func (w *Wizard) stopExport() {
	if w.cancelExport != nil {
		w.cancelExport()
		w.cancelExport = nil
	}
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	if w.completionScreen.Quit() {
		w.finished = true
		return w, tea.Quit
	}
	if w.completionScreen.Done() {
		w.status = screens.Status{Text: "Report exported", OK: true}
		return w.transitionToSummary()
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Quit() {
		w.finished = true
		return w, tea.Quit
	}
	if w.errorScreen.Done() {
		w.err = nil
		w.status = screens.Status{Text: w.errorScreen.Error().Error()}
		return w.transitionToSummary()
	}

	return w, cmd
}

// Run starts the interactive report form.
// If fromDraft is provided, the form is prefilled from that YAML file.
func Run(fromDraft string, deps Deps) error {
	if err := deps.Validate(); err != nil {
		return err
	}

	var state *types.FormState

	if fromDraft != "" {
		absPath, err := filepath.Abs(fromDraft)
		if err != nil {
			return fmt.Errorf("resolving draft path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading draft: %w", err)
		}
		if _, err := ApplyForm(deps.Controller, *loaded); err != nil {
			return fmt.Errorf("loading draft: %w", err)
		}
		state = loaded
	}

	wizard := NewWizard(state, deps)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}

// ErrMissingDeps is returned by Validate when Deps lack a controller or exporter.
var ErrMissingDeps = errors.New("wizard needs a controller and an exporter")

// Validate checks that the required collaborators are set.
func (d Deps) Validate() error {
	if d.Controller == nil || d.Exporter == nil {
		return ErrMissingDeps
	}
	return nil
}
