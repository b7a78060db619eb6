package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/screens"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/types"
	"github.com/mrsinham/reportforge/internal/export"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/rs/zerolog"
)

var sessionStart = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func newDeps(t *testing.T, outputDir string) Deps {
	t.Helper()
	labels, err := report.LabelsFor("en")
	if err != nil {
		t.Fatalf("LabelsFor: %v", err)
	}
	return Deps{
		Controller: report.NewController(sessionStart, labels.InvalidIdentity, zerolog.Nop()),
		Exporter: export.New(export.Options{
			OutputDir: outputDir,
			Labels:    labels,
			Signatory: report.DefaultSignatory,
			Now:       func() time.Time { return sessionStart },
			Logger:    zerolog.Nop(),
		}),
		Labels:    labels,
		Formats:   []string{"docx"},
		OutputDir: outputDir,
		Logger:    zerolog.Nop(),
	}
}

func TestApplyForm_FullForm(t *testing.T) {
	deps := newDeps(t, t.TempDir())

	rec, err := ApplyForm(deps.Controller, types.FormState{
		Name:      "  Juan Perez ",
		ID:        "0912345678",
		BirthDate: "2000-06-15",
		Sex:       "M",
		Study:     "RX DE TÓRAX PA",
		Report:    "Line1\nLine2",
	})
	if err != nil {
		t.Fatalf("ApplyForm failed: %v", err)
	}

	if rec.Name != "Juan Perez" {
		t.Errorf("Name: got %q, want %q", rec.Name, "Juan Perez")
	}
	if rec.IdentityNumber != "0912345678" {
		t.Errorf("IdentityNumber: got %q", rec.IdentityNumber)
	}
	if rec.Sex != report.SexMale {
		t.Errorf("Sex: got %v, want %v", rec.Sex, report.SexMale)
	}
	if rec.Age() != 24 {
		t.Errorf("Age: got %d, want 24", rec.Age())
	}
	if rec.Body != "Line1\nLine2" {
		t.Errorf("Body: got %q", rec.Body)
	}
	if !rec.CurrentDate().Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CurrentDate: got %v", rec.CurrentDate())
	}
	if deps.Controller.Record() != rec {
		t.Error("controller record was not replaced")
	}
}

func TestApplyForm_KeepsIdentityNumberAsTyped(t *testing.T) {
	deps := newDeps(t, t.TempDir())

	// Ten characters including the leading space.
	const padded = " 123456789"
	rec, err := ApplyForm(deps.Controller, types.FormState{ID: padded})
	if err != nil {
		t.Fatalf("ApplyForm failed: %v", err)
	}
	if rec.IdentityNumber != padded {
		t.Errorf("IdentityNumber: got %q, want %q", rec.IdentityNumber, padded)
	}

	result := deps.Controller.Submit()
	if !result.Accepted() {
		t.Errorf("Submit rejected a 10-character identity number: %+v", result)
	}
	if got := deps.Controller.IdentityMessage(); got != "" {
		t.Errorf("IdentityMessage: got %q, want empty", got)
	}
}

func TestApplyForm_ClearsBirthDate(t *testing.T) {
	deps := newDeps(t, t.TempDir())

	if _, err := ApplyForm(deps.Controller, types.FormState{BirthDate: "1990-01-01"}); err != nil {
		t.Fatalf("ApplyForm failed: %v", err)
	}
	rec, err := ApplyForm(deps.Controller, types.FormState{})
	if err != nil {
		t.Fatalf("ApplyForm failed: %v", err)
	}
	if rec.HasBirthDate() {
		t.Errorf("BirthDate should be cleared, got %v", rec.BirthDate)
	}
}

func TestApplyForm_Errors(t *testing.T) {
	tests := []struct {
		name    string
		form    types.FormState
		wantErr error
	}{
		{"invalid date", types.FormState{BirthDate: "15/06/2000"}, report.ErrInvalidDate},
		{"future date", types.FormState{BirthDate: "2024-06-16"}, report.ErrBirthDateInFuture},
		{"invalid sex", types.FormState{Sex: "X"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newDeps(t, t.TempDir())
			before := deps.Controller.Record()

			_, err := ApplyForm(deps.Controller, tt.form)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if deps.Controller.Record() != before {
				t.Error("controller record changed on error")
			}
		})
	}
}

func TestFormFromRecord(t *testing.T) {
	rec, err := report.NewRecord(sessionStart).
		WithName("Ana").
		WithIdentityNumber("1712345678").
		WithSex(report.SexFemale).
		WithBirthDate(time.Date(1985, 2, 28, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("WithBirthDate: %v", err)
	}

	got := FormFromRecord(rec)
	want := types.FormState{Name: "Ana", ID: "1712345678", Sex: "F", BirthDate: "1985-02-28"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if empty := FormFromRecord(report.NewRecord(sessionStart)); !empty.IsEmpty() {
		t.Errorf("empty record should give an empty form, got %+v", empty)
	}
}

func TestNewWizard_StartsOnForm(t *testing.T) {
	w := NewWizard(nil, newDeps(t, t.TempDir()))

	if w.Phase() != PhaseForm {
		t.Errorf("Phase: got %v, want %v", w.Phase(), PhaseForm)
	}
	if w.state == nil || !w.state.IsEmpty() {
		t.Errorf("state: got %+v, want an empty form", w.state)
	}
}

func TestWizard_SubmitRejectedThenAccepted(t *testing.T) {
	deps := newDeps(t, t.TempDir())
	w := NewWizard(&types.FormState{ID: "123456789"}, deps)
	if _, err := ApplyForm(deps.Controller, *w.state); err != nil {
		t.Fatalf("ApplyForm: %v", err)
	}
	w.transitionToSummary()

	w.submit()
	if w.Status().OK {
		t.Error("9-digit identity number should be rejected")
	}
	if w.Status().Text != report.MsgInvalidIdentityNumber {
		t.Errorf("Status: got %q, want %q", w.Status().Text, report.MsgInvalidIdentityNumber)
	}

	// The form stays editable after a rejection.
	w.state.ID = "1234567890"
	if _, err := ApplyForm(deps.Controller, *w.state); err != nil {
		t.Fatalf("ApplyForm: %v", err)
	}
	w.submit()
	if !w.Status().OK {
		t.Errorf("10-digit identity number should be accepted, got %q", w.Status().Text)
	}
}

func TestWizard_ExportCompletes(t *testing.T) {
	outDir := t.TempDir()
	deps := newDeps(t, outDir)
	w := NewWizard(&types.FormState{Name: "Juan Perez", ID: "123"}, deps)
	if _, err := ApplyForm(deps.Controller, *w.state); err != nil {
		t.Fatalf("ApplyForm: %v", err)
	}

	_, cmd := w.startExport()
	if w.Phase() != PhaseExporting {
		t.Fatalf("Phase: got %v, want %v", w.Phase(), PhaseExporting)
	}

	msg := cmd()
	done, ok := msg.(screens.CompletionMsg)
	if !ok {
		t.Fatalf("expected CompletionMsg, got %T (%v)", msg, msg)
	}
	paths := done.Paths()
	if len(paths) != 1 {
		t.Fatalf("Paths: got %v", paths)
	}
	wantPath := filepath.Join(outDir, "Informe_Paciente_Juan Perez.docx")
	if paths[0] != wantPath {
		t.Errorf("Path: got %q, want %q", paths[0], wantPath)
	}
	info, err := os.Stat(wantPath)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if done.TotalSize() != info.Size() {
		t.Errorf("TotalSize: got %d, want %d", done.TotalSize(), info.Size())
	}

	w.Update(msg)
	if w.Phase() != PhaseComplete {
		t.Errorf("Phase: got %v, want %v", w.Phase(), PhaseComplete)
	}

	w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if w.Phase() != PhaseSummary {
		t.Errorf("Phase after enter: got %v, want %v", w.Phase(), PhaseSummary)
	}
}

func TestWizard_ExportFailureIsShown(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	deps := newDeps(t, filepath.Join(blocker, "out"))
	w := NewWizard(nil, deps)

	_, cmd := w.startExport()
	msg := cmd()
	if _, ok := msg.(screens.ErrorMsg); !ok {
		t.Fatalf("expected ErrorMsg, got %T", msg)
	}

	w.Update(msg)
	if w.Phase() != PhaseError {
		t.Fatalf("Phase: got %v, want %v", w.Phase(), PhaseError)
	}
	var exportErr *export.Error
	if !errors.As(w.Err(), &exportErr) {
		t.Errorf("Err: got %v, want *export.Error", w.Err())
	}

	// Back on the summary the error stays visible as a status line.
	w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if w.Phase() != PhaseSummary {
		t.Errorf("Phase after enter: got %v, want %v", w.Phase(), PhaseSummary)
	}
	if w.Err() != nil {
		t.Errorf("Err should be cleared, got %v", w.Err())
	}
	if w.Status().OK || w.Status().Text == "" {
		t.Errorf("Status: got %+v, want the export error", w.Status())
	}
}

func TestWizard_SaveDraft(t *testing.T) {
	deps := newDeps(t, t.TempDir())
	state := &types.FormState{Name: "Ana", ID: "1712345678", Report: "ok"}
	w := NewWizard(state, deps)
	w.draftPath = filepath.Join(t.TempDir(), "draft.yaml")

	w.saveDraft()
	if w.Phase() != PhaseSummary {
		t.Fatalf("Phase: got %v, want %v", w.Phase(), PhaseSummary)
	}
	if !w.Status().OK {
		t.Errorf("Status: got %+v", w.Status())
	}

	loaded, err := LoadFromYAML(w.draftPath)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if *loaded != *state {
		t.Errorf("got %+v, want %+v", *loaded, *state)
	}
}

func TestWizard_SaveDraftFailure(t *testing.T) {
	w := NewWizard(nil, newDeps(t, t.TempDir()))
	w.draftPath = "/nonexistent/deeply/nested/draft.yaml"

	w.saveDraft()
	if w.Phase() != PhaseError {
		t.Errorf("Phase: got %v, want %v", w.Phase(), PhaseError)
	}
}

func TestDeps_Validate(t *testing.T) {
	if err := (Deps{}).Validate(); !errors.Is(err, ErrMissingDeps) {
		t.Errorf("Validate: got %v, want ErrMissingDeps", err)
	}
	if err := newDeps(t, t.TempDir()).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
