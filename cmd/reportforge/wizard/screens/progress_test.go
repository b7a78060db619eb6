package screens

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCompletionMsg_Totals(t *testing.T) {
	msg := CompletionMsg{Files: []ExportedFile{
		{Path: "/out/Informe_Paciente_Ana.docx", Size: 1500},
		{Path: "/out/Informe_Paciente_Ana.dcm", Size: 500},
	}}

	if got := msg.TotalSize(); got != 2000 {
		t.Errorf("TotalSize: got %d, want 2000", got)
	}
	paths := msg.Paths()
	if len(paths) != 2 || paths[1] != "/out/Informe_Paciente_Ana.dcm" {
		t.Errorf("Paths: got %v", paths)
	}
}

func TestCompletionScreen_View(t *testing.T) {
	s := NewCompletionScreen(CompletionMsg{
		Files:     []ExportedFile{{Path: "/out/Informe_Paciente_Ana.docx", Size: 2048}},
		Duration:  1500 * time.Millisecond,
		OutputDir: "/out",
	})

	view := s.View()
	for _, want := range []string{"Informe_Paciente_Ana.docx", "2.0 kB", "1.50s", "/out"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q:\n%s", want, view)
		}
	}
}

func TestResultScreens_Keys(t *testing.T) {
	tests := []struct {
		key      tea.KeyMsg
		wantDone bool
		wantQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, true, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, true, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			s := NewErrorScreen("Export failed", errors.New("disk full"))
			_, cmd := s.Update(tt.key)
			if s.Done() != tt.wantDone || s.Quit() != tt.wantQuit {
				t.Errorf("Done/Quit: got %v/%v, want %v/%v", s.Done(), s.Quit(), tt.wantDone, tt.wantQuit)
			}
			if (cmd != nil) != tt.wantQuit {
				t.Errorf("Quit command: got %v", cmd != nil)
			}
		})
	}
}
