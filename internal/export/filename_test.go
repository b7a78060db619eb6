package export

import "testing"

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want string
	}{
		{"Juan Perez", "docx", "Informe_Paciente_Juan Perez.docx"},
		{"", "docx", "Informe_Paciente_SinNombre.docx"},
		{"   ", "docx", "Informe_Paciente_SinNombre.docx"},
		{"  Ana  ", "dcm", "Informe_Paciente_Ana.dcm"},
		{"José Núñez", "docx", "Informe_Paciente_José Núñez.docx"},
		{"a/b\\c", "docx", "Informe_Paciente_a_b_c.docx"},
		{`x:*?"<>|y`, "docx", "Informe_Paciente_x_______y.docx"},
		{"..", "docx", "Informe_Paciente_SinNombre.docx"},
		{"line\nbreak", "sc.dcm", "Informe_Paciente_line_break.sc.dcm"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FileName(tt.name, tt.ext); got != tt.want {
				t.Errorf("FileName(%q, %q) = %q, want %q", tt.name, tt.ext, got, tt.want)
			}
		})
	}
}
