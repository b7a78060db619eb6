package export

import (
	"strings"
	"unicode"
)

const (
	fileNamePrefix = "Informe_Paciente_"
	// NoName replaces an empty patient name in file names.
	NoName = "SinNombre"
)

// FileName returns the export file name for a patient: Informe_Paciente_<name>.<ext>.
// Characters that cannot appear in a file name become '_'; an empty name
// becomes SinNombre.
func FileName(patientName, ext string) string {
	name := sanitize(patientName)
	if name == "" {
		name = NoName
	}
	return fileNamePrefix + name + "." + ext
}

func sanitize(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return '_'
		default:
			return r
		}
	}, strings.TrimSpace(name))
	// "." and ".." alone are not usable names.
	if strings.Trim(name, ".") == "" {
		return ""
	}
	return name
}
