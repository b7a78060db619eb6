package report

import (
	"fmt"
	"sort"
	"strings"
)

// Labels holds the fixed texts of a report in one language.
type Labels struct {
	Title           string
	CurrentDate     string
	Name            string
	IdentityNumber  string
	BirthDate       string
	Sex             string
	Age             string
	AgeUnit         string
	Study           string
	Report          string
	Closing         string
	Male            string
	Female          string
	InvalidIdentity string
}

var labelSets = map[string]Labels{
	"en": {
		Title:           "Patient Report",
		CurrentDate:     "Current Date:",
		Name:            "Patient Name:",
		IdentityNumber:  "ID Number:",
		BirthDate:       "Birth Date:",
		Sex:             "Sex:",
		Age:             "Age:",
		AgeUnit:         "years",
		Study:           "Study:",
		Report:          "Report:",
		Closing:         "SINCERELY",
		Male:            "Male",
		Female:          "Female",
		InvalidIdentity: MsgInvalidIdentityNumber,
	},
	"es": {
		Title:           "Informe del Paciente",
		CurrentDate:     "Fecha Actual:",
		Name:            "Nombre del Paciente:",
		IdentityNumber:  "Cédula:",
		BirthDate:       "Fecha de Nacimiento:",
		Sex:             "Sexo:",
		Age:             "Edad:",
		AgeUnit:         "años",
		Study:           "Estudio:",
		Report:          "Informe:",
		Closing:         "ATENTAMENTE",
		Male:            "Masculino",
		Female:          "Femenino",
		InvalidIdentity: "La cédula debe tener 10 o 13 dígitos.",
	},
}

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// LabelsFor returns the label set for lang ("en" or "es").
func LabelsFor(lang string) (Labels, error) {
	l, ok := labelSets[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return Labels{}, fmt.Errorf("unsupported language %q (valid: %s)", lang, strings.Join(Languages(), ", "))
	}
	return l, nil
}

// Languages lists the supported language codes.
func Languages() []string {
	langs := make([]string, 0, len(labelSets))
	for k := range labelSets {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

// SexLabel returns the label for s, or an empty string when unset.
func (l Labels) SexLabel(s Sex) string {
	switch s {
	case SexMale:
		return l.Male
	case SexFemale:
		return l.Female
	default:
		return ""
	}
}
