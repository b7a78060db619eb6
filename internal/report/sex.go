package report

import (
	"fmt"
	"strings"
)

// Sex is the patient sex captured by the form.
type Sex int

const (
	SexUnset Sex = iota
	SexMale
	SexFemale
)

// Code returns the single-letter code used in drafts and DICOM (M/F).
func (s Sex) Code() string {
	switch s {
	case SexMale:
		return "M"
	case SexFemale:
		return "F"
	default:
		return ""
	}
}

// String returns the English label.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return ""
	}
}

// ParseSex parses codes and labels in English or Spanish, ignoring case.
// An empty string parses to SexUnset.
func ParseSex(s string) (Sex, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return SexUnset, nil
	case "M", "MALE", "MASCULINO":
		return SexMale, nil
	case "F", "FEMALE", "FEMENINO":
		return SexFemale, nil
	default:
		return SexUnset, fmt.Errorf("invalid sex: %s (valid: M, F)", s)
	}
}
