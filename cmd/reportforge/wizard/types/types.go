// Package types holds the form state shared by the wizard and its screens.
package types

// FormState holds the raw values bound to the report form fields.
// Values are kept as typed by the user; they are parsed when pushed to the
// record controller.
type FormState struct {
	Name      string
	ID        string
	BirthDate string // YYYY-MM-DD, empty until set
	Sex       string // "M", "F" or empty
	Study     string
	Report    string
}

// IsEmpty reports whether no field has been filled in.
func (f FormState) IsEmpty() bool {
	return f == FormState{}
}
