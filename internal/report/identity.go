package report

import (
	"errors"
	"unicode/utf8"
)

// MsgInvalidIdentityNumber is shown when an identity number has the wrong length.
const MsgInvalidIdentityNumber = "identity number must have 10 or 13 digits"

// ErrInvalidIdentityNumber is returned when a record with a badly sized
// identity number is submitted.
var ErrInvalidIdentityNumber = errors.New("invalid identity number")

// ValidateIdentityNumber reports whether value has exactly 10 or 13 characters.
// Only the length is checked.
func ValidateIdentityNumber(value string) bool {
	n := utf8.RuneCountInString(value)
	return n == 10 || n == 13
}

// Validator validates identity numbers and remembers the message of the last
// failed check until a later check passes.
type Validator struct {
	message string
	invalid string
}

// NewValidator returns a validator reporting failures with msg.
// An empty msg falls back to MsgInvalidIdentityNumber.
func NewValidator(msg string) *Validator {
	if msg == "" {
		msg = MsgInvalidIdentityNumber
	}
	return &Validator{invalid: msg}
}

// Validate checks value, setting or clearing the message.
func (v *Validator) Validate(value string) bool {
	if ValidateIdentityNumber(value) {
		v.message = ""
		return true
	}
	v.message = v.invalid
	return false
}

// Message returns the current validation message, empty when the last check passed.
func (v *Validator) Message() string {
	return v.message
}
