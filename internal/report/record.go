package report

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO layout used for every date the record shows or accepts.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate is returned when a date string is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrBirthDateInFuture is returned when a birth date is after the record's current date.
	ErrBirthDateInFuture = errors.New("birth date is after the current date")
)

// Record is the patient data captured in one session.
//
// A Record is a value: the With methods return an updated copy and leave the
// receiver untouched. The current date is fixed by NewRecord and carried
// through every copy. Age is never stored; it is derived from BirthDate.
//
// The exported fields are for reading. Build records with NewRecord and the
// With methods, and replace a controller's record through Controller.Load;
// assigning BirthDate directly skips the future-date check.
type Record struct {
	today time.Time

	Name           string
	IdentityNumber string
	BirthDate      time.Time // zero until set
	Sex            Sex
	Study          string
	Body           string
}

// NewRecord returns an empty record dated on the calendar day of now.
func NewRecord(now time.Time) Record {
	return Record{today: dateOnly(now)}
}

// CurrentDate returns the date the record was created on.
func (r Record) CurrentDate() time.Time {
	return r.today
}

// HasBirthDate reports whether a birth date has been set.
func (r Record) HasBirthDate() bool {
	return !r.BirthDate.IsZero()
}

// Age returns the full years between the birth date and the current date,
// or 0 when no birth date is set.
func (r Record) Age() int {
	if !r.HasBirthDate() {
		return 0
	}
	return DeriveAge(r.BirthDate, r.today)
}

func (r Record) WithName(name string) Record {
	r.Name = name
	return r
}

func (r Record) WithIdentityNumber(id string) Record {
	r.IdentityNumber = id
	return r
}

// WithBirthDate returns a copy with the given birth date, rejecting dates
// after the current date.
func (r Record) WithBirthDate(birth time.Time) (Record, error) {
	birth = dateOnly(birth)
	if birth.After(r.today) {
		return r, fmt.Errorf("%s: %w", birth.Format(DateLayout), ErrBirthDateInFuture)
	}
	r.BirthDate = birth
	return r, nil
}

// WithoutBirthDate returns a copy with no birth date, so Age reads 0.
func (r Record) WithoutBirthDate() Record {
	r.BirthDate = time.Time{}
	return r
}

func (r Record) WithSex(s Sex) Record {
	r.Sex = s
	return r
}

func (r Record) WithStudy(study string) Record {
	r.Study = study
	return r
}

func (r Record) WithBody(body string) Record {
	r.Body = body
	return r
}

// ParseDate parses an ISO date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected YYYY-MM-DD): %w", ErrInvalidDate, s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or an empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
