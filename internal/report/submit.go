package report

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Status is the outcome of a submission.
type Status int

const (
	Accepted Status = iota + 1
	Rejected
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is returned by Submit. Message is set only when Status is Rejected.
type Result struct {
	Status  Status
	Message string
}

// Accepted reports whether the record was accepted.
func (r Result) Accepted() bool {
	return r.Status == Accepted
}

// Err returns nil for an accepted result and ErrInvalidIdentityNumber,
// annotated with the message, otherwise.
func (r Result) Err() error {
	if r.Accepted() {
		return nil
	}
	return fmt.Errorf("%s: %w", r.Message, ErrInvalidIdentityNumber)
}

// Submit re-validates the identity number of rec. Nothing is stored or sent;
// callers log accepted records.
func Submit(rec Record) Result {
	if !ValidateIdentityNumber(rec.IdentityNumber) {
		return Result{Status: Rejected, Message: MsgInvalidIdentityNumber}
	}
	return Result{Status: Accepted}
}

// LogAccepted writes the fields of an accepted record to logger.
func LogAccepted(logger zerolog.Logger, rec Record) {
	logger.Info().
		Str("current_date", FormatDate(rec.CurrentDate())).
		Str("name", rec.Name).
		Str("identity_number", rec.IdentityNumber).
		Str("birth_date", FormatDate(rec.BirthDate)).
		Str("sex", rec.Sex.Code()).
		Int("age", rec.Age()).
		Str("study", rec.Study).
		Int("report_lines", len(SplitLines(rec.Body))).
		Msg("submission accepted")
}

