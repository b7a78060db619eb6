package report

import (
	"time"

	"github.com/rs/zerolog"
)

// Controller owns the record of a form session. Every field change replaces
// the current record with an updated copy.
type Controller struct {
	record    Record
	validator *Validator
	logger    zerolog.Logger
}

// NewController creates a controller holding an empty record dated now.
// msg is the identity validation message; empty selects the English default.
func NewController(now time.Time, msg string, logger zerolog.Logger) *Controller {
	return &Controller{
		record:    NewRecord(now),
		validator: NewValidator(msg),
		logger:    logger,
	}
}

// Record returns the current record.
func (c *Controller) Record() Record {
	return c.record
}

// IdentityMessage returns the message of the last identity check.
func (c *Controller) IdentityMessage() string {
	return c.validator.Message()
}

func (c *Controller) SetName(name string) Record {
	c.record = c.record.WithName(name)
	return c.record
}

// SetIdentityNumber stores id and validates it, as the form does on every change.
func (c *Controller) SetIdentityNumber(id string) Record {
	c.validator.Validate(id)
	c.record = c.record.WithIdentityNumber(id)
	return c.record
}

// SetBirthDate parses and stores an ISO birth date. On error the record is unchanged.
func (c *Controller) SetBirthDate(s string) (Record, error) {
	birth, err := ParseDate(s)
	if err != nil {
		return c.record, err
	}
	rec, err := c.record.WithBirthDate(birth)
	if err != nil {
		return c.record, err
	}
	c.record = rec
	return c.record, nil
}

func (c *Controller) SetSex(s Sex) Record {
	c.record = c.record.WithSex(s)
	return c.record
}

func (c *Controller) SetStudy(study string) Record {
	c.record = c.record.WithStudy(study)
	return c.record
}

func (c *Controller) SetBody(body string) Record {
	c.record = c.record.WithBody(body)
	return c.record
}

// Load replaces every editable field with the ones from rec, keeping the
// controller's current date.
func (c *Controller) Load(rec Record) error {
	next := c.record.
		WithName(rec.Name).
		WithIdentityNumber(rec.IdentityNumber).
		WithSex(rec.Sex).
		WithStudy(rec.Study).
		WithBody(rec.Body).
		WithoutBirthDate()
	if rec.HasBirthDate() {
		var err error
		if next, err = next.WithBirthDate(rec.BirthDate); err != nil {
			return err
		}
	}
	c.validator.Validate(next.IdentityNumber)
	c.record = next
	return nil
}

// Submit validates the identity number through the controller's validator
// and reports the stored message on rejection.
func (c *Controller) Submit() Result {
	if !c.validator.Validate(c.record.IdentityNumber) {
		c.logger.Warn().
			Int("identity_length", len([]rune(c.record.IdentityNumber))).
			Msg("submission rejected")
		return Result{Status: Rejected, Message: c.validator.Message()}
	}
	LogAccepted(c.logger, c.record)
	return Result{Status: Accepted}
}
