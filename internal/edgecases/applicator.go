package edgecases

import (
	"math/rand/v2"
	"time"
)

// Applicator applies edge cases to generated form values
type Applicator struct {
	config Config
	rng    *rand.Rand
}

// NewApplicator creates a new edge case applicator
func NewApplicator(config Config, rng *rand.Rand) *Applicator {
	return &Applicator{config: config, rng: rng}
}

// ShouldApply returns true if edge cases should apply to this sample
func (a *Applicator) ShouldApply() bool {
	return a.rng.IntN(100) < a.config.Percentage
}

// SelectEdgeCaseType randomly selects which edge case type to apply
func (a *Applicator) SelectEdgeCaseType() EdgeCaseType {
	return a.config.Types[a.rng.IntN(len(a.config.Types))]
}

// ApplyToName applies edge cases to a patient name
func (a *Applicator) ApplyToName(sex, original string) string {
	switch a.SelectEdgeCaseType() {
	case SpecialChars:
		return GenerateSpecialCharName(sex, a.rng)
	case LongNames:
		return GenerateLongName(a.rng)
	default:
		return original
	}
}

// ApplyToIdentityNumber applies edge cases to an identity number
func (a *Applicator) ApplyToIdentityNumber(original string) string {
	switch a.SelectEdgeCaseType() {
	case VariedIDs:
		return GenerateRandomVariedIdentityNumber(a.rng)
	case LongNames:
		return GenerateLongIdentityNumber(a.rng)
	default:
		return original
	}
}

// ApplyToBirthDate applies edge cases to a birth date. The result is never
// after today.
func (a *Applicator) ApplyToBirthDate(today time.Time, original string) string {
	switch a.SelectEdgeCaseType() {
	case OldDates:
		if a.rng.IntN(2) == 0 {
			return GenerateOldBirthDate(today, a.rng)
		}
		return GenerateLeapDayBirthDate(today, a.rng)
	default:
		return original
	}
}

// ApplyToStudy applies edge cases to a study name
func (a *Applicator) ApplyToStudy(original string) string {
	if a.config.HasType(LongNames) && a.rng.IntN(4) == 0 {
		return GenerateLongStudy(a.rng)
	}
	return original
}

// FieldsToClear returns the form fields to leave empty for this sample
func (a *Applicator) FieldsToClear() []string {
	if !a.config.HasType(MissingFields) {
		return nil
	}
	count := 1 + a.rng.IntN(3) // Clear 1-3 fields
	return SelectFieldsToClear(a.rng, count)
}
