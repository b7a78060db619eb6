package edgecases

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/mrsinham/reportforge/internal/report"
)

var today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestApplicator_ShouldApply(t *testing.T) {
	config := Config{Percentage: 50, Types: []EdgeCaseType{SpecialChars}}
	rng := rand.New(rand.NewPCG(42, 42))
	app := NewApplicator(config, rng)

	applied := 0
	for i := 0; i < 100; i++ {
		if app.ShouldApply() {
			applied++
		}
	}
	// Should be roughly 50% (allow 30-70 range for randomness)
	if applied < 30 || applied > 70 {
		t.Errorf("50%% should apply ~50 times in 100, got %d", applied)
	}
}

func TestApplicator_SelectEdgeCaseType(t *testing.T) {
	config := Config{
		Percentage: 100,
		Types:      []EdgeCaseType{SpecialChars, LongNames},
	}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	selected := app.SelectEdgeCaseType()
	if selected != SpecialChars && selected != LongNames {
		t.Errorf("Selected type should be one of configured types: %v", selected)
	}
}

func TestApplicator_ApplyToName(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{SpecialChars}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	name := app.ApplyToName("M", "JUAN PEREZ")
	if name == "JUAN PEREZ" {
		t.Error("Edge case should modify the name")
	}
}

func TestApplicator_ApplyToName_Long(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{LongNames}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	if name := app.ApplyToName("F", "ANA"); len(name) < LongNameMinLength {
		t.Errorf("Long name %q has %d bytes, want at least %d", name, len(name), LongNameMinLength)
	}
}

func TestApplicator_ApplyToIdentityNumber(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{VariedIDs}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	id := app.ApplyToIdentityNumber("1712345678")
	if id == "1712345678" {
		t.Error("Edge case should modify the identity number")
	}
}

func TestApplicator_ApplyToIdentityNumber_Long(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{LongNames}}
	app := NewApplicator(config, rand.New(rand.NewPCG(3, 3)))

	for i := 0; i < 20; i++ {
		id := app.ApplyToIdentityNumber("1712345678")
		if report.ValidateIdentityNumber(id) {
			t.Errorf("Long identity number %q should be rejected", id)
		}
	}
}

func TestApplicator_ApplyToBirthDate(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{OldDates}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	for i := 0; i < 50; i++ {
		s := app.ApplyToBirthDate(today, "1990-01-01")
		birth, err := report.ParseDate(s)
		if err != nil {
			t.Fatalf("Birth date %q does not parse: %v", s, err)
		}
		if birth.After(today) {
			t.Errorf("Birth date %s is after %s", s, report.FormatDate(today))
		}
	}
}

func TestApplicator_ApplyToBirthDate_NotEnabled(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{SpecialChars}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	if got := app.ApplyToBirthDate(today, "1990-01-01"); got != "1990-01-01" {
		t.Errorf("Birth date changed to %q without old-dates", got)
	}
}

func TestApplicator_FieldsToClear(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{MissingFields}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	fields := app.FieldsToClear()
	if len(fields) == 0 || len(fields) > 3 {
		t.Errorf("Should clear 1-3 fields, got %v", fields)
	}
}

func TestApplicator_FieldsToClear_NotEnabled(t *testing.T) {
	config := Config{Percentage: 100, Types: []EdgeCaseType{SpecialChars}}
	app := NewApplicator(config, rand.New(rand.NewPCG(42, 42)))

	if fields := app.FieldsToClear(); len(fields) != 0 {
		t.Error("Should return empty when MissingFields is not enabled")
	}
}
