// Package edgecases produces awkward but loadable form values for sample
// drafts: accented or unsafe names, identity numbers of unusual shapes,
// very old birth dates and empty fields.
package edgecases

import (
	"errors"
	"fmt"
	"strings"
)

// EdgeCaseType names a family of awkward form values.
type EdgeCaseType string

const (
	SpecialChars  EdgeCaseType = "special-chars"
	LongNames     EdgeCaseType = "long-names"
	MissingFields EdgeCaseType = "missing-fields"
	OldDates      EdgeCaseType = "old-dates"
	VariedIDs     EdgeCaseType = "varied-ids"
)

var descriptions = map[EdgeCaseType]string{
	SpecialChars:  "accents, apostrophes and file name reserved characters in the name",
	LongNames:     "names over 64 characters, identity numbers of 14+ digits, long study names",
	MissingFields: "one to three fields left empty",
	OldDates:      "birth dates over a century ago or on 29 February",
	VariedIDs:     "identity numbers with letters, dashes, spaces or the wrong length",
}

// ErrUnknownType is returned by ParseTypes for a name not in AllEdgeCaseTypes.
var ErrUnknownType = errors.New("unknown edge case type")

// AllEdgeCaseTypes returns every edge case type in display order.
func AllEdgeCaseTypes() []EdgeCaseType {
	return []EdgeCaseType{SpecialChars, LongNames, MissingFields, OldDates, VariedIDs}
}

// Description returns a one-line summary of the values t produces.
func (t EdgeCaseType) Description() string {
	return descriptions[t]
}

// ParseTypes parses a comma-separated list such as "special-chars,old-dates".
// Duplicates are kept once, in first-seen order.
func ParseTypes(input string) ([]EdgeCaseType, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	var (
		result []EdgeCaseType
		seen   = make(map[EdgeCaseType]bool)
	)
	for _, p := range strings.Split(input, ",") {
		t := EdgeCaseType(strings.ToLower(strings.TrimSpace(p)))
		if _, ok := descriptions[t]; !ok {
			return nil, fmt.Errorf("%w %q, valid types: %v", ErrUnknownType, p, AllEdgeCaseTypes())
		}
		if !seen[t] {
			seen[t] = true
			result = append(result, t)
		}
	}
	return result, nil
}

// Config holds edge case generation settings
type Config struct {
	Percentage int // chance, 0-100, that a sample gets edge case values
	Types      []EdgeCaseType
}

// Validate checks the percentage range and that types are set when enabled.
func (c Config) Validate() error {
	switch {
	case c.Percentage < 0 || c.Percentage > 100:
		return fmt.Errorf("edge-cases percentage must be 0-100, got %d", c.Percentage)
	case c.Percentage > 0 && len(c.Types) == 0:
		return errors.New("edge-cases enabled but no types specified")
	}
	return nil
}

// IsEnabled reports whether any sample can get edge case values.
func (c Config) IsEnabled() bool {
	return c.Percentage > 0 && len(c.Types) > 0
}

// HasType reports whether t is enabled.
func (c Config) HasType(t EdgeCaseType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}
