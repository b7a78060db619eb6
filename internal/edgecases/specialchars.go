package edgecases

import (
	"math/rand/v2"
	"strings"
)

var specialCharFirstNamesMale = []string{
	"JOSÉ", "ÁNGEL", "IÑAKI", "JEAN-PIERRE", "FRANÇOIS",
	"JÜRGEN", "SØREN", "ŁUKASZ", "O'NEIL", "RAÚL",
}

var specialCharFirstNamesFemale = []string{
	"MARÍA JOSÉ", "ÁNGELA", "BEGOÑA", "MARIE-CLAIRE", "ZOË",
	"HÉLÈNE", "RENÉE", "SIÂN", "O'HARA", "INÉS",
}

var specialCharLastNames = []string{
	"MÜLLER-SCHMIDT", "O'CONNOR", "D'AGOSTINO", "GARCÍA-LÓPEZ",
	"PEÑAHERRERA", "ØSTERGAARD", "ÇELIK", "ŠKVORECKÝ",
	"DE LA TORRE", "PÉREZ-RODRÍGUEZ",
}

// unsafeLastNames carry characters that cannot appear in a file name.
var unsafeLastNames = []string{
	"ROSA/DEL CAMPO", "VEGA\\MORA", "ALBA: RÍOS", "CRUZ?", "\"EL TIGRE\"",
}

// GenerateSpecialCharName generates a patient name with accents, apostrophes
// or hyphens. One time in four a surname holds a file name reserved character.
func GenerateSpecialCharName(sex string, rng *rand.Rand) string {
	firstNames := specialCharFirstNamesMale
	if sex == "F" {
		firstNames = specialCharFirstNamesFemale
	}
	last := specialCharLastNames[rng.IntN(len(specialCharLastNames))]
	if rng.IntN(4) == 0 {
		last = unsafeLastNames[rng.IntN(len(unsafeLastNames))]
	}
	return strings.Join([]string{
		firstNames[rng.IntN(len(firstNames))],
		last,
	}, " ")
}
