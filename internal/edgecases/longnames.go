package edgecases

import (
	"math/rand/v2"
	"strings"
)

// LongNameMinLength is the shortest name GenerateLongName returns.
const LongNameMinLength = 64

var longNameParts = []string{
	"MARÍA DE LOS ÁNGELES", "JUAN SEBASTIÁN", "ALEXANDROPOULOS", "VANDENBERGHE",
	"FERNÁNDEZ DE CÓRDOBA", "MONTGOMERY", "SCHWARZENEGGER", "CHRISTODOULOPOULOS",
	"ZAMBRANO VILLAVICENCIO", "DEL PILAR",
}

// GenerateLongName generates a patient name of at least LongNameMinLength
// characters.
func GenerateLongName(rng *rand.Rand) string {
	var parts []string
	n := 0
	for n < LongNameMinLength {
		p := longNameParts[rng.IntN(len(longNameParts))]
		parts = append(parts, p)
		n += len(p) + 1
	}
	return strings.Join(parts, " ")
}

// GenerateLongIdentityNumber generates a 14 to 20 digit identity number,
// which the form rejects.
func GenerateLongIdentityNumber(rng *rand.Rand) string {
	n := 14 + rng.IntN(7)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte('0' + byte(rng.IntN(10)))
	}
	return sb.String()
}

// GenerateLongStudy generates a long study name
func GenerateLongStudy(rng *rand.Rand) string {
	studies := []string{
		"RESONANCIA MAGNÉTICA DE ENCÉFALO SIMPLE Y CONTRASTADA CON ESPECTROSCOPÍA Y TRACTOGRAFÍA",
		"TOMOGRAFÍA COMPUTADA DE ABDOMEN Y PELVIS TRIFÁSICA CON RECONSTRUCCIONES MULTIPLANARES",
		"ECOGRAFÍA DOPPLER COLOR DE MIEMBROS INFERIORES ARTERIAL Y VENOSA BILATERAL COMPARATIVA",
	}
	return studies[rng.IntN(len(studies))]
}
