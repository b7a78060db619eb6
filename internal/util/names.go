package util

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

var (
	// MaleFirstNames is the list of male first names used for sample patients
	MaleFirstNames = []string{
		"José", "Juan", "Luis", "Carlos", "Jorge", "Miguel", "Andrés", "Diego",
		"Fernando", "Santiago", "Mateo", "Sebastián", "Pablo", "Ricardo", "Esteban",
		"Francisco", "Javier", "Manuel", "Alejandro", "Gabriel", "Daniel", "Héctor",
	}

	// FemaleFirstNames is the list of female first names used for sample patients
	FemaleFirstNames = []string{
		"María", "Ana", "Lucía", "Sofía", "Valentina", "Camila", "Gabriela", "Daniela",
		"Paola", "Fernanda", "Carolina", "Andrea", "Isabel", "Verónica", "Patricia",
		"Mónica", "Rosa", "Elena", "Mariana", "Ximena", "Natalia", "Inés",
	}

	// LastNames is the list of last names used for sample patients
	LastNames = []string{
		"García", "Rodríguez", "Pérez", "López", "Sánchez", "Torres", "Ramírez",
		"Flores", "Morales", "Vásquez", "Castillo", "Moscoso", "Andrade", "Zambrano",
		"Cevallos", "Mendoza", "Vera", "Salazar", "Guerrero", "Espinoza", "Jaramillo",
		"Paredes", "Villacís", "Ortiz", "Córdova", "Herrera", "Chávez", "Benítez",
	}

	// Studies is the list of study names used for sample reports
	Studies = []string{
		"RX DE TÓRAX PA", "ECOGRAFÍA ABDOMINAL", "TC DE CRÁNEO SIMPLE",
		"RM DE RODILLA DERECHA", "ECOGRAFÍA PÉLVICA", "RX DE COLUMNA LUMBAR",
		"MAMOGRAFÍA BILATERAL", "TC DE ABDOMEN CONTRASTADA",
	}
)

// GeneratePatientName returns "FIRSTNAME LASTNAME LASTNAME", the way names
// are typed into the form.
//
// Sex should be "M" or "F". Invalid values default to "F".
// If rng is nil, uses shared default RNG.
func GeneratePatientName(sex string, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	firstNames := FemaleFirstNames
	if sex == "M" {
		firstNames = MaleFirstNames
	}

	return strings.Join([]string{
		firstNames[rng.IntN(len(firstNames))],
		LastNames[rng.IntN(len(LastNames))],
		LastNames[rng.IntN(len(LastNames))],
	}, " ")
}

// GenerateIdentityNumber returns a 10-digit identity number, or a 13-digit
// one (the 10 digits plus "001") one time in five.
func GenerateIdentityNumber(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	id := fmt.Sprintf("%02d%08d", 1+rng.IntN(24), rng.IntN(100_000_000))
	if rng.IntN(5) == 0 {
		id += "001"
	}
	return id
}

// GenerateBirthDate returns a birth date between 1 and 90 years before today.
func GenerateBirthDate(today time.Time, rng *rand.Rand) time.Time {
	if rng == nil {
		rng = defaultRNG
	}
	y, m, d := today.Date()
	start := time.Date(y-90, m, d, 0, 0, 0, 0, time.UTC)
	end := time.Date(y-1, m, d, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.IntN(days+1))
}

// GenerateStudy returns a random study name.
func GenerateStudy(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return Studies[rng.IntN(len(Studies))]
}

// Findings is the list of report lines used for sample reports
var Findings = []string{
	"Estructuras óseas de morfología y densidad conservadas.",
	"No se observan lesiones focales.",
	"Partes blandas sin alteraciones significativas.",
	"Silueta cardiaca de tamaño normal.",
	"Senos costofrénicos libres.",
	"Hígado de forma, tamaño y ecogenicidad normales.",
	"Vesícula biliar de paredes finas, sin cálculos.",
	"Riñones de tamaño y posición habituales.",
}

// GenerateFindings returns two to four distinct findings, one per line,
// with an empty line before the conclusion.
func GenerateFindings(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	perm := rng.Perm(len(Findings))
	n := 2 + rng.IntN(3)
	lines := make([]string, 0, n+2)
	for _, i := range perm[:n] {
		lines = append(lines, Findings[i])
	}
	lines = append(lines, "", "CONCLUSIÓN: estudio dentro de límites normales.")
	return strings.Join(lines, "\n")
}
