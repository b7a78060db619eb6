package edgecases

import (
	"math/rand/v2"
	"time"

	"github.com/mrsinham/reportforge/internal/report"
)

// GenerateOldBirthDate generates a birth date 100 to 120 years before today
func GenerateOldBirthDate(today time.Time, rng *rand.Rand) string {
	years := 100 + rng.IntN(21)
	d := time.Date(today.Year()-years, time.Month(1+rng.IntN(12)), 1+rng.IntN(28), 0, 0, 0, 0, time.UTC)
	return report.FormatDate(d)
}

// GenerateLeapDayBirthDate generates a 29 February birth date in one of the
// last 25 leap years.
func GenerateLeapDayBirthDate(today time.Time, rng *rand.Rand) string {
	year := today.Year()
	if !isLeap(year) || today.Before(time.Date(year, time.March, 1, 0, 0, 0, 0, today.Location())) {
		year--
	}
	for !isLeap(year) {
		year--
	}
	year -= 4 * rng.IntN(25)
	for !isLeap(year) {
		year -= 4
	}
	return report.FormatDate(time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC))
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
