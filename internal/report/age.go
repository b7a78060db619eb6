package report

import "time"

// DeriveAge returns the number of full years elapsed between birth and today.
// A birth date after today yields 0.
func DeriveAge(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
