package edgecases

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// IDFormat represents different identity number shapes
type IDFormat int

const (
	IDShort       IDFormat = iota // e.g., "171234567", rejected
	IDWithDashes                  // e.g., "17-1234567-8", rejected
	IDWithSpaces                  // e.g., "1712 345 678", rejected
	IDWithLetters                 // e.g., "A1B2C3D4E5", accepted
	IDPassport                    // e.g., "PA12345678901", accepted
	IDMultibyte                   // e.g., "Ñ123456789", ten characters, accepted
)

// GenerateVariedIdentityNumber generates an identity number in the specified format
func GenerateVariedIdentityNumber(format IDFormat, rng *rand.Rand) string {
	switch format {
	case IDShort:
		return fmt.Sprintf("%09d", rng.IntN(1_000_000_000))
	case IDWithDashes:
		return fmt.Sprintf("%02d-%07d-%d", 1+rng.IntN(24), rng.IntN(10_000_000), rng.IntN(10))
	case IDWithSpaces:
		return fmt.Sprintf("%04d %03d %03d", rng.IntN(10000), rng.IntN(1000), rng.IntN(1000))
	case IDWithLetters:
		letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		var sb strings.Builder
		for i := 0; i < 10; i++ {
			if i%2 == 0 {
				sb.WriteByte(letters[rng.IntN(len(letters))])
			} else {
				sb.WriteByte('0' + byte(rng.IntN(10)))
			}
		}
		return sb.String()
	case IDPassport:
		return fmt.Sprintf("PA%011d", rng.IntN(100_000_000_000))
	case IDMultibyte:
		return fmt.Sprintf("Ñ%09d", rng.IntN(1_000_000_000))
	default:
		return fmt.Sprintf("%010d", rng.IntN(10_000_000_000))
	}
}

// GenerateRandomVariedIdentityNumber randomly selects a format
func GenerateRandomVariedIdentityNumber(rng *rand.Rand) string {
	format := IDFormat(rng.IntN(6))
	return GenerateVariedIdentityNumber(format, rng)
}
