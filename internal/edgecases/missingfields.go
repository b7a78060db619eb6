package edgecases

import "math/rand/v2"

// OptionalFields lists the draft keys a sample can leave empty.
var OptionalFields = []string{
	"name",
	"identity_number",
	"birth_date",
	"sex",
	"study",
	"report",
}

// SelectFieldsToClear returns count distinct fields, in random order.
func SelectFieldsToClear(rng *rand.Rand, count int) []string {
	if count >= len(OptionalFields) {
		return OptionalFields
	}
	result := make([]string, 0, count)
	for _, i := range rng.Perm(len(OptionalFields))[:count] {
		result = append(result, OptionalFields[i])
	}
	return result
}
