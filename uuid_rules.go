package fluentcheck

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID validates standard UUID format with pre-validation to avoid
// expensive parsing.
func ValidUUID(field, value string) Rule {
	return RuleFunc(func() Result {
		fail := func() Result {
			return Failuref("%s must be a valid UUID", field)
		}

		if strings.TrimSpace(value) == "" {
			return fail()
		}

		// Fast rejection: check length and hyphen positions before parsing
		if len(value) != 36 {
			return fail()
		}
		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return fail()
		}

		if _, err := uuid.Parse(value); err != nil {
			return fail()
		}
		return Success()
	})
}

// NonNilUUID validates that a UUID is not the nil (all-zero) UUID.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return RuleFunc(func() Result {
		if value == uuid.Nil {
			return Failuref("%s must not be the nil UUID", field)
		}
		return Success()
	})
}
