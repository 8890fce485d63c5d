package fluentcheck

import "strings"

// NonEmpty validates that a string is not empty after trimming whitespace.
// An empty value is reported as a critical failure naming the field.
func NonEmpty(field, value string) Rule {
	return RuleFunc(func() Result {
		if strings.TrimSpace(value) == "" {
			return CriticalFailuref("%s must not be empty", field)
		}
		return Success()
	})
}

func MinLen(field, value string, min int) Rule {
	return RuleFunc(func() Result {
		if len(value) < min {
			return Failuref("%s must be at least %d characters long", field, min)
		}
		return Success()
	})
}

func MaxLen(field, value string, max int) Rule {
	return RuleFunc(func() Result {
		if len(value) > max {
			return Failuref("%s must be at most %d characters long", field, max)
		}
		return Success()
	})
}

func Len(field, value string, exact int) Rule {
	return RuleFunc(func() Result {
		if len(value) != exact {
			return Failuref("%s must be exactly %d characters long", field, exact)
		}
		return Success()
	})
}

// HasPrefix validates that a string starts with the given prefix.
func HasPrefix(field, value, prefix string) Rule {
	return RuleFunc(func() Result {
		if !strings.HasPrefix(value, prefix) {
			return Failuref("%s must start with %q", field, prefix)
		}
		return Success()
	})
}
