package fluentcheck

// RequiredSlice validates that a slice has at least one element.
func RequiredSlice[T any](field string, value []T) Rule {
	return RuleFunc(func() Result {
		if len(value) == 0 {
			return Failuref("%s must not be empty", field)
		}
		return Success()
	})
}

func MinItems[T any](field string, value []T, min int) Rule {
	return RuleFunc(func() Result {
		if len(value) < min {
			return Failuref("%s must have at least %d items", field, min)
		}
		return Success()
	})
}

func MaxItems[T any](field string, value []T, max int) Rule {
	return RuleFunc(func() Result {
		if len(value) > max {
			return Failuref("%s must have at most %d items", field, max)
		}
		return Success()
	})
}

// RequiredMap validates that a map has at least one entry.
func RequiredMap[K comparable, V any](field string, value map[K]V) Rule {
	return RuleFunc(func() Result {
		if len(value) == 0 {
			return Failuref("%s must not be empty", field)
		}
		return Success()
	})
}
