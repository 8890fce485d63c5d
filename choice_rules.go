package fluentcheck

// InList validates that a value is one of the allowed values.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return RuleFunc(func() Result {
		for _, a := range allowed {
			if value == a {
				return Success()
			}
		}
		return Failuref("%s must be one of: %v", field, allowed)
	})
}

// NotInList validates that a value is none of the forbidden values.
func NotInList[T comparable](field string, value T, forbidden []T) Rule {
	return RuleFunc(func() Result {
		for _, f := range forbidden {
			if value == f {
				return Failuref("%s must not be one of: %v", field, forbidden)
			}
		}
		return Success()
	})
}
