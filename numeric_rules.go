package fluentcheck

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value T, min T) Rule {
	return RuleFunc(func() Result {
		if value < min {
			return Failuref("%s must be at least %v", field, min)
		}
		return Success()
	})
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value T, max T) Rule {
	return RuleFunc(func() Result {
		if value > max {
			return Failuref("%s must be at most %v", field, max)
		}
		return Success()
	})
}

// Between validates that a numeric value lies in the inclusive range
// [min, max].
func Between[T Numeric](field string, value T, min, max T) Rule {
	return RuleFunc(func() Result {
		if value < min || value > max {
			return Failuref("%s must be between %v and %v", field, min, max)
		}
		return Success()
	})
}

// Positive validates that a numeric value is greater than zero.
func Positive[T Numeric](field string, value T) Rule {
	return RuleFunc(func() Result {
		var zero T
		if value <= zero {
			return Failuref("%s must be positive", field)
		}
		return Success()
	})
}
