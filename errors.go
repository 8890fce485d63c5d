package fluentcheck

import "errors"

// Error is the error-interface view of a failed validation, as produced by
// (*Validator).Err.
type Error struct {
	Message  string
	Critical bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// IsCritical reports whether err is, or wraps, a critical validation
// failure.
func IsCritical(err error) bool {
	var verr *Error
	return errors.As(err, &verr) && verr.Critical
}

// ExtractError returns the *Error carried by err, or nil when err is not a
// validation failure.
func ExtractError(err error) *Error {
	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
