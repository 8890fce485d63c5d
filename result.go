package fluentcheck

import "fmt"

// Result is the outcome of evaluating a single rule. It is an immutable
// value: construct it with Success, Failure or CriticalFailure and read it
// through the accessors. A passing result carries no message and is never
// critical; a failing result always carries a diagnostic message.
type Result struct {
	valid    bool
	message  string
	critical bool
}

// Success returns a passing result.
func Success() Result {
	return Result{valid: true}
}

// Failure returns a failing result with ordinary (recoverable) severity.
func Failure(message string) Result {
	return Result{message: message}
}

// Failuref returns a failing result with a fmt.Sprintf-formatted message.
func Failuref(format string, args ...any) Result {
	return Failure(fmt.Sprintf(format, args...))
}

// CriticalFailure returns a failing result flagged as critical.
func CriticalFailure(message string) Result {
	return Result{message: message, critical: true}
}

// CriticalFailuref returns a critical failure with a formatted message.
func CriticalFailuref(format string, args ...any) Result {
	return CriticalFailure(fmt.Sprintf(format, args...))
}

// IsValid reports whether the rule passed.
func (r Result) IsValid() bool {
	return r.valid
}

// ErrorMessage returns the diagnostic message, or "" for a passing result.
func (r Result) ErrorMessage() string {
	return r.message
}

// IsCritical reports whether the failure was flagged as critical. It is
// always false for a passing result.
func (r Result) IsCritical() bool {
	return r.critical
}
