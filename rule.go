package fluentcheck

// Rule is a single, independent validation check. Implementations close over
// whatever subject value they validate and signal failure by returning a
// failing Result, never by panicking. Evaluate must be free of side effects;
// a Validator invokes each rule at most once per evaluation pass.
type Rule interface {
	Evaluate() Result
}

// RuleFunc adapts a plain function to the Rule interface. Every built-in
// rule constructor in this package returns a RuleFunc closure.
type RuleFunc func() Result

// Evaluate calls f.
func (f RuleFunc) Evaluate() Result {
	return f()
}

// Critical wraps rule so that any failure it reports is promoted to critical
// severity. Passing results pass through unchanged.
func Critical(rule Rule) Rule {
	return RuleFunc(func() Result {
		res := rule.Evaluate()
		if res.IsValid() || res.IsCritical() {
			return res
		}
		return CriticalFailure(res.ErrorMessage())
	})
}
