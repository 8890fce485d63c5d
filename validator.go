package fluentcheck

// Validator accumulates rules and evaluates them as one composite check.
// Rules run in insertion order and evaluation stops at the first failure,
// whose Result becomes the validator's outcome verbatim. The outcome of the
// first evaluation pass is cached; repeated queries never re-run rules, and
// rules added after that first pass are invisible to the cached outcome
// (there is no cache invalidation).
//
// A Validator is meant for single-owner, sequential use. If one must be
// shared between goroutines, guard the whole instance with a mutex.
type Validator struct {
	rules   []Rule
	outcome *Result
}

// New returns an empty Validator. A Validator with no rules is valid.
func New() *Validator {
	return &Validator{}
}

// AddRule appends rule to the sequence and returns the receiver so calls can
// be chained. Nil rules are ignored.
func (v *Validator) AddRule(rule Rule) *Validator {
	if rule != nil {
		v.rules = append(v.rules, rule)
	}
	return v
}

// AddRuleWhen appends rule only when cond returns true. cond runs
// immediately at registration time, not during evaluation; a nil cond counts
// as true, making the call equivalent to AddRule.
func (v *Validator) AddRuleWhen(cond func() bool, rule Rule) *Validator {
	if cond == nil || cond() {
		return v.AddRule(rule)
	}
	return v
}

// AddRuleForEach appends one rule per item, in input order, each built by
// factory. Empty items and a nil factory are no-ops; nil factory results are
// skipped, so the appended subset keeps the input order of the items that
// produced a rule. It is a package-level function because methods cannot
// declare type parameters; it returns v so a fluent chain can continue.
func AddRuleForEach[T any](v *Validator, items []T, factory func(T) Rule) *Validator {
	if factory == nil {
		return v
	}
	for _, item := range items {
		v.AddRule(factory(item))
	}
	return v
}

// IsValid runs the rule sequence on first call and reports whether every
// rule passed. Subsequent calls read the cached outcome.
func (v *Validator) IsValid() bool {
	return v.evaluate().IsValid()
}

// ErrorMessage returns the first failing rule's message, or "" when the
// validator is valid. Like IsValid, it triggers evaluation if no pass has
// run yet.
func (v *Validator) ErrorMessage() string {
	return v.evaluate().ErrorMessage()
}

// HasCriticalErrors reports whether the failure that stopped evaluation was
// flagged as critical. It is false when the validator is valid.
func (v *Validator) HasCriticalErrors() bool {
	return v.evaluate().IsCritical()
}

// Err exposes the outcome through the error interface: nil when valid,
// otherwise an *Error carrying the failing rule's message and severity.
func (v *Validator) Err() error {
	res := v.evaluate()
	if res.IsValid() {
		return nil
	}
	return &Error{Message: res.ErrorMessage(), Critical: res.IsCritical()}
}

func (v *Validator) evaluate() Result {
	if v.outcome != nil {
		return *v.outcome
	}

	outcome := Success()
	for _, rule := range v.rules {
		if res := rule.Evaluate(); !res.IsValid() {
			outcome = res
			break
		}
	}

	v.outcome = &outcome
	return outcome
}
