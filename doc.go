// Package fluentcheck provides a small fluent validation framework: callers
// compose an ordered collection of rules against subject values, then
// evaluate them with defined short-circuit and severity semantics.
//
// # Architecture
//
// Three building blocks make up the core:
//   - Result    – immutable outcome of one rule: pass, or fail with a
//     message and a severity flag
//   - Rule      – interface with a single Evaluate() Result method;
//     RuleFunc adapts closures to it
//   - Validator – ordered rule sequence with fluent accumulation and a
//     memoized evaluation pass
//
// Evaluation is strictly sequential and fail-fast: rules run in insertion
// order, the first failure stops the pass and becomes the validator's
// outcome, and the outcome is cached so repeated queries never re-run rules.
// Only the first failing rule's message is retained.
//
// The per-family rule files (string_rules.go, numeric_rules.go, and so on)
// supply ready-made leaf rules; any type with an Evaluate() Result method
// can be registered alongside them.
//
// # Usage
//
//	v := fluentcheck.New().
//	    AddRule(fluentcheck.NonEmpty("name", name)).
//	    AddRuleWhen(func() bool { return strict }, fluentcheck.MinLen("name", name, 3))
//	fluentcheck.AddRuleForEach(v, tags, func(tag string) fluentcheck.Rule {
//	    return fluentcheck.MaxLen("tag", tag, 32)
//	})
//
//	if !v.IsValid() {
//	    if v.HasCriticalErrors() {
//	        // abort
//	    }
//	    log.Println(v.ErrorMessage())
//	}
//
// # Error Handling
//
// Validation failure is a normal outcome, not an exceptional one: rules
// signal it by returning a failing Result, never by panicking. For callers
// that prefer Go's error interface, (*Validator).Err returns nil or an
// *Error that works with errors.As; IsCritical and ExtractError inspect
// wrapped errors.
//
// # Concurrency
//
// A Validator is designed for single-owner, sequential use. Shared use
// requires external synchronization around the whole instance.
package fluentcheck
