package validator

// Policy is the flat form of a rule chain: a minimum length plus flags for
// the optional decorators. It exists so chains can be described in requests,
// config, and database rows without an ownership graph.
type Policy struct {
	MinLength     uint
	RequireDigit  bool
	RequireCase   bool
	RequireSymbol bool
}

// DefaultPolicy returns the policy enforced when no other is given: 8+
// characters with a digit, mixed case, and a symbol.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:     8,
		RequireDigit:  true,
		RequireCase:   true,
		RequireSymbol: true,
	}
}

// FromPolicy folds a flat policy into a rule chain. The length check is always
// the base; enabled decorators wrap it in digit, case, symbol order. Wrapping
// order does not affect the verdict since every rule must hold.
func FromPolicy(p Policy) Validator {
	var chain Validator = NewLengthValidator(p.MinLength)
	if p.RequireDigit {
		chain = NewDigitValidator(chain)
	}
	if p.RequireCase {
		chain = NewCaseValidator(chain)
	}
	if p.RequireSymbol {
		chain = NewSymbolValidator(chain)
	}
	return chain
}

// FailedRules returns the names of the rules in p that password does not
// satisfy, in chain order (length, digit, case, symbol). An empty result means
// the full chain passes. Unlike chain evaluation this does not short-circuit;
// it is meant for diagnostics.
func FailedRules(p Policy, password string) []string {
	var failed []string
	if !NewLengthValidator(p.MinLength).Validate(password) {
		failed = append(failed, "length")
	}
	if p.RequireDigit && !HasDigit(password) {
		failed = append(failed, "digit")
	}
	if p.RequireCase && !HasMixedCase(password) {
		failed = append(failed, "case")
	}
	if p.RequireSymbol && !HasSymbol(password) {
		failed = append(failed, "symbol")
	}
	return failed
}
