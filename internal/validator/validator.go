// Package validator implements composable password strength rules.
//
// A rule chain is built by wrapping a base LengthValidator in zero or more
// decorators (digit, case, symbol). Evaluation is innermost-first: a decorator
// only applies its own rule after its inner chain has passed, so the first
// failing rule short-circuits the whole chain.
//
// Chains are immutable after construction and safe for concurrent use.
package validator

import "unicode/utf8"

// SymbolSet contains the characters accepted by SymbolValidator. The
// generator's symbol pool uses the same set so generated passwords satisfy
// symbol rules.
const SymbolSet = "!@#$%^&*(){}[]?<>"

// Validator reports whether a password satisfies a rule chain.
type Validator interface {
	Validate(password string) bool
}

// LengthValidator is the base of every chain. It passes when the password
// contains at least minLength characters (runes, not bytes).
type LengthValidator struct {
	minLength uint
}

// NewLengthValidator creates a LengthValidator requiring minLength characters.
func NewLengthValidator(minLength uint) *LengthValidator {
	return &LengthValidator{minLength: minLength}
}

// Validate reports whether the password is long enough.
func (v *LengthValidator) Validate(password string) bool {
	return uint(utf8.RuneCountInString(password)) >= v.minLength
}

// DigitValidator requires the inner chain to pass and the password to contain
// at least one ASCII digit.
type DigitValidator struct {
	inner Validator
}

// NewDigitValidator wraps inner with a digit requirement. Panics if inner is nil.
func NewDigitValidator(inner Validator) *DigitValidator {
	mustInner(inner)
	return &DigitValidator{inner: inner}
}

// Validate evaluates the inner chain first, then the digit rule.
func (v *DigitValidator) Validate(password string) bool {
	if !v.inner.Validate(password) {
		return false
	}
	return HasDigit(password)
}

// CaseValidator requires the inner chain to pass and the password to contain
// both an ASCII lowercase and an ASCII uppercase letter.
type CaseValidator struct {
	inner Validator
}

// NewCaseValidator wraps inner with a mixed-case requirement. Panics if inner is nil.
func NewCaseValidator(inner Validator) *CaseValidator {
	mustInner(inner)
	return &CaseValidator{inner: inner}
}

// Validate evaluates the inner chain first, then the mixed-case rule.
func (v *CaseValidator) Validate(password string) bool {
	if !v.inner.Validate(password) {
		return false
	}
	return HasMixedCase(password)
}

// SymbolValidator requires the inner chain to pass and the password to contain
// at least one character from SymbolSet.
type SymbolValidator struct {
	inner Validator
}

// NewSymbolValidator wraps inner with a symbol requirement. Panics if inner is nil.
func NewSymbolValidator(inner Validator) *SymbolValidator {
	mustInner(inner)
	return &SymbolValidator{inner: inner}
}

// Validate evaluates the inner chain first, then the symbol rule.
func (v *SymbolValidator) Validate(password string) bool {
	if !v.inner.Validate(password) {
		return false
	}
	return HasSymbol(password)
}

// mustInner rejects nil inner validators at construction time. A nil inner is
// a programming error, not a runtime condition.
func mustInner(inner Validator) {
	if inner == nil {
		panic("validator: nil inner validator")
	}
}

// HasDigit reports whether s contains at least one ASCII digit.
func HasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}

// HasMixedCase reports whether s contains both an ASCII lowercase and an ASCII
// uppercase letter. Classification is deliberately ASCII-only; non-ASCII runes
// never satisfy the rule.
func HasMixedCase(s string) bool {
	var hasLower, hasUpper bool
	for i := 0; i < len(s) && !(hasLower && hasUpper); i++ {
		switch {
		case s[i] >= 'a' && s[i] <= 'z':
			hasLower = true
		case s[i] >= 'A' && s[i] <= 'Z':
			hasUpper = true
		}
	}
	return hasLower && hasUpper
}

// HasSymbol reports whether s contains at least one character from SymbolSet.
func HasSymbol(s string) bool {
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(SymbolSet); j++ {
			if s[i] == SymbolSet[j] {
				return true
			}
		}
	}
	return false
}
