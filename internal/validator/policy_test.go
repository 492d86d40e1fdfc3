package validator

import (
	"reflect"
	"testing"
)

func TestFromPolicyMatchesExplicitChain(t *testing.T) {
	chain := FromPolicy(Policy{
		MinLength:     8,
		RequireDigit:  true,
		RequireCase:   true,
		RequireSymbol: true,
	})
	explicit := NewSymbolValidator(NewCaseValidator(NewDigitValidator(NewLengthValidator(8))))

	for _, p := range []string{"Abc123!@#", "abc123!@#", "Abc123567", "short", ""} {
		if chain.Validate(p) != explicit.Validate(p) {
			t.Errorf("FromPolicy verdict differs from explicit chain for %q", p)
		}
	}
}

func TestFromPolicyLengthOnly(t *testing.T) {
	chain := FromPolicy(Policy{MinLength: 4})

	if !chain.Validate("abcd") {
		t.Error("length-only policy should pass a 4-char password")
	}
	if chain.Validate("abc") {
		t.Error("length-only policy should fail a 3-char password")
	}
}

func TestDefaultPolicy(t *testing.T) {
	chain := FromPolicy(DefaultPolicy())

	if !chain.Validate("Abc123!@#") {
		t.Error("default policy should accept a strong password")
	}
	if chain.Validate("password") {
		t.Error("default policy should reject a weak password")
	}
}

func TestFailedRules(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		password string
		want     []string
	}{
		{"Abc123!@#", nil},
		{"abc123!@#", []string{"case"}},
		{"Abc123567", []string{"symbol"}},
		{"Abcdef!@#", []string{"digit"}},
		{"A1!a", []string{"length"}},
		{"", []string{"length", "digit", "case", "symbol"}},
	}

	for _, tt := range tests {
		if got := FailedRules(p, tt.password); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FailedRules(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestFailedRulesAgreesWithChain(t *testing.T) {
	policies := []Policy{
		{MinLength: 8},
		{MinLength: 8, RequireDigit: true},
		{MinLength: 12, RequireCase: true, RequireSymbol: true},
		DefaultPolicy(),
	}
	passwords := []string{"Abc123!@#", "abc123!@#", "tiny", "", "LongEnoughPassword1?"}

	for _, p := range policies {
		chain := FromPolicy(p)
		for _, pw := range passwords {
			if chain.Validate(pw) != (len(FailedRules(p, pw)) == 0) {
				t.Errorf("policy %+v, password %q: chain and FailedRules disagree", p, pw)
			}
		}
	}
}
