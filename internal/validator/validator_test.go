package validator

import "testing"

func TestLengthValidator(t *testing.T) {
	tests := []struct {
		minLength uint
		password  string
		want      bool
	}{
		{8, "abc123!@#", true},
		{8, "abc123", false},
		{8, "exactly8", true},
		{0, "", true},
		{1, "", false},
		{3, "äöü", true}, // runes, not bytes
	}

	for _, tt := range tests {
		v := NewLengthValidator(tt.minLength)
		if got := v.Validate(tt.password); got != tt.want {
			t.Errorf("LengthValidator(%d).Validate(%q) = %v, want %v",
				tt.minLength, tt.password, got, tt.want)
		}
	}
}

func TestDigitValidator(t *testing.T) {
	v := NewDigitValidator(NewLengthValidator(8))

	if !v.Validate("abc123!@#") {
		t.Error("expected pass for password with digits")
	}
	if v.Validate("abcde!@#") {
		t.Error("expected fail for 8-char password without digits")
	}
	// Inner length failure short-circuits even when digits are present.
	if v.Validate("abc123") {
		t.Error("expected fail when inner length rule fails")
	}
}

func TestCaseValidator(t *testing.T) {
	v := NewCaseValidator(NewDigitValidator(NewLengthValidator(8)))

	if !v.Validate("Abc123!@#") {
		t.Error("expected pass for mixed-case password")
	}
	if v.Validate("abc123!@#") {
		t.Error("expected fail without uppercase")
	}
	if v.Validate("ABC123!@#") {
		t.Error("expected fail without lowercase")
	}
}

func TestSymbolValidator(t *testing.T) {
	v := NewSymbolValidator(NewCaseValidator(NewDigitValidator(NewLengthValidator(8))))

	if !v.Validate("Abc123!@#") {
		t.Error("expected pass for password with symbol")
	}
	if v.Validate("Abc123567") {
		t.Error("expected fail without symbol")
	}
}

func TestEmptyPasswordFailsChains(t *testing.T) {
	chains := []Validator{
		NewLengthValidator(1),
		NewDigitValidator(NewLengthValidator(8)),
		NewSymbolValidator(NewCaseValidator(NewDigitValidator(NewLengthValidator(8)))),
	}
	for i, c := range chains {
		if c.Validate("") {
			t.Errorf("chain %d: empty password should fail", i)
		}
	}
}

func TestWrappingOrderIrrelevant(t *testing.T) {
	a := NewDigitValidator(NewCaseValidator(NewSymbolValidator(NewLengthValidator(8))))
	b := NewSymbolValidator(NewCaseValidator(NewDigitValidator(NewLengthValidator(8))))

	passwords := []string{
		"Abc123!@#", "abc123!@#", "Abc123567", "abcde!@#", "short", "", "XyZ9?pqrs",
	}
	for _, p := range passwords {
		if a.Validate(p) != b.Validate(p) {
			t.Errorf("order changed verdict for %q", p)
		}
	}
}

func TestDuplicateRuleIdempotent(t *testing.T) {
	once := NewDigitValidator(NewLengthValidator(8))
	twice := NewDigitValidator(NewDigitValidator(NewLengthValidator(8)))

	for _, p := range []string{"Abc123!@#", "abcde!@#", "abc123", ""} {
		if once.Validate(p) != twice.Validate(p) {
			t.Errorf("duplicate digit rule changed verdict for %q", p)
		}
	}
}

func TestNilInnerPanics(t *testing.T) {
	constructors := map[string]func(){
		"digit":  func() { NewDigitValidator(nil) },
		"case":   func() { NewCaseValidator(nil) },
		"symbol": func() { NewSymbolValidator(nil) },
	}
	for name, construct := range constructors {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic for nil inner validator", name)
				}
			}()
			construct()
		}()
	}
}

func TestHasDigit(t *testing.T) {
	if !HasDigit("abc1") {
		t.Error("expected digit found")
	}
	if HasDigit("abc") || HasDigit("") {
		t.Error("expected no digit found")
	}
	// Non-ASCII digits do not count.
	if HasDigit("٣") {
		t.Error("arabic-indic digit should not satisfy the ASCII digit rule")
	}
}

func TestHasMixedCase(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"Ab", true},
		{"aB", true},
		{"ab", false},
		{"AB", false},
		{"", false},
		{"1234!@#$", false},
		{"Ärger", false}, // non-ASCII uppercase does not count
	}
	for _, tt := range tests {
		if got := HasMixedCase(tt.s); got != tt.want {
			t.Errorf("HasMixedCase(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestHasSymbol(t *testing.T) {
	for _, c := range SymbolSet {
		if !HasSymbol(string(c)) {
			t.Errorf("HasSymbol(%q) = false, want true", c)
		}
	}
	for _, s := range []string{"", "abcDEF123", "no-symbols_here", "~`+=|"} {
		if HasSymbol(s) {
			t.Errorf("HasSymbol(%q) = true, want false", s)
		}
	}
}
