package crypto

import (
	"testing"
	"time"
)

func TestMintToken(t *testing.T) {
	token, err := MintToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("MintToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("MintToken() returned empty string")
	}
}

func TestParseTokenValid(t *testing.T) {
	secret := "test-secret"
	userID := int64(42)

	token, err := MintToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("MintToken() unexpected error: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken() unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("ParseToken() UserID = %d, want %d", claims.UserID, userID)
	}
	if claims.Issuer != "passcheck" {
		t.Errorf("ParseToken() Issuer = %q, want %q", claims.Issuer, "passcheck")
	}
}

func TestParseTokenInvalid(t *testing.T) {
	if _, err := ParseToken("not-a-valid-token", "test-secret"); err == nil {
		t.Error("ParseToken() expected error for invalid token")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := MintToken(42, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("MintToken() unexpected error: %v", err)
	}

	if _, err := ParseToken(token, "wrong-secret"); err == nil {
		t.Error("ParseToken() expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := MintToken(42, "test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("MintToken() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ParseToken(token, "test-secret"); err == nil {
		t.Error("ParseToken() expected error for expired token")
	}
}
