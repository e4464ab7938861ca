package utils

import (
	"testing"
)

func TestSignAndVerifySessionToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "9f2c8a1e-0000-1000-8000-000000000001"

	tok, err := SignSessionToken(userID, secret)
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	claims, err := VerifySessionToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifySessionToken error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestSessionTokenHasNoExpiry(t *testing.T) {
	t.Parallel()

	// Contrat historique : un token reste valable tant qu'il n'est pas
	// révoqué. Aucun claim d'expiration ne doit être posé.
	secret := []byte("super-secret")
	tok, err := SignSessionToken("u1", secret)
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	claims, err := VerifySessionToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifySessionToken error: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no expiry, got %v", claims.ExpiresAt)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := SignSessionToken("u2", []byte("right-secret"))
	if err != nil {
		t.Fatalf("SignSessionToken error: %v", err)
	}

	if _, err := VerifySessionToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerifySessionToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := VerifySessionToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
