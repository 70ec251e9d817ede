package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.HashPassword("acc-1", "s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "pbkdf2$sha512$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	if !h.VerifyPassword(hash, "acc-1", "s3cret") {
		t.Fatalf("expected verification success")
	}
	if h.VerifyPassword(hash, "acc-1", "wrong") {
		t.Fatalf("expected verification failure for wrong password")
	}
	if h.VerifyPassword(hash, "acc-2", "s3cret") {
		t.Fatalf("expected verification failure for wrong account identity")
	}
}

func TestPasswordHasher_DistinctHashes(t *testing.T) {
	h := NewPasswordHasher()

	h1, err := h.HashPassword("acc-1", "password-a")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.HashPassword("acc-1", "password-b")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("distinct passwords must not share a hash")
	}

	// Misma contraseña, cuentas distintas: la sal y la identidad separan
	// los hashes.
	h3, err := h.HashPassword("acc-2", "password-a")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h3 {
		t.Fatalf("same password across accounts must not share a hash")
	}
}

func TestPasswordHasher_LegacyBcryptFormat(t *testing.T) {
	h := NewPasswordHasher()

	legacy, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	if !h.VerifyPassword(string(legacy), "acc-1", "old-pass") {
		t.Fatalf("expected legacy bcrypt hash to verify")
	}
	if h.VerifyPassword(string(legacy), "acc-1", "other") {
		t.Fatalf("expected legacy bcrypt mismatch to fail")
	}
}

func TestPasswordHasher_MalformedStoredHash(t *testing.T) {
	h := NewPasswordHasher()

	for _, stored := range []string{
		"",
		"plaintext",
		"pbkdf2$sha512$notanumber$c2FsdA$aGFzaA",
		"pbkdf2$sha1$1000$c2FsdA$aGFzaA",
		"pbkdf2$sha512$1000$!!$aGFzaA",
	} {
		if h.VerifyPassword(stored, "acc-1", "whatever") {
			t.Fatalf("malformed hash %q must never verify", stored)
		}
	}
}
