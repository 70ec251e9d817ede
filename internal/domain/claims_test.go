package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeClaims_RoundTrip(t *testing.T) {
	claims := []Claim{
		{Type: ClaimTypeSubject, Value: "a1"},
		{Type: ClaimTypeEmail, Value: "user@example.com"},
		{Type: "role", Value: "admin"},
		{Type: "role", Value: "auditor"},
	}

	text, err := EncodeClaims(claims)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(text, "user@example.com") {
		t.Fatalf("encoded text missing value: %s", text)
	}

	decoded, err := DecodeClaims(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(claims) {
		t.Fatalf("expected %d claims, got %d", len(claims), len(decoded))
	}
	for i := range claims {
		if decoded[i] != claims[i] {
			t.Fatalf("claim %d: expected %+v, got %+v", i, claims[i], decoded[i])
		}
	}
}

func TestEncodeClaims_Empty(t *testing.T) {
	text, err := EncodeClaims(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeClaims(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected no claims, got %d", len(decoded))
	}
}

func TestDecodeClaims_Malformed(t *testing.T) {
	for _, input := range []string{"", "{not json", `{"type":"a"}`} {
		if _, err := DecodeClaims(input); !errors.Is(err, ErrClaimDecode) {
			t.Fatalf("input %q: expected ErrClaimDecode, got %v", input, err)
		}
	}
}
