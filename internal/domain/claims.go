package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Claim es una aserción tipada sobre el sujeto autenticado.
// Una secuencia de claims está ordenada y admite tipos repetidos.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Tipos de claim emitidos por este servicio.
const (
	ClaimTypeSubject = "sub"
	ClaimTypeEmail   = "email"
	ClaimTypeName    = "name"
)

var ErrClaimDecode = errors.New("claim data malformed")

// EncodeClaims serializa la secuencia de claims a JSON preservando orden
// y multiplicidad.
func EncodeClaims(claims []Claim) (string, error) {
	if claims == nil {
		claims = []Claim{}
	}
	data, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeClaims es la inversa exacta de EncodeClaims.
func DecodeClaims(text string) ([]Claim, error) {
	var claims []Claim
	if err := json.Unmarshal([]byte(text), &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClaimDecode, err)
	}
	return claims, nil
}
