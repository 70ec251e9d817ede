package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"identity-api/internal/domain"
)

// TokenService emite access tokens firmados y refresh tokens opacos.
// No guarda nada de lo que emite: la emisión es una función pura de
// (claims, hora actual, secreto, política de expiración).
type TokenService struct {
	secret     []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// AccessClaims son los claims de identidad recuperados de un access token.
type AccessClaims struct {
	Subject string
	Email   string
	Name    string
}

var (
	ErrSecretTooShort = errors.New("token secret key must be at least 64 bytes for HMAC-SHA512")
	ErrTokenInvalid   = errors.New("access token invalid")
	ErrTokenExpired   = errors.New("access token expired")
)

// minSecretLen es el margen de seguridad de HMAC-SHA512: 512 bits.
const minSecretLen = 64

const refreshTokenBytes = 32

// NewTokenService valida el secreto en el arranque; una clave corta es un
// error de configuración fatal, nunca un error por petición.
func NewTokenService(secret, issuer, audience string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrSecretTooShort, len(secret))
	}
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// GenerateAccessToken firma un JWT HS512 con el claim set recibido más los
// timestamps de emisión y expiración. Tipos de claim repetidos se agregan
// como lista, igual que hace un emisor JWT estándar con roles múltiples.
func (s *TokenService) GenerateAccessToken(claims []domain.Claim) (string, error) {
	now := time.Now().UTC()
	payload := jwt.MapClaims{
		"iss": s.issuer,
		"aud": s.audience,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(s.accessTTL)),
	}
	for _, c := range claims {
		existing, ok := payload[c.Type]
		if !ok {
			payload[c.Type] = c.Value
			continue
		}
		switch v := existing.(type) {
		case string:
			payload[c.Type] = []string{v, c.Value}
		case []string:
			payload[c.Type] = append(v, c.Value)
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, payload)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken devuelve una cadena aleatoria URL-safe de 256 bits.
// Es una capacidad opaca: este servicio nunca la decodifica ni la revoca.
func (s *TokenService) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// ParseAccessToken valida firma, método e issuer y devuelve los claims de
// identidad del token.
func (s *TokenService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return AccessClaims{}, ErrTokenInvalid
	}
	payload := jwt.MapClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenString, payload, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AccessClaims{}, ErrTokenExpired
		}
		return AccessClaims{}, ErrTokenInvalid
	}
	claims := AccessClaims{
		Subject: stringClaim(payload, domain.ClaimTypeSubject),
		Email:   stringClaim(payload, domain.ClaimTypeEmail),
		Name:    stringClaim(payload, domain.ClaimTypeName),
	}
	if claims.Subject == "" {
		return AccessClaims{}, ErrTokenInvalid
	}
	return claims, nil
}

// AccessExpiresIn devuelve la vigencia del access token en segundos.
func (s *TokenService) AccessExpiresIn() int64 {
	return int64(s.accessTTL.Seconds())
}

// RefreshExpiresIn devuelve la vigencia del refresh token en segundos.
func (s *TokenService) RefreshExpiresIn() int64 {
	return int64(s.refreshTTL.Seconds())
}

// RefreshTTL expone la duración configurada para persistir refresh tokens.
func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func stringClaim(payload jwt.MapClaims, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
