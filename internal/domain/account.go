package domain

import (
	"strings"
	"time"
)

type AccountIdentity struct {
	ID           string    `json:"id"`
	EmailAddress string    `json:"email_address"`
	DisplayName  string    `json:"display_name,omitempty"`
	Description  string    `json:"description,omitempty"`
	PasswordHash string    `json:"-"`
	IsLocked     bool      `json:"is_locked"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountRegistration son los datos de entrada para crear una cuenta.
type AccountRegistration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// RegistrationResult es el resultado de un intento de registro.
type RegistrationResult struct {
	IsSuccess    bool   `json:"is_success"`
	InfoMessage  string `json:"info_message"`
	ID           string `json:"id,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// CredentialsResult es el resultado de una verificación de credenciales.
// Los tokens solo se rellenan cuando IsVerified es true.
type CredentialsResult struct {
	IsVerified            bool   `json:"is_verified"`
	InfoMessage           string `json:"info_message"`
	AccessToken           string `json:"access_token,omitempty"`
	RefreshToken          string `json:"refresh_token,omitempty"`
	TokenType             string `json:"token_type,omitempty"`
	ExpiresIn             int64  `json:"expires_in,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in,omitempty"`
}

// NormalizeEmail aplica la política de unicidad de emails: se comparan y
// persisten siempre en minúsculas y sin espacios alrededor.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
