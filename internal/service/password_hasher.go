package service

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// PasswordHasher deriva y verifica hashes de contraseña con sal por cuenta.
// El formato almacenado lleva una etiqueta de versión para mantener
// compatibilidad si los parámetros de derivación cambian.
type PasswordHasher struct{}

const (
	hashFormatPBKDF2 = "pbkdf2"
	pbkdf2Iterations = 210000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = 64
)

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// HashPassword deriva un hash a partir de la contraseña y la identidad de la
// cuenta. El ID del sujeto entra en la derivación, así dos cuentas con la
// misma contraseña nunca comparten hash aun con la misma sal.
func (h *PasswordHasher) HashPassword(accountID, password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := h.derive(accountID, password, salt, pbkdf2Iterations)
	return fmt.Sprintf("%s$sha512$%d$%s$%s",
		hashFormatPBKDF2,
		pbkdf2Iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword comprueba una contraseña candidata contra el hash
// almacenado. Acepta el formato pbkdf2 actual y hashes bcrypt heredados.
// La comparación es de tiempo constante.
func (h *PasswordHasher) VerifyPassword(storedHash, accountID, password string) bool {
	if strings.HasPrefix(storedHash, hashFormatPBKDF2+"$") {
		return h.verifyPBKDF2(storedHash, accountID, password)
	}
	if strings.HasPrefix(storedHash, "$2") {
		// Formato heredado: bcrypt sin ligadura al sujeto.
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
	}
	return false
}

func (h *PasswordHasher) verifyPBKDF2(storedHash, accountID, password string) bool {
	parts := strings.Split(storedHash, "$")
	if len(parts) != 5 || parts[1] != "sha512" {
		return false
	}
	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key := h.derive(accountID, password, salt, iterations)
	return subtle.ConstantTimeCompare(key, expected) == 1
}

func (h *PasswordHasher) derive(accountID, password string, salt []byte, iterations int) []byte {
	bound := append([]byte(accountID+":"), salt...)
	return pbkdf2.Key([]byte(password), bound, iterations, pbkdf2KeyLen, sha512.New)
}
