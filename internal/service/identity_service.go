package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"identity-api/internal/domain"
	"identity-api/internal/repository"
)

// IdentityService orquesta la verificación de credenciales: búsqueda,
// chequeo de bloqueo, verificación de hash y emisión de tokens. Nunca deja
// escapar un error interno: siempre devuelve un resultado estructurado.
type IdentityService struct {
	logger   *zap.Logger
	accounts repository.AccountRepository
	hasher   *PasswordHasher
	tokens   *TokenService
	store    RefreshTokenStore
}

func NewIdentityService(
	logger *zap.Logger,
	accounts repository.AccountRepository,
	hasher *PasswordHasher,
	tokens *TokenService,
	store RefreshTokenStore,
) *IdentityService {
	if hasher == nil {
		hasher = NewPasswordHasher()
	}
	return &IdentityService{
		logger:   logger,
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		store:    store,
	}
}

// VerifyCredentials valida email y contraseña y, si todo pasa, emite un
// access token con los claims de identidad y un refresh token opaco.
func (s *IdentityService) VerifyCredentials(ctx context.Context, email, password string) domain.CredentialsResult {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		s.logger.Warn("credential verification with blank arguments")
		return domain.CredentialsResult{InfoMessage: "Incorrect arguments username or password."}
	}

	normalized := domain.NormalizeEmail(email)
	account, err := s.accounts.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.logger.Warn("user not found", zap.String("email", normalized))
			return domain.CredentialsResult{InfoMessage: fmt.Sprintf("User not found '%s'.", email)}
		}
		s.logger.Error("account lookup failed", zap.Error(err), zap.String("email", normalized))
		return domain.CredentialsResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
	}

	if account.IsLocked {
		s.logger.Warn("account is locked", zap.String("email", normalized))
		return domain.CredentialsResult{InfoMessage: fmt.Sprintf("Account is locked '%s'.", email)}
	}

	if !s.hasher.VerifyPassword(account.PasswordHash, account.ID, password) {
		s.logger.Warn("password not verified", zap.String("email", normalized))
		return domain.CredentialsResult{InfoMessage: fmt.Sprintf("The password is incorrect '%s'.", email)}
	}

	name := account.DisplayName
	if name == "" {
		name = account.EmailAddress
	}
	claims := []domain.Claim{
		{Type: domain.ClaimTypeSubject, Value: account.ID},
		{Type: domain.ClaimTypeEmail, Value: account.EmailAddress},
		{Type: domain.ClaimTypeName, Value: name},
	}

	accessToken, err := s.tokens.GenerateAccessToken(claims)
	if err != nil {
		s.logger.Error("access token generation failed", zap.Error(err))
		return domain.CredentialsResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
	}
	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		s.logger.Error("refresh token generation failed", zap.Error(err))
		return domain.CredentialsResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
	}
	if s.store != nil {
		claimSet, err := domain.EncodeClaims(claims)
		if err != nil {
			s.logger.Error("claim set encode failed", zap.Error(err))
			return domain.CredentialsResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
		}
		if err := s.store.Store(refreshToken, claimSet, s.tokens.RefreshTTL()); err != nil {
			s.logger.Error("refresh token persist failed", zap.Error(err))
			return domain.CredentialsResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
		}
	}

	return domain.CredentialsResult{
		IsVerified:            true,
		InfoMessage:           "Ok.",
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		TokenType:             "Bearer",
		ExpiresIn:             s.tokens.AccessExpiresIn(),
		RefreshTokenExpiresIn: s.tokens.RefreshExpiresIn(),
	}
}
