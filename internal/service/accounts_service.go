package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"identity-api/internal/domain"
	"identity-api/internal/repository"
)

// AccountsService gestiona el registro y listado de cuentas.
type AccountsService struct {
	logger   *zap.Logger
	accounts repository.AccountRepository
	hasher   *PasswordHasher
}

func NewAccountsService(logger *zap.Logger, accounts repository.AccountRepository, hasher *PasswordHasher) *AccountsService {
	if hasher == nil {
		hasher = NewPasswordHasher()
	}
	return &AccountsService{
		logger:   logger,
		accounts: accounts,
		hasher:   hasher,
	}
}

// Register crea una cuenta nueva si el email no está tomado. La unicidad
// real la garantiza el almacenamiento: si dos registros concurrentes pasan
// el pre-chequeo, el segundo insert falla con ErrDuplicateAccount y se
// reporta igual que "ya existe".
func (s *AccountsService) Register(ctx context.Context, reg domain.AccountRegistration) domain.RegistrationResult {
	email := domain.NormalizeEmail(reg.Email)
	if email == "" || reg.Password == "" {
		return domain.RegistrationResult{InfoMessage: "Incorrect arguments email or password."}
	}

	_, err := s.accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Warn("registration rejected, email taken", zap.String("email", email))
		return domain.RegistrationResult{InfoMessage: "User already exists"}
	case !errors.Is(err, repository.ErrAccountNotFound):
		s.logger.Error("account lookup failed", zap.Error(err), zap.String("email", email))
		return domain.RegistrationResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
	}

	account := domain.AccountIdentity{
		ID:           uuid.NewString(),
		EmailAddress: email,
		DisplayName:  reg.DisplayName,
		Description:  reg.Description,
		IsLocked:     false,
		CreatedAt:    time.Now().UTC(),
	}
	hash, err := s.hasher.HashPassword(account.ID, reg.Password)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return domain.RegistrationResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
	}
	account.PasswordHash = hash

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return domain.RegistrationResult{InfoMessage: "User already exists"}
		}
		s.logger.Error("account insert failed", zap.Error(err), zap.String("email", email))
		return domain.RegistrationResult{InfoMessage: fmt.Sprintf("Error '%v'.", err)}
	}

	return domain.RegistrationResult{
		IsSuccess:    true,
		InfoMessage:  "Ok.",
		ID:           account.ID,
		EmailAddress: account.EmailAddress,
	}
}

// GetAccounts lista cuentas con paginación simple.
func (s *AccountsService) GetAccounts(ctx context.Context, skip, limit int) ([]domain.AccountIdentity, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	return s.accounts.List(ctx, skip, limit)
}
