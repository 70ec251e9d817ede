package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"identity-api/internal/domain"
)

var (
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount señala una violación de unicidad de email en el
	// límite de almacenamiento; el registrador la trata igual que el
	// pre-chequeo "ya existe".
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountRepository define el contrato de persistencia para cuentas.
type AccountRepository interface {
	Create(ctx context.Context, account domain.AccountIdentity) error
	GetByEmail(ctx context.Context, email string) (domain.AccountIdentity, error)
	List(ctx context.Context, skip, limit int) ([]domain.AccountIdentity, error)
}

// PgAccountRepository implementa AccountRepository usando pgxpool.
type PgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

const uniqueViolationCode = "23505"

func (r *PgAccountRepository) Create(ctx context.Context, account domain.AccountIdentity) error {
	const query = `
		INSERT INTO account_identities (id, email_address, display_name, description, password_hash, is_locked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.EmailAddress,
		account.DisplayName,
		account.Description,
		account.PasswordHash,
		account.IsLocked,
		account.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicateAccount
	}
	return err
}

func (r *PgAccountRepository) GetByEmail(ctx context.Context, email string) (domain.AccountIdentity, error) {
	const query = `
		SELECT id, email_address, display_name, description, password_hash, is_locked, created_at
		FROM account_identities
		WHERE email_address = $1
	`
	var a domain.AccountIdentity
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.EmailAddress,
		&a.DisplayName,
		&a.Description,
		&a.PasswordHash,
		&a.IsLocked,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AccountIdentity{}, ErrAccountNotFound
	}
	return a, err
}

func (r *PgAccountRepository) List(ctx context.Context, skip, limit int) ([]domain.AccountIdentity, error) {
	const query = `
		SELECT id, email_address, display_name, description, password_hash, is_locked, created_at
		FROM account_identities
		ORDER BY created_at
		OFFSET $1 LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.AccountIdentity
	for rows.Next() {
		var a domain.AccountIdentity
		if err := rows.Scan(
			&a.ID,
			&a.EmailAddress,
			&a.DisplayName,
			&a.Description,
			&a.PasswordHash,
			&a.IsLocked,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
