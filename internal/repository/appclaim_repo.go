package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"identity-api/internal/domain"
)

var ErrAppClaimNotFound = errors.New("app claim not found")

// AppClaimRepository define el contrato de persistencia para las
// definiciones maestras de claims.
type AppClaimRepository interface {
	Create(ctx context.Context, claim domain.AppClaim) error
	GetByID(ctx context.Context, id string) (domain.AppClaim, error)
	List(ctx context.Context) ([]domain.AppClaim, error)
	Update(ctx context.Context, claim domain.AppClaim) error
	Delete(ctx context.Context, id string) error
}

// PgAppClaimRepository implementa AppClaimRepository usando pgxpool.
type PgAppClaimRepository struct {
	pool *pgxpool.Pool
}

func NewPgAppClaimRepository(pool *pgxpool.Pool) *PgAppClaimRepository {
	return &PgAppClaimRepository{pool: pool}
}

func (r *PgAppClaimRepository) Create(ctx context.Context, claim domain.AppClaim) error {
	const query = `
		INSERT INTO app_claims (id, claim_type, description, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		claim.ID,
		claim.ClaimType,
		claim.Description,
		claim.CreatedAt,
	)
	return err
}

func (r *PgAppClaimRepository) GetByID(ctx context.Context, id string) (domain.AppClaim, error) {
	const query = `
		SELECT id, claim_type, description, created_at
		FROM app_claims
		WHERE id = $1
	`
	var c domain.AppClaim
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.ClaimType,
		&c.Description,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AppClaim{}, ErrAppClaimNotFound
	}
	return c, err
}

func (r *PgAppClaimRepository) List(ctx context.Context) ([]domain.AppClaim, error) {
	const query = `
		SELECT id, claim_type, description, created_at
		FROM app_claims
		ORDER BY claim_type
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []domain.AppClaim
	for rows.Next() {
		var c domain.AppClaim
		if err := rows.Scan(
			&c.ID,
			&c.ClaimType,
			&c.Description,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claims, nil
}

func (r *PgAppClaimRepository) Update(ctx context.Context, claim domain.AppClaim) error {
	const query = `
		UPDATE app_claims
		SET claim_type = $2, description = $3
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, claim.ID, claim.ClaimType, claim.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAppClaimNotFound
	}
	return nil
}

func (r *PgAppClaimRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM app_claims WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAppClaimNotFound
	}
	return nil
}
