package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Account, error) {
	a := new(Account)
	err := row.Scan(
		&a.ID,
		&a.UUID,
		&a.Email,
		&a.PasswordHash,

		&a.CreatedAt,
		&a.UpdatedAt,

		&a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid domain.UUID) (*domain.Account, error) {
	return r.scanOne(r.db.QueryRow(ctx, SelectAccountByUUID, uuid.String()))
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.scanOne(r.db.QueryRow(ctx, SelectAccountByEmail, email))
}

func (r *Repository) Create(ctx context.Context, email, passwordHash string) (*domain.Account, error) {
	a, err := r.scanOne(r.db.QueryRow(ctx, InsertAccount, email, passwordHash))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return a, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, uuid domain.UUID, passwordHash string) (*domain.Account, error) {
	return r.scanOne(r.db.QueryRow(ctx, UpdatePasswordByUUID, passwordHash, uuid.String()))
}

func (r *Repository) Deactivate(ctx context.Context, uuid domain.UUID) (*domain.Account, error) {
	return r.scanOne(r.db.QueryRow(ctx, SoftDeleteAccountByUUID, uuid.String()))
}
