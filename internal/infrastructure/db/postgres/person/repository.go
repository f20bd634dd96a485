package person

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Person, error) {
	p := new(Person)
	err := row.Scan(
		&p.ID,
		&p.UUID,
		&p.AccountUUID,
		&p.Name,
		&p.Document,
		&p.Type,
		&p.BirthDate,
		&p.Phone,
		&p.CEP,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), nil
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid domain.UUID) (*domain.Person, error) {
	return r.scanOne(r.db.QueryRow(ctx, SelectPersonByUUID, uuid.String()))
}

func (r *Repository) FetchByAccount(ctx context.Context, accountUUID domain.UUID) (*domain.Person, error) {
	return r.scanOne(r.db.QueryRow(ctx, SelectPersonByAccount, accountUUID.String()))
}

func (r *Repository) Create(ctx context.Context, req domain.Person) (*domain.Person, error) {
	p, err := r.scanOne(r.db.QueryRow(
		ctx,
		InsertPerson,
		req.AccountUUID, req.Name, req.Document, string(req.Type), req.BirthDate, req.Phone, req.CEP,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrDocumentAlreadyExists
		}
		return nil, err
	}

	return p, nil
}

func (r *Repository) Update(ctx context.Context, req domain.Person) (*domain.Person, error) {
	p, err := r.scanOne(r.db.QueryRow(
		ctx,
		UpdatePersonByUUID,
		req.Name, req.Document, string(req.Type), req.BirthDate, req.Phone, req.CEP, req.UUID,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrDocumentAlreadyExists
		}
		return nil, err
	}

	return p, nil
}
