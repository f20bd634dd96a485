package donation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/LukeSky25/Material-Share-App/internal/domain/donation"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	d := new(Donation)
	err := row.Scan(
		&d.ID,
		&d.UUID,
		&d.OwnerUUID,
		&d.CategoryUUID,
		&d.BeneficiaryUUID,
		&d.Name,
		&d.Description,
		&d.Quantity,
		&d.CEP,
		&d.HouseNumber,
		&d.Complement,
		&d.Status,

		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) fetchOne(row pgx.Row) (*domain.Donation, error) {
	d, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (domain.Donations, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds Donations
	for rows.Next() {
		d := new(Donation)

		if err = rows.Scan(
			&d.ID,
			&d.UUID,
			&d.OwnerUUID,
			&d.CategoryUUID,
			&d.BeneficiaryUUID,
			&d.Name,
			&d.Description,
			&d.Quantity,
			&d.CEP,
			&d.HouseNumber,
			&d.Complement,
			&d.Status,

			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ds), nil
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid domain.UUID) (*domain.Donation, error) {
	return r.fetchOne(r.db.QueryRow(ctx, SelectDonationByUUID, uuid.String()))
}

func (r *Repository) FetchByOwner(ctx context.Context, ownerUUID domain.UUID) (domain.Donations, error) {
	return r.fetchMany(ctx, SelectDonationsByOwner, ownerUUID.String())
}

func (r *Repository) FetchRequestedByBeneficiary(ctx context.Context, beneficiaryUUID domain.UUID) (domain.Donations, error) {
	return r.fetchMany(ctx, SelectRequestedByBeneficiary, beneficiaryUUID.String())
}

func (r *Repository) Create(ctx context.Context, req domain.Donation) (*domain.Donation, error) {
	return r.fetchOne(r.db.QueryRow(
		ctx,
		InsertDonation,
		req.OwnerUUID, req.CategoryUUID, req.Name, req.Description, req.Quantity,
		req.CEP, req.HouseNumber, req.Complement, string(req.Status),
	))
}

func (r *Repository) Update(ctx context.Context, req domain.Donation) (*domain.Donation, error) {
	return r.fetchOne(r.db.QueryRow(
		ctx,
		UpdateDonationByUUID,
		req.CategoryUUID, req.Name, req.Description, req.Quantity,
		req.CEP, req.HouseNumber, req.Complement, req.UUID,
	))
}

// UpdateStatus writes the transition only when the stored status still
// equals from; a concurrent transition surfaces as ErrStatusConflict and
// the row stays as the winner left it.
func (r *Repository) UpdateStatus(ctx context.Context, uuid domain.UUID, from, to domain.Status, beneficiaryUUID *domain.UUID) (*domain.Donation, error) {
	var beneficiary *string
	if beneficiaryUUID != nil {
		s := beneficiaryUUID.String()
		beneficiary = &s
	}

	d, err := scanDonation(r.db.QueryRow(
		ctx,
		UpdateDonationStatus,
		string(to), beneficiary, uuid.String(), string(from),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatusConflict
		}
		return nil, err
	}

	return d, nil
}
