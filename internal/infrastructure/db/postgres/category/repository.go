package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/LukeSky25/Material-Share-App/internal/domain/category"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchActive(ctx context.Context) (domain.Categories, error) {
	rows, err := r.db.Query(ctx, SelectActiveCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Categories
	for rows.Next() {
		c := new(Category)

		if err = rows.Scan(
			&c.ID,
			&c.UUID,
			&c.Name,
			&c.Status,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid domain.UUID) (*domain.Category, error) {
	c := new(Category)
	err := r.db.QueryRow(ctx, SelectCategoryByUUID, uuid.String()).Scan(
		&c.ID,
		&c.UUID,
		&c.Name,
		&c.Status,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), nil
}
