package ports

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/domain/category"
)

type CategoryService interface {
	FindActive(ctx context.Context) (category.Categories, error)
	FindByID(ctx context.Context, uuid category.UUID) (*category.Category, error)
}
