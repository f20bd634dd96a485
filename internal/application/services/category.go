package services

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/category"
)

type CategoryService struct {
	categoryRepository category.Repository
}

func NewCategoryService(categoryRepository category.Repository) ports.CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (cs *CategoryService) FindActive(ctx context.Context) (category.Categories, error) {
	return cs.categoryRepository.FetchActive(ctx)
}

func (cs *CategoryService) FindByID(ctx context.Context, uuid category.UUID) (*category.Category, error) {
	return cs.categoryRepository.FetchByUUID(ctx, uuid)
}
