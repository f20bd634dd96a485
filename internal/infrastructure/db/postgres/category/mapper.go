package category

import (
	domain "github.com/LukeSky25/Material-Share-App/internal/domain/category"
)

func fromDBModel(model *Category) *domain.Category {
	return &domain.Category{
		UUID:   model.UUID,
		Name:   model.Name,
		Status: domain.Status(model.Status),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Categories) domain.Categories {
	cs := make(domain.Categories, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
