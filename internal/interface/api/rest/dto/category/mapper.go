package category

import (
	"github.com/LukeSky25/Material-Share-App/internal/domain/category"
)

func ToResponseCategory(cDomain category.Category) Category {
	return Category{
		UUID: cDomain.UUID,
		Name: cDomain.Name,
	}
}

func ToResponseCategories(csDomain category.Categories) Categories {
	cs := make(Categories, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseCategory(*c)
	}

	return cs
}
