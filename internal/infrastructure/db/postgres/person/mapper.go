package person

import (
	domain "github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

func fromDBModel(model *Person) *domain.Person {
	return &domain.Person{
		UUID:        model.UUID,
		AccountUUID: model.AccountUUID,
		Name:        model.Name,
		Document:    model.Document,
		Type:        domain.Type(model.Type),
		BirthDate:   model.BirthDate,
		Phone:       model.Phone,
		CEP:         model.CEP,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
