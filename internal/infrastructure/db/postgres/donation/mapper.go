package donation

import (
	domain "github.com/LukeSky25/Material-Share-App/internal/domain/donation"
)

func fromDBModel(model *Donation) *domain.Donation {
	return &domain.Donation{
		UUID:            model.UUID,
		OwnerUUID:       model.OwnerUUID,
		CategoryUUID:    model.CategoryUUID,
		BeneficiaryUUID: model.BeneficiaryUUID,
		Name:            model.Name,
		Description:     model.Description,
		Quantity:        model.Quantity,
		CEP:             model.CEP,
		HouseNumber:     model.HouseNumber,
		Complement:      model.Complement,
		Status:          domain.Status(model.Status),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Donations) domain.Donations {
	ds := make(domain.Donations, len(*models))
	for idx, d := range *models {
		ds[idx] = fromDBModel(d)
	}

	return ds
}
