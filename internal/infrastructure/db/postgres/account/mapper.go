package account

import (
	domain "github.com/LukeSky25/Material-Share-App/internal/domain/account"
)

func fromDBModel(model *Account) *domain.Account {
	return &domain.Account{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		DeletedAt: model.DeletedAt,
	}
}
