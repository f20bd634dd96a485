package donation

import (
	"github.com/google/uuid"
)

type (
	Request struct {
		Name         string    `json:"name"`
		Description  string    `json:"description"`
		Quantity     int       `json:"quantity"`
		CategoryUUID uuid.UUID `json:"category_uuid"`
		CEP          string    `json:"cep"`
		HouseNumber  string    `json:"house_number"`
		Complement   string    `json:"complement"`
	}
	StatusRequest struct {
		Status string `json:"status"`
	}
)
