package donation

import (
	"time"

	"github.com/google/uuid"
)

type (
	Donation struct {
		UUID            uuid.UUID  `json:"uuid"`
		OwnerUUID       uuid.UUID  `json:"owner_uuid"`
		CategoryUUID    uuid.UUID  `json:"category_uuid"`
		BeneficiaryUUID *uuid.UUID `json:"beneficiary_uuid,omitempty"`
		Name            string     `json:"name"`
		Description     string     `json:"description"`
		Quantity        int        `json:"quantity"`
		CEP             string     `json:"cep"`
		HouseNumber     string     `json:"house_number"`
		Complement      string     `json:"complement,omitempty"`
		Status          string     `json:"status"`
		CreatedAt       time.Time  `json:"created_at"`
	}
	Donations    []Donation
	ResponseData struct {
		Data Donations `json:"data"`
	}
)
