package donation

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID       uint64
	Donation struct {
		ID              uint64
		UUID            uuid.UUID
		OwnerUUID       uuid.UUID
		CategoryUUID    uuid.UUID
		BeneficiaryUUID *uuid.UUID
		Name            string
		Description     string
		Quantity        int
		CEP             string
		HouseNumber     string
		Complement      string
		Status          string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Donations []*Donation
)
