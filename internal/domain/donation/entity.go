package donation

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	// Donation is one listed material item. CEP and HouseNumber locate
	// the pickup address; BeneficiaryUUID is set when a beneficiary
	// expresses interest and the listing moves to REQUESTED.
	Donation struct {
		UUID            UUID
		OwnerUUID       UUID
		CategoryUUID    UUID
		BeneficiaryUUID *UUID
		Name            string
		Description     string
		Quantity        int
		CEP             string
		HouseNumber     string
		Complement      string
		Status          Status

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Donations []*Donation
)
