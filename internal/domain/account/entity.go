package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	// Account is the authentication identity, one-to-one with a person.
	Account struct {
		UUID         UUID
		Email        string
		PasswordHash *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Accounts []*Account
)
