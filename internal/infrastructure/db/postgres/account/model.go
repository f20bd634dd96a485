package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID      uint64
	Account struct {
		ID           uint64
		UUID         uuid.UUID
		Email        string
		PasswordHash *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Accounts []*Account
)
