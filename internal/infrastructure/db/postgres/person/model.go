package person

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID     uint64
	Person struct {
		ID          uint64
		UUID        uuid.UUID
		AccountUUID uuid.UUID
		Name        string
		Document    string
		Type        string
		BirthDate   *time.Time
		Phone       string
		CEP         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Persons []*Person
)
