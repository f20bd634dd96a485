package person

import (
	"github.com/google/uuid"
)

type (
	Person struct {
		UUID        uuid.UUID `json:"uuid"`
		AccountUUID uuid.UUID `json:"account_uuid"`
		Name        string    `json:"name"`
		Document    string    `json:"document"`
		Type        string    `json:"type"`
		BirthDate   string    `json:"birth_date,omitempty"`
		Phone       string    `json:"phone,omitempty"`
		CEP         string    `json:"cep,omitempty"`
	}
)
