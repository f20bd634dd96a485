package person

import (
	"time"

	"github.com/google/uuid"
)

// Type is advisory: it records how the person intends to use the
// platform, it does not gate access. A person may both give and receive.
type Type string

const (
	TypeDonor       Type = "DONOR"
	TypeBeneficiary Type = "BENEFICIARY"
)

// Valid reports whether t is a known user type.
func (t Type) Valid() bool {
	return t == TypeDonor || t == TypeBeneficiary
}

type (
	ID   uint64
	UUID = uuid.UUID
	// Person is the profile behind an account. Document holds a bare
	// 11-digit CPF or 14-digit CNPJ, already stripped of separators.
	Person struct {
		UUID        UUID
		AccountUUID UUID
		Name        string
		Document    string
		Type        Type
		BirthDate   *time.Time
		Phone       string
		CEP         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Persons []*Person
)
