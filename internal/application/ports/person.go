package ports

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

type PersonService interface {
	FindByID(ctx context.Context, uuid person.UUID) (*person.Person, error)
	FindByAccount(ctx context.Context, accountUUID person.UUID) (*person.Person, error)
	UpdatePerson(ctx context.Context, p person.Person) (*person.Person, error)
}
