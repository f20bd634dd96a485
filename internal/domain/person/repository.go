package person

import (
	"context"
	"errors"
)

// ErrDocumentAlreadyExists is returned by Create and Update when the
// CPF/CNPJ is already registered to another person.
var ErrDocumentAlreadyExists = errors.New("document already exists")

type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*Person, error)
	FetchByAccount(ctx context.Context, accountUUID UUID) (*Person, error)
	Create(ctx context.Context, req Person) (*Person, error)
	Update(ctx context.Context, req Person) (*Person, error)
}
