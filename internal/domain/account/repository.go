package account

import (
	"context"
	"errors"
)

// ErrEmailAlreadyExists is returned by Create when the email is taken.
var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*Account, error)
	FetchByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, email, passwordHash string) (*Account, error)
	UpdatePassword(ctx context.Context, uuid UUID, passwordHash string) (*Account, error)
	Deactivate(ctx context.Context, uuid UUID) (*Account, error)
}
