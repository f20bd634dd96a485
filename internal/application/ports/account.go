package ports

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
)

type AccountService interface {
	FindByUUID(ctx context.Context, uuid account.UUID) (*account.Account, error)
	FindByEmail(ctx context.Context, email string) (*account.Account, error)
	Deactivate(ctx context.Context, uuid account.UUID) error
}
