package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/session"
)

type SessionStore interface {
	Get(ctx context.Context, accountUUID uuid.UUID) (*session.Record, error)
	Set(ctx context.Context, rec session.Record) error
	Clear(ctx context.Context, accountUUID uuid.UUID) error
}
