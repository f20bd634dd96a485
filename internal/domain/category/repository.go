package category

import (
	"context"
)

type Repository interface {
	FetchActive(ctx context.Context) (Categories, error)
	FetchByUUID(ctx context.Context, uuid UUID) (*Category, error)
}
