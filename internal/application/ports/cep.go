package ports

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/cep"
)

// CEPResolver resolves a Brazilian postal code into an address.
// Implementations distinguish an unknown CEP from a lookup failure
// via cep.ErrNotFound and cep.ErrUnavailable.
type CEPResolver interface {
	Resolve(ctx context.Context, code string) (*cep.Address, error)
}
