package donation

import (
	"context"
)

type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*Donation, error)
	FetchByOwner(ctx context.Context, ownerUUID UUID) (Donations, error)
	FetchRequestedByBeneficiary(ctx context.Context, beneficiaryUUID UUID) (Donations, error)
	Create(ctx context.Context, req Donation) (*Donation, error)
	Update(ctx context.Context, req Donation) (*Donation, error)
	// UpdateStatus compare-and-sets the status: the row is only written
	// when its stored status still equals from. A stale from yields
	// ErrStatusConflict and leaves the row untouched.
	UpdateStatus(ctx context.Context, uuid UUID, from, to Status, beneficiaryUUID *UUID) (*Donation, error)
}
