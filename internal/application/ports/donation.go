package ports

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/domain/donation"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

type DonationService interface {
	FindByID(ctx context.Context, uuid donation.UUID) (*donation.Donation, error)
	FindByOwner(ctx context.Context, ownerUUID person.UUID) (donation.Donations, error)
	FindRequestedByBeneficiary(ctx context.Context, beneficiaryUUID person.UUID) (donation.Donations, error)
	CreateDonation(ctx context.Context, d donation.Donation) (*donation.Donation, error)
	UpdateDonation(ctx context.Context, d donation.Donation) (*donation.Donation, error)
	// SetStatus applies a donor or beneficiary initiated transition.
	// The actor's user type gates which target statuses are permitted.
	SetStatus(ctx context.Context, uuid donation.UUID, next donation.Status, actorUUID person.UUID) (*donation.Donation, error)
	// RequestDonation moves an active listing to REQUESTED on behalf of
	// a beneficiary. Invoked by the interest message consumer.
	RequestDonation(ctx context.Context, uuid donation.UUID, beneficiaryUUID person.UUID) (*donation.Donation, error)
}
