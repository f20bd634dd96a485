package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/category"
	"github.com/LukeSky25/Material-Share-App/internal/domain/donation"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/mq"
	"github.com/LukeSky25/Material-Share-App/pkg/brdoc"
)

var (
	ErrDonationNotFound    = errors.New("donation not found")
	ErrDonationNotAllowed  = errors.New("operation not allowed for this person")
	ErrDonationNotEditable = errors.New("donation can no longer be edited")

	ErrDonationNameRequired        = errors.New("donation name is required")
	ErrDonationDescriptionRequired = errors.New("donation description is required")
	ErrDonationInvalidQuantity     = errors.New("donation quantity must be positive")
	ErrDonationCategoryRequired    = errors.New("donation category is required")
	ErrDonationInvalidCEP          = errors.New("donation CEP must have 8 digits")
	ErrDonationHouseNumberRequired = errors.New("donation house number is required")
	ErrCategoryInactive            = errors.New("category is not active")
)

type DonationService struct {
	donationRepository donation.Repository
	categoryRepository category.Repository
	mq                 ports.RabbitMQ
	log                *zap.Logger
	mCounter           *prometheus.CounterVec
}

func NewDonationService(
	donationRepository donation.Repository,
	categoryRepository category.Repository,
	mq ports.RabbitMQ,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.DonationService {
	return &DonationService{
		donationRepository: donationRepository,
		categoryRepository: categoryRepository,
		mq:                 mq,
		log:                logger,
		mCounter:           mCounter,
	}
}

// validateDonation runs the local listing checks in submission order.
func validateDonation(d donation.Donation) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrDonationNameRequired
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrDonationDescriptionRequired
	}
	if d.Quantity <= 0 {
		return ErrDonationInvalidQuantity
	}
	if d.CategoryUUID == uuid.Nil {
		return ErrDonationCategoryRequired
	}
	if len(brdoc.StripDigits(d.CEP)) != 8 {
		return ErrDonationInvalidCEP
	}
	if strings.TrimSpace(d.HouseNumber) == "" {
		return ErrDonationHouseNumberRequired
	}
	return nil
}

func (ds *DonationService) FindByID(ctx context.Context, uuid donation.UUID) (*donation.Donation, error) {
	return ds.donationRepository.FetchByUUID(ctx, uuid)
}

func (ds *DonationService) FindByOwner(ctx context.Context, ownerUUID person.UUID) (donation.Donations, error) {
	return ds.donationRepository.FetchByOwner(ctx, ownerUUID)
}

func (ds *DonationService) FindRequestedByBeneficiary(ctx context.Context, beneficiaryUUID person.UUID) (donation.Donations, error) {
	return ds.donationRepository.FetchRequestedByBeneficiary(ctx, beneficiaryUUID)
}

func (ds *DonationService) CreateDonation(ctx context.Context, d donation.Donation) (*donation.Donation, error) {
	if err := validateDonation(d); err != nil {
		return nil, err
	}

	cat, err := ds.categoryRepository.FetchByUUID(ctx, d.CategoryUUID)
	if err != nil {
		return nil, err
	}
	if !cat.Active() {
		return nil, ErrCategoryInactive
	}

	d.CEP = brdoc.StripDigits(d.CEP)
	d.Status = donation.StatusActive

	dRet, err := ds.donationRepository.Create(ctx, d)
	if err != nil {
		return nil, err
	}

	if dRet != nil {
		ds.publish(mq.ActionCreated, dRet)
	}

	ds.mCounter.WithLabelValues("donation_created_total").Inc()

	return dRet, nil
}

func (ds *DonationService) UpdateDonation(ctx context.Context, d donation.Donation) (*donation.Donation, error) {
	if err := validateDonation(d); err != nil {
		return nil, err
	}

	existing, err := ds.donationRepository.FetchByUUID(ctx, d.UUID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrDonationNotFound
	}
	if existing.OwnerUUID != d.OwnerUUID {
		return nil, ErrDonationNotAllowed
	}
	if existing.Status != donation.StatusActive {
		return nil, ErrDonationNotEditable
	}

	d.CEP = brdoc.StripDigits(d.CEP)
	d.Status = existing.Status

	return ds.donationRepository.Update(ctx, d)
}

// SetStatus handles the donor and beneficiary initiated transitions.
// The target state is checked locally first, so a listing already in a
// terminal state is rejected without touching the repository.
func (ds *DonationService) SetStatus(ctx context.Context, id donation.UUID, next donation.Status, actorUUID person.UUID) (*donation.Donation, error) {
	existing, err := ds.donationRepository.FetchByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrDonationNotFound
	}

	if err = donation.Transition(existing.Status, next); err != nil {
		return nil, err
	}

	switch next {
	case donation.StatusInactive:
		// only the donor may withdraw a listing
		if existing.OwnerUUID != actorUUID {
			return nil, ErrDonationNotAllowed
		}
	case donation.StatusDonated:
		// only the assigned beneficiary may confirm the handoff
		if existing.BeneficiaryUUID == nil || *existing.BeneficiaryUUID != actorUUID {
			return nil, ErrDonationNotAllowed
		}
	default:
		// REQUESTED is reached through the interest consumer only
		return nil, ErrDonationNotAllowed
	}

	dRet, err := ds.donationRepository.UpdateStatus(ctx, id, existing.Status, next, existing.BeneficiaryUUID)
	if err != nil {
		return nil, err
	}

	if dRet != nil {
		action := mq.ActionStatusChanged
		if next == donation.StatusInactive {
			action = mq.ActionDeactivated
		}
		ds.publish(action, dRet)
	}

	ds.mCounter.WithLabelValues("donation_status_changed_total").Inc()

	return dRet, nil
}

// RequestDonation applies a beneficiary's interest: ACTIVE to REQUESTED
// with the beneficiary recorded on the listing.
func (ds *DonationService) RequestDonation(ctx context.Context, id donation.UUID, beneficiaryUUID person.UUID) (*donation.Donation, error) {
	existing, err := ds.donationRepository.FetchByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrDonationNotFound
	}
	if existing.OwnerUUID == beneficiaryUUID {
		return nil, ErrDonationNotAllowed
	}

	if err = donation.Transition(existing.Status, donation.StatusRequested); err != nil {
		return nil, err
	}

	dRet, err := ds.donationRepository.UpdateStatus(ctx, id, existing.Status, donation.StatusRequested, &beneficiaryUUID)
	if err != nil {
		return nil, err
	}

	if dRet != nil {
		ds.publish(mq.ActionStatusChanged, dRet)
	}

	ds.mCounter.WithLabelValues("donation_requested_total").Inc()

	return dRet, nil
}

func (ds *DonationService) publish(action string, d *donation.Donation) {
	ds.mq.GetInputChan() <- mq.Event{
		Id:         uuid.New(),
		TS:         time.Now(),
		Action:     action,
		DonationID: d.UUID.String(),
		Payload:    *d,
	}
}
