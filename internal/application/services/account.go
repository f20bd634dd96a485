package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountService struct {
	accountRepository account.Repository
	sessions          ports.SessionStore
	log               *zap.Logger
	mCounter          *prometheus.CounterVec
}

func NewAccountService(
	accountRepository account.Repository,
	sessions ports.SessionStore,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		sessions:          sessions,
		log:               logger,
		mCounter:          mCounter,
	}
}

func (as *AccountService) FindByUUID(ctx context.Context, uuid account.UUID) (*account.Account, error) {
	return as.accountRepository.FetchByUUID(ctx, uuid)
}

func (as *AccountService) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	return as.accountRepository.FetchByEmail(ctx, email)
}

// Deactivate soft-deletes the account and drops its cached session so
// outstanding tokens stop resolving to a profile.
func (as *AccountService) Deactivate(ctx context.Context, uuid account.UUID) error {
	acc, err := as.accountRepository.Deactivate(ctx, uuid)
	if err != nil {
		return err
	}
	if acc == nil {
		return ErrAccountNotFound
	}

	if err = as.sessions.Clear(ctx, uuid); err != nil {
		as.log.Warn("account deactivate: session clear failed",
			zap.String("account_uuid", uuid.String()),
			zap.Error(err),
		)
	}

	as.mCounter.WithLabelValues("account_deactivated_total").Inc()

	return nil
}
