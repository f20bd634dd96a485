package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/pkg/brdoc"
)

var (
	// ErrProfileIncomplete: the account was created but the person
	// profile was not. A retry with the same email resumes at the
	// profile step instead of re-creating the account.
	ErrProfileIncomplete  = errors.New("account created but profile incomplete")
	ErrAccountUnavailable = errors.New("could not create account")
)

type SignupService struct {
	accountRepository account.Repository
	personRepository  person.Repository
	validator         ports.SignupValidator
	log               *zap.Logger
	mCounter          *prometheus.CounterVec

	// inflight coalesces concurrent submissions of the same email so
	// that a double tap performs exactly one create.
	inflight singleflight.Group
}

func NewSignupService(
	accountRepository account.Repository,
	personRepository person.Repository,
	validator ports.SignupValidator,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.Signup {
	return &SignupService{
		accountRepository: accountRepository,
		personRepository:  personRepository,
		validator:         validator,
		log:               logger,
		mCounter:          mCounter,
	}
}

// Signup validates the form, then runs the two-phase create: account
// first, person second. Validation completes before any mutating call,
// so a rejected form never leaves partial state behind.
func (ss *SignupService) Signup(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
	if err := ss.validator.Validate(ctx, in); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(in.Email))

	res, err, _ := ss.inflight.Do(key, func() (any, error) {
		return ss.signup(ctx, key, in)
	})
	if err != nil {
		return nil, err
	}

	return res.(*ports.SignupResult), nil
}

func (ss *SignupService) signup(ctx context.Context, email string, in ports.SignupInput) (*ports.SignupResult, error) {
	acc, err := ss.ensureAccount(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		// already validated, but keep the invariant local
		return nil, ErrInvalidBirthDate
	}

	p, err := ss.personRepository.Create(ctx, person.Person{
		AccountUUID: acc.UUID,
		Name:        NormalizeName(in.Name),
		Document:    brdoc.StripDigits(in.Document),
		Type:        person.Type(in.UserType),
		BirthDate:   birthDate,
		Phone:       brdoc.StripDigits(in.Phone),
		CEP:         brdoc.StripDigits(in.CEP),
	})
	if err != nil {
		if errors.Is(err, person.ErrDocumentAlreadyExists) {
			return nil, err
		}
		ss.log.Error("signup: person create failed after account create",
			zap.String("account_uuid", acc.UUID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrProfileIncomplete, err)
	}

	ss.mCounter.WithLabelValues("signup_completed_total").Inc()

	return &ports.SignupResult{Account: acc, Person: p}, nil
}

// ensureAccount creates the account, or resumes a signup whose first
// phase already committed: an existing account with no person attached
// belongs to an interrupted run and is reused.
func (ss *SignupService) ensureAccount(ctx context.Context, email, password string) (*account.Account, error) {
	existing, err := ss.accountRepository.FetchByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountUnavailable, err)
	}
	if existing != nil {
		p, err := ss.personRepository.FetchByAccount(ctx, existing.UUID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAccountUnavailable, err)
		}
		if p != nil {
			return nil, account.ErrEmailAlreadyExists
		}
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccountUnavailable, err)
	}

	acc, err := ss.accountRepository.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, account.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrAccountUnavailable, err)
	}

	ss.mCounter.WithLabelValues("account_created_total").Inc()

	return acc, nil
}

func parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
