package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/session"
	"github.com/LukeSky25/Material-Share-App/pkg/brdoc"
)

var ErrPersonNotFound = errors.New("person not found")

type PersonService struct {
	personRepository person.Repository
	sessions         ports.SessionStore
	log              *zap.Logger
}

func NewPersonService(
	personRepository person.Repository,
	sessions ports.SessionStore,
	logger *zap.Logger,
) ports.PersonService {
	return &PersonService{
		personRepository: personRepository,
		sessions:         sessions,
		log:              logger,
	}
}

func (ps *PersonService) FindByID(ctx context.Context, uuid person.UUID) (*person.Person, error) {
	return ps.personRepository.FetchByUUID(ctx, uuid)
}

func (ps *PersonService) FindByAccount(ctx context.Context, accountUUID person.UUID) (*person.Person, error) {
	return ps.personRepository.FetchByAccount(ctx, accountUUID)
}

// validatePersonFields runs the local subset of the signup checks on a
// profile edit. The CEP is not re-resolved here.
func validatePersonFields(p person.Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.BirthDate != nil && p.BirthDate.After(time.Now()) {
		return ErrFutureBirthDate
	}
	if p.Phone != "" {
		digits := brdoc.StripDigits(p.Phone)
		if len(digits) != 10 && len(digits) != 11 {
			return ErrInvalidPhone
		}
	}
	if p.CEP != "" && len(brdoc.StripDigits(p.CEP)) != 8 {
		return ErrInvalidCEP
	}
	if !brdoc.ValidDocument(brdoc.StripDigits(p.Document)) {
		return ErrInvalidDocument
	}
	if !p.Type.Valid() {
		return ErrInvalidUserType
	}
	return nil
}

// UpdatePerson persists the profile edit and rewrites the cached
// session record. The session write happens only after the repository
// succeeds, so the cache never runs ahead of storage.
func (ps *PersonService) UpdatePerson(ctx context.Context, p person.Person) (*person.Person, error) {
	if err := validatePersonFields(p); err != nil {
		return nil, err
	}

	existing, err := ps.personRepository.FetchByUUID(ctx, p.UUID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPersonNotFound
	}

	p.AccountUUID = existing.AccountUUID
	p.Name = NormalizeName(p.Name)
	p.Document = brdoc.StripDigits(p.Document)
	p.Phone = brdoc.StripDigits(p.Phone)
	p.CEP = brdoc.StripDigits(p.CEP)

	pRet, err := ps.personRepository.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	if pRet != nil {
		rec, err := ps.sessions.Get(ctx, pRet.AccountUUID)
		if err == nil && rec != nil {
			rec.PersonUUID = pRet.UUID
			rec.Name = pRet.Name
			rec.Type = pRet.Type
			if err = ps.sessions.Set(ctx, *rec); err != nil {
				ps.log.Warn("person update: session rewrite failed",
					zap.String("account_uuid", pRet.AccountUUID.String()),
					zap.Error(err),
				)
			}
		}
	}

	return pRet, nil
}

// SessionRecord builds the cache record written at login and after a
// profile edit.
func SessionRecord(accountUUID person.UUID, email string, p *person.Person) session.Record {
	rec := session.Record{AccountUUID: accountUUID, Email: email}
	if p != nil {
		rec.PersonUUID = p.UUID
		rec.Name = p.Name
		rec.Type = p.Type
	}
	return rec
}
