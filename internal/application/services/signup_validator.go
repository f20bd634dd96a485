package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/cep"
	"github.com/LukeSky25/Material-Share-App/pkg/brdoc"
)

const (
	passwordMinLen = 6
	passwordMaxLen = 100

	birthDateLayout = "02/01/2006"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidBirthDate = errors.New("invalid birth date")
	ErrFutureBirthDate  = errors.New("birth date is in the future")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidCEP       = errors.New("invalid CEP")
	ErrCEPNotFound      = errors.New("CEP not found")
	ErrCEPLookupFailed  = errors.New("CEP lookup failed")
	ErrInvalidDocument  = errors.New("invalid CPF or CNPJ")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPassword  = errors.New("password must be between 6 and 100 characters")
	ErrInvalidUserType  = errors.New("invalid user type")
)

type SignupValidator struct {
	cepResolver ports.CEPResolver
}

func NewSignupValidator(cepResolver ports.CEPResolver) ports.SignupValidator {
	return &SignupValidator{cepResolver: cepResolver}
}

// Validate runs the signup checks in a fixed order and stops at the
// first failure. All checks are local except the CEP resolution, which
// runs last among the CEP rules so a malformed CEP never reaches the
// network.
func (v *SignupValidator) Validate(ctx context.Context, in ports.SignupInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}

	if in.BirthDate != "" {
		born, err := time.Parse(birthDateLayout, in.BirthDate)
		if err != nil {
			return ErrInvalidBirthDate
		}
		if born.After(time.Now()) {
			return ErrFutureBirthDate
		}
	}

	if in.Phone != "" {
		digits := brdoc.StripDigits(in.Phone)
		if len(digits) != 10 && len(digits) != 11 {
			return ErrInvalidPhone
		}
	}

	if in.CEP != "" {
		digits := brdoc.StripDigits(in.CEP)
		if len(digits) != 8 {
			return ErrInvalidCEP
		}
		if _, err := v.cepResolver.Resolve(ctx, digits); err != nil {
			if errors.Is(err, cep.ErrNotFound) {
				return ErrCEPNotFound
			}
			return fmt.Errorf("%w: %w", ErrCEPLookupFailed, err)
		}
	}

	if !brdoc.ValidDocument(brdoc.StripDigits(in.Document)) {
		return ErrInvalidDocument
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return ErrInvalidEmail
	}

	if n := utf8.RuneCountInString(in.Password); n < passwordMinLen || n > passwordMaxLen {
		return ErrInvalidPassword
	}

	if !person.Type(in.UserType).Valid() {
		return ErrInvalidUserType
	}

	return nil
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }

// NormalizeName trims, collapses inner whitespace and strips combining
// accents so that lookups on stored names are accent-insensitive.
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ := transform.String(t, strings.TrimSpace(name))
	return strings.Join(strings.Fields(s), " ")
}
