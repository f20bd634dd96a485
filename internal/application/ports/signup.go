package ports

import (
	"context"

	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

// SignupInput carries the raw signup form. Document, phone and CEP may
// arrive masked; the validator strips them before checking.
type SignupInput struct {
	Name      string
	Document  string
	BirthDate string
	Phone     string
	CEP       string
	Email     string
	Password  string
	UserType  string
}

type SignupResult struct {
	Account *account.Account
	Person  *person.Person
}

type SignupValidator interface {
	Validate(ctx context.Context, in SignupInput) error
}

type Signup interface {
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)
}
