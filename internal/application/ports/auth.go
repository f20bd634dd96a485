package ports

import (
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

type Auth interface {
	GenerateToken(acc *account.Account, p *person.Person, requestPassword string) (string, error)
}
