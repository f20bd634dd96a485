package person

import (
	"errors"
	"time"

	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/pkg/brdoc"
)

const birthDateLayout = "02/01/2006"

// ToResponsePerson re-applies the display masks the client strips on
// submit: documents, phones and CEPs are stored as bare digits.
func ToResponsePerson(pDomain person.Person) Person {
	p := Person{
		UUID:        pDomain.UUID,
		AccountUUID: pDomain.AccountUUID,
		Name:        pDomain.Name,
		Document:    brdoc.FormatDocument(pDomain.Document),
		Type:        string(pDomain.Type),
		Phone:       brdoc.FormatPhone(pDomain.Phone),
		CEP:         brdoc.FormatCEP(pDomain.CEP),
	}
	if pDomain.BirthDate != nil {
		p.BirthDate = pDomain.BirthDate.Format(birthDateLayout)
	}

	return p
}

func ToDomainPerson(req Request) (person.Person, error) {
	p := person.Person{
		Name:     req.Name,
		Document: req.Document,
		Type:     person.Type(req.Type),
		Phone:    req.Phone,
		CEP:      req.CEP,
	}
	if req.BirthDate != "" {
		d, err := time.Parse(birthDateLayout, req.BirthDate)
		if err != nil {
			return person.Person{}, errors.New("invalid birth_date format, want DD/MM/YYYY")
		}
		p.BirthDate = &d
	}

	return p, nil
}
