package signup

import (
	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	personDTO "github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/person"
)

func ToSignupInput(req Request) ports.SignupInput {
	return ports.SignupInput{
		Name:      req.Name,
		Document:  req.Document,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		CEP:       req.CEP,
		Email:     req.Email,
		Password:  req.Password,
		UserType:  req.UserType,
	}
}

func ToResponse(res ports.SignupResult) Response {
	return Response{
		AccountUUID: res.Account.UUID,
		Email:       res.Account.Email,
		Person:      personDTO.ToResponsePerson(*res.Person),
	}
}
