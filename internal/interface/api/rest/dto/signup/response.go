package signup

import (
	"github.com/google/uuid"

	personDTO "github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/person"
)

type Response struct {
	AccountUUID uuid.UUID        `json:"account_uuid"`
	Email       string           `json:"email"`
	Person      personDTO.Person `json:"person"`
}
