package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	personDomain "github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	donationDTO "github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/donation"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/person"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/validator"
)

type PersonController struct {
	personService   ports.PersonService
	donationService ports.DonationService
	logger          *zap.Logger
}

func NewPersonController(
	r *gin.Engine,
	personService ports.PersonService,
	donationService ports.DonationService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *PersonController {
	pc := &PersonController{
		personService:   personService,
		donationService: donationService,
		logger:          logger,
	}

	r.GET(RoutePerson, pc.GetPersonHandler)
	r.PUT(RoutePerson, middleware.AuthMiddleware(jwtService), pc.UpdatePersonHandler)
	r.GET(RoutePersonDonations, pc.GetPersonDonationsHandler)
	r.GET(RoutePersonRequestedDonations, middleware.AuthMiddleware(jwtService), pc.GetRequestedDonationsHandler)

	return pc
}

// field errors a profile edit can surface, in check order
var personValidationErrs = []error{
	services.ErrNameRequired,
	services.ErrFutureBirthDate,
	services.ErrInvalidPhone,
	services.ErrInvalidCEP,
	services.ErrInvalidDocument,
	services.ErrInvalidUserType,
}

func (pc *PersonController) GetPersonHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("person_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "person_id must be a valid UUID"},
		)
		return
	}

	p, err := pc.personService.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a person"},
		)
		pc.logger.Error("FindByID() error", zap.Error(err))
		return
	}

	if p == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "person not found"},
		)
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePerson(*p))
}

func (pc *PersonController) UpdatePersonHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("person_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "person_id must be a valid UUID"},
		)
		return
	}

	// only the profile owner may edit it
	if c.GetString(middleware.CtxPersonID) != uuid.String() {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "cannot edit another person's profile"},
		)
		return
	}

	var req person.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	pDomain, err := person.ToDomainPerson(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	pDomain.UUID = uuid

	p, err := pc.personService.UpdatePerson(c.Request.Context(), pDomain)
	if err != nil {
		for _, sentinel := range personValidationErrs {
			if errors.Is(err, sentinel) {
				c.JSON(http.StatusBadRequest, gin.H{"error": sentinel.Error()})
				return
			}
		}
		switch {
		case errors.Is(err, services.ErrPersonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
		case errors.Is(err, personDomain.ErrDocumentAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update a person"})
			pc.logger.Error("UpdatePerson() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, person.ToResponsePerson(*p))
}

func (pc *PersonController) GetPersonDonationsHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("person_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "person_id must be a valid UUID"},
		)
		return
	}

	ds, err := pc.donationService.FindByOwner(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get donations"},
		)
		pc.logger.Error("FindByOwner() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, donationDTO.ResponseData{
		Data: donationDTO.ToResponseDonations(ds),
	})
}

func (pc *PersonController) GetRequestedDonationsHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("person_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "person_id must be a valid UUID"},
		)
		return
	}

	ds, err := pc.donationService.FindRequestedByBeneficiary(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get donations"},
		)
		pc.logger.Error("FindRequestedByBeneficiary() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, donationDTO.ResponseData{
		Data: donationDTO.ToResponseDonations(ds),
	})
}
