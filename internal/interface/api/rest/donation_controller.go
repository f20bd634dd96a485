package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	donationDomain "github.com/LukeSky25/Material-Share-App/internal/domain/donation"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/donation"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/validator"
)

type DonationController struct {
	donationService ports.DonationService
	logger          *zap.Logger
}

func NewDonationController(
	r *gin.Engine,
	donationService ports.DonationService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *DonationController {
	dc := &DonationController{
		donationService: donationService,
		logger:          logger,
	}

	r.GET(RouteDonation, dc.GetDonationHandler)
	r.POST(RouteDonations, middleware.AuthMiddleware(jwtService), dc.CreateDonationHandler)
	r.PUT(RouteDonation, middleware.AuthMiddleware(jwtService), dc.UpdateDonationHandler)
	r.PUT(RouteDonationStatus, middleware.AuthMiddleware(jwtService), dc.SetDonationStatusHandler)

	return dc
}

// listing field checks, surfaced as 400 with the rule's own message
var donationValidationErrs = []error{
	services.ErrDonationNameRequired,
	services.ErrDonationDescriptionRequired,
	services.ErrDonationInvalidQuantity,
	services.ErrDonationCategoryRequired,
	services.ErrDonationInvalidCEP,
	services.ErrDonationHouseNumberRequired,
	services.ErrCategoryInactive,
}

func (dc *DonationController) GetDonationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("donation_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "donation_id must be a valid UUID"},
		)
		return
	}

	d, err := dc.donationService.FindByID(c.Request.Context(), uuid)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a donation"},
		)
		dc.logger.Error("FindByID() error", zap.Error(err))
		return
	}

	if d == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "donation not found"},
		)
		return
	}

	c.JSON(http.StatusOK, donation.ToResponseDonation(*d))
}

func (dc *DonationController) CreateDonationHandler(c *gin.Context) {
	ok, ownerUUID := validator.IsUUID(c.GetString(middleware.CtxPersonID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token carries no person"},
		)
		return
	}

	var req donation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	dDomain := donation.ToDomainDonation(req)
	dDomain.OwnerUUID = ownerUUID

	d, err := dc.donationService.CreateDonation(c.Request.Context(), dDomain)
	if err != nil {
		for _, sentinel := range donationValidationErrs {
			if errors.Is(err, sentinel) {
				c.JSON(http.StatusBadRequest, gin.H{"error": sentinel.Error()})
				return
			}
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a donation"},
		)
		dc.logger.Error("CreateDonation() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, donation.ToResponseDonation(*d))
}

func (dc *DonationController) UpdateDonationHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("donation_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "donation_id must be a valid UUID"},
		)
		return
	}
	ok, ownerUUID := validator.IsUUID(c.GetString(middleware.CtxPersonID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token carries no person"},
		)
		return
	}

	var req donation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	dDomain := donation.ToDomainDonation(req)
	dDomain.UUID = uuid
	dDomain.OwnerUUID = ownerUUID

	d, err := dc.donationService.UpdateDonation(c.Request.Context(), dDomain)
	if err != nil {
		dc.writeDonationError(c, err, "UpdateDonation")
		return
	}

	c.JSON(http.StatusOK, donation.ToResponseDonation(*d))
}

func (dc *DonationController) SetDonationStatusHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("donation_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "donation_id must be a valid UUID"},
		)
		return
	}
	ok, actorUUID := validator.IsUUID(c.GetString(middleware.CtxPersonID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "token carries no person"},
		)
		return
	}

	var req donation.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	next, err := donationDomain.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	d, err := dc.donationService.SetStatus(c.Request.Context(), uuid, next, actorUUID)
	if err != nil {
		dc.writeDonationError(c, err, "SetStatus")
		return
	}

	c.JSON(http.StatusOK, donation.ToResponseDonation(*d))
}

func (dc *DonationController) writeDonationError(c *gin.Context, err error, op string) {
	for _, sentinel := range donationValidationErrs {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": sentinel.Error()})
			return
		}
	}
	switch {
	case errors.Is(err, services.ErrDonationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
	case errors.Is(err, services.ErrDonationNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDonationNotEditable),
		errors.Is(err, donationDomain.ErrTerminalStatus),
		errors.Is(err, donationDomain.ErrIllegalTransition),
		errors.Is(err, donationDomain.ErrStatusConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, donationDomain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update a donation"})
		dc.logger.Error(op+"() error", zap.Error(err))
	}
}
