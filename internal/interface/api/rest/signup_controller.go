package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/signup"
)

type SignupController struct {
	logger        *zap.Logger
	signupService ports.Signup
}

func NewSignupController(
	r *gin.Engine,
	logger *zap.Logger,
	signupService ports.Signup,
) *SignupController {
	sc := &SignupController{
		logger:        logger,
		signupService: signupService,
	}

	r.POST(RouteSignup, sc.SignupHandler)

	return sc
}

// validation errors surfaced with the rule's own message, one at a
// time, in pipeline order
var signupValidationErrs = []error{
	services.ErrNameRequired,
	services.ErrInvalidBirthDate,
	services.ErrFutureBirthDate,
	services.ErrInvalidPhone,
	services.ErrInvalidCEP,
	services.ErrCEPNotFound,
	services.ErrCEPLookupFailed,
	services.ErrInvalidDocument,
	services.ErrInvalidEmail,
	services.ErrInvalidPassword,
	services.ErrInvalidUserType,
}

func (sc *SignupController) SignupHandler(c *gin.Context) {
	var req signup.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	res, err := sc.signupService.Signup(c.Request.Context(), signup.ToSignupInput(req))
	if err != nil {
		for _, sentinel := range signupValidationErrs {
			if errors.Is(err, sentinel) {
				c.JSON(http.StatusBadRequest, gin.H{"error": sentinel.Error()})
				return
			}
		}
		switch {
		case errors.Is(err, account.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, person.ErrDocumentAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProfileIncomplete):
			c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrProfileIncomplete.Error()})
			sc.logger.Error("Signup() profile phase error", zap.Error(err))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
			sc.logger.Error("Signup() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, signup.ToResponse(*res))
}
