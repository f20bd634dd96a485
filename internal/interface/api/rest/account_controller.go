package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/validator"
)

type AccountController struct {
	accountService ports.AccountService
	logger         *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	accountService ports.AccountService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *AccountController {
	ac := &AccountController{
		accountService: accountService,
		logger:         logger,
	}

	r.DELETE(RouteAccount, middleware.AuthMiddleware(jwtService), ac.DeactivateAccountHandler)

	return ac
}

func (ac *AccountController) DeactivateAccountHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a valid UUID"},
		)
		return
	}

	// an account can only deactivate itself
	if c.GetString(middleware.CtxAccountID) != uuid.String() {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "cannot deactivate another account"},
		)
		return
	}

	if err := ac.accountService.Deactivate(c.Request.Context(), uuid); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to deactivate account"},
		)
		ac.logger.Error("Deactivate() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
