package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/auth"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger         *zap.Logger
	accountService ports.AccountService
	personService  ports.PersonService
	authService    ports.Auth
	sessions       ports.SessionStore
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	accountService ports.AccountService,
	personService ports.PersonService,
	authService ports.Auth,
	sessions ports.SessionStore,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		accountService: accountService,
		personService:  personService,
		authService:    authService,
		sessions:       sessions,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, middleware.AuthMiddleware(jwtService), ac.LogoutHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	acc, err := ac.accountService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to authenticate"},
		)
		ac.logger.Error("FindByEmail() error", zap.Error(err))
		return
	}
	if acc == nil || acc.DeletedAt != nil {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid credentials"},
		)
		return
	}

	p, err := ac.personService.FindByAccount(c.Request.Context(), acc.UUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to authenticate"},
		)
		ac.logger.Error("FindByAccount() error", zap.Error(err))
		return
	}

	token, err := ac.authService.GenerateToken(acc, p, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to authenticate"},
		)
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Stringer("account_uuid", acc.UUID))
		return
	}

	rec := services.SessionRecord(acc.UUID, acc.Email, p)
	rec.LoggedInAt = time.Now()
	if err = ac.sessions.Set(c.Request.Context(), rec); err != nil {
		ac.logger.Warn("login: session write failed",
			zap.Stringer("account_uuid", acc.UUID),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	ok, accountUUID := validator.IsUUID(c.GetString(middleware.CtxAccountID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token"},
		)
		return
	}

	if err := ac.sessions.Clear(c.Request.Context(), accountUUID); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to log out"},
		)
		ac.logger.Error("session Clear() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
