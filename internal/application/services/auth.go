package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const tokenTTL = time.Hour

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(jwtService *jwt.Service) ports.Auth {
	return &AuthService{jwtService: jwtService}
}

func (as *AuthService) GenerateToken(acc *account.Account, p *person.Person, requestPassword string) (string, error) {
	if acc == nil || acc.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*acc.PasswordHash), []byte(requestPassword)); err != nil {
		return "", ErrInvalidCredentials
	}

	var personID, userType string
	if p != nil {
		personID = p.UUID.String()
		userType = string(p.Type)
	}

	token, err := as.jwtService.GenerateJWT(acc.UUID.String(), personID, userType, tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
