package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	personDomain "github.com/LukeSky25/Material-Share-App/internal/domain/person"
	jwtSvc "github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
)

func setupPersonRouter(t *testing.T, ps ports.PersonService) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New("test-secret")

	pc := &PersonController{
		personService:   ps,
		donationService: &FakeDonationService{},
		logger:          zap.NewNop(),
	}

	r.GET(RoutePerson, pc.GetPersonHandler)
	r.PUT(RoutePerson, middleware.AuthMiddleware(j), pc.UpdatePersonHandler)

	return r, j
}

func TestUpdatePersonHandler_FieldErrorsAre400(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantBody string
	}{
		{"blank name", services.ErrNameRequired, services.ErrNameRequired.Error()},
		{"bad check digit", services.ErrInvalidDocument, services.ErrInvalidDocument.Error()},
		{"malformed cep", services.ErrInvalidCEP, services.ErrInvalidCEP.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := &FakePersonService{
				UpdatePersonFunc: func(ctx context.Context, p personDomain.Person) (*personDomain.Person, error) {
					return nil, tt.svcErr
				},
			}
			r, j := setupPersonRouter(t, ps)

			personID := uuid.New()
			headers := bearerFor(t, j, uuid.New().String(), personID.String(), "DONOR")

			rr := doReq(t, r, http.MethodPut, "/api/v1/persons/"+personID.String(),
				map[string]string{"name": "x", "document": "111.444.777-36"}, headers)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestUpdatePersonHandler_OtherPersonForbidden(t *testing.T) {
	r, j := setupPersonRouter(t, &FakePersonService{})

	headers := bearerFor(t, j, uuid.New().String(), uuid.New().String(), "DONOR")

	rr := doReq(t, r, http.MethodPut, "/api/v1/persons/"+uuid.New().String(),
		map[string]string{"name": "x"}, headers)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdatePersonHandler_OK(t *testing.T) {
	ps := &FakePersonService{
		UpdatePersonFunc: func(ctx context.Context, p personDomain.Person) (*personDomain.Person, error) {
			p.Name = "Maria Souza"
			return &p, nil
		},
	}
	r, j := setupPersonRouter(t, ps)

	personID := uuid.New()
	headers := bearerFor(t, j, uuid.New().String(), personID.String(), "DONOR")

	rr := doReq(t, r, http.MethodPut, "/api/v1/persons/"+personID.String(), map[string]string{
		"name":     "Maria Souza",
		"document": "111.444.777-35",
		"type":     "DONOR",
	}, headers)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Maria Souza")
}
