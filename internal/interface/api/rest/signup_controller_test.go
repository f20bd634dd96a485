package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/signup"
)

type FakeSignupService struct {
	SignupFunc func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error)
}

func (f *FakeSignupService) Signup(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
	if f.SignupFunc == nil {
		return nil, errors.New("not used")
	}
	return f.SignupFunc(ctx, in)
}

func setupSignupRouter(t *testing.T, ss ports.Signup) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	sc := &SignupController{
		logger:        zap.NewNop(),
		signupService: ss,
	}
	r.POST(RouteSignup, sc.SignupHandler)

	return r
}

func validSignupRequest() signup.Request {
	return signup.Request{
		Name:      "Maria Silva",
		Document:  "111.444.777-35",
		BirthDate: "15/03/1990",
		Phone:     "(11) 98765-4321",
		CEP:       "20040-030",
		Email:     "maria@example.com",
		Password:  "secret1",
		UserType:  "DONOR",
	}
}

func TestSignupController_SignupHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockSS     func() ports.Signup
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 invalid json",
			body:       `{"name":`,
			mockSS:     func() ports.Signup { return &FakeSignupService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "400 validation failure with rule message",
			body: validSignupRequest(),
			mockSS: func() ports.Signup {
				return &FakeSignupService{
					SignupFunc: func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
						return nil, services.ErrInvalidDocument
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    services.ErrInvalidDocument.Error(),
		},
		{
			name: "400 cep lookup failures stay client errors",
			body: validSignupRequest(),
			mockSS: func() ports.Signup {
				return &FakeSignupService{
					SignupFunc: func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
						return nil, services.ErrCEPLookupFailed
					},
				}
			},
			wantStatus: http.StatusBadRequest,
			wantErr:    services.ErrCEPLookupFailed.Error(),
		},
		{
			name: "409 email taken",
			body: validSignupRequest(),
			mockSS: func() ports.Signup {
				return &FakeSignupService{
					SignupFunc: func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
						return nil, account.ErrEmailAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "409 document taken",
			body: validSignupRequest(),
			mockSS: func() ports.Signup {
				return &FakeSignupService{
					SignupFunc: func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
						return nil, person.ErrDocumentAlreadyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "500 profile phase failure",
			body: validSignupRequest(),
			mockSS: func() ports.Signup {
				return &FakeSignupService{
					SignupFunc: func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
						return nil, errors.Join(services.ErrProfileIncomplete, errors.New("db down"))
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    services.ErrProfileIncomplete.Error(),
		},
		{
			name: "201 success",
			body: validSignupRequest(),
			mockSS: func() ports.Signup {
				return &FakeSignupService{
					SignupFunc: func(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
						accUUID := uuid.New()
						return &ports.SignupResult{
							Account: &account.Account{UUID: accUUID, Email: in.Email},
							Person: &person.Person{
								UUID:        uuid.New(),
								AccountUUID: accUUID,
								Name:        in.Name,
								Document:    "11144477735",
								Type:        person.Type(in.UserType),
							},
						}, nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupSignupRouter(t, tt.mockSS())
			rr := doReq(t, r, http.MethodPost, RouteSignup, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErr != "" {
				var resp map[string]any
				_ = json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.Equal(t, tt.wantErr, resp["error"])
			}

			if tt.wantStatus == http.StatusCreated {
				var resp signup.Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "111.444.777-35", resp.Person.Document)
			}
		})
	}
}
