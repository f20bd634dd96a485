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

	"github.com/LukeSky25/Material-Share-App/internal/application/services"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
	jwtSvc "github.com/LukeSky25/Material-Share-App/internal/infrastructure/jwt"
	"github.com/LukeSky25/Material-Share-App/internal/infrastructure/session"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/auth"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/middleware"
)

type FakeAccountService struct {
	FindByUUIDFunc  func(ctx context.Context, id account.UUID) (*account.Account, error)
	FindByEmailFunc func(ctx context.Context, email string) (*account.Account, error)
	DeactivateFunc  func(ctx context.Context, id account.UUID) error
}

func (f *FakeAccountService) FindByUUID(ctx context.Context, id account.UUID) (*account.Account, error) {
	if f.FindByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByUUIDFunc(ctx, id)
}
func (f *FakeAccountService) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	if f.FindByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeAccountService) Deactivate(ctx context.Context, id account.UUID) error {
	if f.DeactivateFunc == nil {
		return errors.New("not used")
	}
	return f.DeactivateFunc(ctx, id)
}

type FakePersonService struct {
	FindByIDFunc      func(ctx context.Context, id person.UUID) (*person.Person, error)
	FindByAccountFunc func(ctx context.Context, accountUUID person.UUID) (*person.Person, error)
	UpdatePersonFunc  func(ctx context.Context, p person.Person) (*person.Person, error)
}

func (f *FakePersonService) FindByID(ctx context.Context, id person.UUID) (*person.Person, error) {
	if f.FindByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakePersonService) FindByAccount(ctx context.Context, accountUUID person.UUID) (*person.Person, error) {
	if f.FindByAccountFunc == nil {
		return nil, nil
	}
	return f.FindByAccountFunc(ctx, accountUUID)
}
func (f *FakePersonService) UpdatePerson(ctx context.Context, p person.Person) (*person.Person, error) {
	if f.UpdatePersonFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdatePersonFunc(ctx, p)
}

type FakeAuth struct {
	GenerateTokenFunc func(acc *account.Account, p *person.Person, requestPassword string) (string, error)
}

func (f *FakeAuth) GenerateToken(acc *account.Account, p *person.Person, requestPassword string) (string, error) {
	if f.GenerateTokenFunc == nil {
		return "", errors.New("not used")
	}
	return f.GenerateTokenFunc(acc, p, requestPassword)
}

type FakeSessions struct {
	records map[uuid.UUID]session.Record

	SetCalls   int
	ClearCalls int
}

func NewFakeSessions() *FakeSessions {
	return &FakeSessions{records: make(map[uuid.UUID]session.Record)}
}

func (f *FakeSessions) Get(ctx context.Context, accountUUID uuid.UUID) (*session.Record, error) {
	rec, ok := f.records[accountUUID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
func (f *FakeSessions) Set(ctx context.Context, rec session.Record) error {
	f.SetCalls++
	f.records[rec.AccountUUID] = rec
	return nil
}
func (f *FakeSessions) Clear(ctx context.Context, accountUUID uuid.UUID) error {
	f.ClearCalls++
	delete(f.records, accountUUID)
	return nil
}

func setupAuthRouter(t *testing.T, as *FakeAccountService, ps *FakePersonService, a *FakeAuth, sessions *FakeSessions) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	j := jwtSvc.New("test-secret")

	ac := &AuthController{
		logger:         zap.NewNop(),
		accountService: as,
		personService:  ps,
		authService:    a,
		sessions:       sessions,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteLogout, middleware.AuthMiddleware(j), ac.LogoutHandler)

	return r, j
}

func TestAuthController_LoginHandler(t *testing.T) {
	accUUID := uuid.New()
	hash := "$2a$10$fake"

	t.Run("400 missing fields", func(t *testing.T) {
		r, _ := setupAuthRouter(t, &FakeAccountService{}, &FakePersonService{}, &FakeAuth{}, NewFakeSessions())
		rr := doReq(t, r, http.MethodPost, RouteLogin, auth.LoginRequest{Email: "", Password: ""}, nil)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("401 unknown email", func(t *testing.T) {
		as := &FakeAccountService{
			FindByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
				return nil, nil
			},
		}
		r, _ := setupAuthRouter(t, as, &FakePersonService{}, &FakeAuth{}, NewFakeSessions())
		rr := doReq(t, r, http.MethodPost, RouteLogin, auth.LoginRequest{Email: "nobody@example.com", Password: "secret1"}, nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("401 wrong password", func(t *testing.T) {
		as := &FakeAccountService{
			FindByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
				return &account.Account{UUID: accUUID, Email: email, PasswordHash: &hash}, nil
			},
		}
		a := &FakeAuth{
			GenerateTokenFunc: func(acc *account.Account, p *person.Person, pw string) (string, error) {
				return "", services.ErrInvalidCredentials
			},
		}
		sessions := NewFakeSessions()
		r, _ := setupAuthRouter(t, as, &FakePersonService{}, a, sessions)
		rr := doReq(t, r, http.MethodPost, RouteLogin, auth.LoginRequest{Email: "maria@example.com", Password: "wrong"}, nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Zero(t, sessions.SetCalls)
	})

	t.Run("500 infrastructure error is not 401", func(t *testing.T) {
		as := &FakeAccountService{
			FindByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
				return nil, errors.New("db down")
			},
		}
		r, _ := setupAuthRouter(t, as, &FakePersonService{}, &FakeAuth{}, NewFakeSessions())
		rr := doReq(t, r, http.MethodPost, RouteLogin, auth.LoginRequest{Email: "maria@example.com", Password: "secret1"}, nil)
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("200 writes session", func(t *testing.T) {
		personUUID := uuid.New()
		as := &FakeAccountService{
			FindByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
				return &account.Account{UUID: accUUID, Email: email, PasswordHash: &hash}, nil
			},
		}
		ps := &FakePersonService{
			FindByAccountFunc: func(ctx context.Context, accountUUID person.UUID) (*person.Person, error) {
				return &person.Person{UUID: personUUID, AccountUUID: accountUUID, Name: "Maria", Type: person.TypeDonor}, nil
			},
		}
		a := &FakeAuth{
			GenerateTokenFunc: func(acc *account.Account, p *person.Person, pw string) (string, error) {
				return "token-123", nil
			},
		}
		sessions := NewFakeSessions()
		r, _ := setupAuthRouter(t, as, ps, a, sessions)

		rr := doReq(t, r, http.MethodPost, RouteLogin, auth.LoginRequest{Email: "maria@example.com", Password: "secret1"}, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "token-123", resp["access_token"])

		require.Equal(t, 1, sessions.SetCalls)
		rec := sessions.records[accUUID]
		assert.Equal(t, personUUID, rec.PersonUUID)
		assert.Equal(t, "Maria", rec.Name)
		assert.False(t, rec.LoggedInAt.IsZero())
	})
}

func TestAuthController_LogoutHandler(t *testing.T) {
	accUUID := uuid.New()
	sessions := NewFakeSessions()
	sessions.records[accUUID] = session.Record{AccountUUID: accUUID}

	r, j := setupAuthRouter(t, &FakeAccountService{}, &FakePersonService{}, &FakeAuth{}, sessions)

	headers := bearerFor(t, j, accUUID.String(), uuid.New().String(), "DONOR")
	rr := doReq(t, r, http.MethodPost, RouteLogout, nil, headers)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, 1, sessions.ClearCalls)

	rr = doReq(t, r, http.MethodPost, RouteLogout, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
