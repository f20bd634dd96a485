package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/domain/account"
	"github.com/LukeSky25/Material-Share-App/internal/domain/person"
)

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

type FakeAccountRepository struct {
	mu sync.Mutex

	FetchByUUIDFunc    func(ctx context.Context, uuid account.UUID) (*account.Account, error)
	FetchByEmailFunc   func(ctx context.Context, email string) (*account.Account, error)
	CreateFunc         func(ctx context.Context, email, passwordHash string) (*account.Account, error)
	UpdatePasswordFunc func(ctx context.Context, uuid account.UUID, passwordHash string) (*account.Account, error)
	DeactivateFunc     func(ctx context.Context, uuid account.UUID) (*account.Account, error)

	CreateCalls int
}

func (f *FakeAccountRepository) FetchByUUID(ctx context.Context, uuid account.UUID) (*account.Account, error) {
	return f.FetchByUUIDFunc(ctx, uuid)
}

func (f *FakeAccountRepository) FetchByEmail(ctx context.Context, email string) (*account.Account, error) {
	if f.FetchByEmailFunc != nil {
		return f.FetchByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (f *FakeAccountRepository) Create(ctx context.Context, email, passwordHash string) (*account.Account, error) {
	f.mu.Lock()
	f.CreateCalls++
	f.mu.Unlock()
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, email, passwordHash)
	}
	return &account.Account{UUID: uuid.New(), Email: email, PasswordHash: &passwordHash}, nil
}

func (f *FakeAccountRepository) UpdatePassword(ctx context.Context, uuid account.UUID, passwordHash string) (*account.Account, error) {
	return f.UpdatePasswordFunc(ctx, uuid, passwordHash)
}

func (f *FakeAccountRepository) Deactivate(ctx context.Context, uuid account.UUID) (*account.Account, error) {
	return f.DeactivateFunc(ctx, uuid)
}

type FakePersonRepository struct {
	mu sync.Mutex

	FetchByUUIDFunc    func(ctx context.Context, uuid person.UUID) (*person.Person, error)
	FetchByAccountFunc func(ctx context.Context, accountUUID person.UUID) (*person.Person, error)
	CreateFunc         func(ctx context.Context, req person.Person) (*person.Person, error)
	UpdateFunc         func(ctx context.Context, req person.Person) (*person.Person, error)

	CreateCalls int
}

func (f *FakePersonRepository) FetchByUUID(ctx context.Context, uuid person.UUID) (*person.Person, error) {
	return f.FetchByUUIDFunc(ctx, uuid)
}

func (f *FakePersonRepository) FetchByAccount(ctx context.Context, accountUUID person.UUID) (*person.Person, error) {
	if f.FetchByAccountFunc != nil {
		return f.FetchByAccountFunc(ctx, accountUUID)
	}
	return nil, nil
}

func (f *FakePersonRepository) Create(ctx context.Context, req person.Person) (*person.Person, error) {
	f.mu.Lock()
	f.CreateCalls++
	f.mu.Unlock()
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, req)
	}
	req.UUID = uuid.New()
	return &req, nil
}

func (f *FakePersonRepository) Update(ctx context.Context, req person.Person) (*person.Person, error) {
	return f.UpdateFunc(ctx, req)
}

func newSignupService(accounts *FakeAccountRepository, persons *FakePersonRepository) ports.Signup {
	return NewSignupService(
		accounts,
		persons,
		NewSignupValidator(&FakeCEPResolver{}),
		zap.NewNop(),
		newTestCounter(),
	)
}

func TestSignup_OK(t *testing.T) {
	accounts := &FakeAccountRepository{}
	persons := &FakePersonRepository{}

	res, err := newSignupService(accounts, persons).Signup(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, res.Account)
	require.NotNil(t, res.Person)
	require.Equal(t, res.Account.UUID, res.Person.AccountUUID)
	require.Equal(t, "11144477735", res.Person.Document)
	require.Equal(t, person.TypeDonor, res.Person.Type)
	require.Equal(t, 1, accounts.CreateCalls)
	require.Equal(t, 1, persons.CreateCalls)
}

func TestSignup_InvalidFormTouchesNothing(t *testing.T) {
	accounts := &FakeAccountRepository{}
	persons := &FakePersonRepository{}

	in := validInput()
	in.Name = ""

	_, err := newSignupService(accounts, persons).Signup(context.Background(), in)
	require.ErrorIs(t, err, ErrNameRequired)
	require.Zero(t, accounts.CreateCalls)
	require.Zero(t, persons.CreateCalls)
}

func TestSignup_EmailTaken(t *testing.T) {
	accUUID := uuid.New()
	accounts := &FakeAccountRepository{
		FetchByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return &account.Account{UUID: accUUID, Email: email}, nil
		},
	}
	persons := &FakePersonRepository{
		FetchByAccountFunc: func(ctx context.Context, accountUUID person.UUID) (*person.Person, error) {
			return &person.Person{UUID: uuid.New(), AccountUUID: accountUUID}, nil
		},
	}

	_, err := newSignupService(accounts, persons).Signup(context.Background(), validInput())
	require.ErrorIs(t, err, account.ErrEmailAlreadyExists)
	require.Zero(t, accounts.CreateCalls)
	require.Zero(t, persons.CreateCalls)
}

func TestSignup_ResumesAtProfilePhase(t *testing.T) {
	accUUID := uuid.New()
	accounts := &FakeAccountRepository{
		FetchByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			return &account.Account{UUID: accUUID, Email: email}, nil
		},
	}
	persons := &FakePersonRepository{}

	res, err := newSignupService(accounts, persons).Signup(context.Background(), validInput())
	require.NoError(t, err)
	require.Zero(t, accounts.CreateCalls)
	require.Equal(t, 1, persons.CreateCalls)
	require.Equal(t, accUUID, res.Person.AccountUUID)
}

func TestSignup_ProfileFailureIsDistinct(t *testing.T) {
	accounts := &FakeAccountRepository{}
	persons := &FakePersonRepository{
		CreateFunc: func(ctx context.Context, req person.Person) (*person.Person, error) {
			return nil, errors.New("connection reset")
		},
	}

	_, err := newSignupService(accounts, persons).Signup(context.Background(), validInput())
	require.ErrorIs(t, err, ErrProfileIncomplete)
	require.NotErrorIs(t, err, ErrAccountUnavailable)
	require.Equal(t, 1, accounts.CreateCalls)
}

func TestSignup_DuplicateDocument(t *testing.T) {
	accounts := &FakeAccountRepository{}
	persons := &FakePersonRepository{
		CreateFunc: func(ctx context.Context, req person.Person) (*person.Person, error) {
			return nil, person.ErrDocumentAlreadyExists
		},
	}

	_, err := newSignupService(accounts, persons).Signup(context.Background(), validInput())
	require.ErrorIs(t, err, person.ErrDocumentAlreadyExists)
	require.NotErrorIs(t, err, ErrProfileIncomplete)
}

func TestSignup_ConcurrentSubmitsCoalesce(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	accounts := &FakeAccountRepository{
		FetchByEmailFunc: func(ctx context.Context, email string) (*account.Account, error) {
			once.Do(func() { close(entered) })
			<-release
			return nil, nil
		},
	}
	persons := &FakePersonRepository{}
	svc := newSignupService(accounts, persons)

	var wg sync.WaitGroup
	results := make([]*ports.SignupResult, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.Signup(context.Background(), validInput())
		}()
	}

	<-entered
	// give the second submit time to join the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Equal(t, 1, accounts.CreateCalls)
	require.Equal(t, 1, persons.CreateCalls)
	require.Equal(t, results[0].Account.UUID, results[1].Account.UUID)
}
