package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skytails/internal/auth"
	apperrors "skytails/internal/errors"
	"skytails/internal/model"
)

// MockOnboardingRepository is a mock implementation of OnboardingRepository.
type MockOnboardingRepository struct {
	mock.Mock
}

func (m *MockOnboardingRepository) CreateUserWithData(ctx context.Context, user *model.User, pet *model.Pet, plan *model.Plan) error {
	args := m.Called(ctx, user, pet, plan)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID uint, username string) (string, error) {
	args := m.Called(ctx, userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*auth.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.SessionData), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockSignupEventRepository is a mock implementation of SignupEventRepository.
type MockSignupEventRepository struct {
	mock.Mock
}

func (m *MockSignupEventRepository) Create(ctx context.Context, event *model.SignupEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockSignupEventRepository) CreateBatch(ctx context.Context, events []model.SignupEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// recordingCache is a ViewCache that remembers which keys were dropped.
type recordingCache struct {
	deleted []string
}

func (r *recordingCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (r *recordingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (r *recordingCache) Delete(ctx context.Context, key string) error {
	r.deleted = append(r.deleted, key)
	return nil
}

func validInput() *OnboardingInput {
	return &OnboardingInput{
		User: OnboardingUser{Email: "a@b.com", Password: "x", Country: "US"},
		Pet:  OnboardingPet{Name: "Buddy", Type: model.PetTypeDog, Age: 3},
		Plan: OnboardingPlan{Tier: model.PlanTierCore, MonthlyContribution: 50},
	}
}

func newTestOnboardingService(repo *MockOnboardingRepository, sessions *MockSessionStore, events *MockSignupEventRepository) (OnboardingService, *recordingCache) {
	// The async audit worker may or may not flush within a test's lifetime.
	events.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	events.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Maybe()
	tokens := auth.NewTokenService("test-secret")
	cache := &recordingCache{}
	return NewOnboardingService(repo, sessions, tokens, events, cache), cache
}

func TestOnboardingService_Submit_Success(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	repo.On("CreateUserWithData", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Pet"), mock.AnythingOfType("*model.Plan")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).Return(nil)
	sessions.On("Create", mock.Anything, uint(7), "a@b.com").Return("session-id", nil)

	svc, _ := newTestOnboardingService(repo, sessions, events)
	result, err := svc.Submit(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.NotEmpty(t, result.SessionToken)
	repo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestOnboardingService_Submit_HashesPassword(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	var persisted *model.User
	repo.On("CreateUserWithData", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*model.User)
			persisted.ID = 1
		}).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything, mock.Anything).Return("sid", nil)

	svc, _ := newTestOnboardingService(repo, sessions, events)
	_, err := svc.Submit(context.Background(), validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "x", persisted.PasswordHash, "password must never be stored in the clear")
	assert.Equal(t, "a@b.com", persisted.Username, "username defaults to email")
}

func TestOnboardingService_Submit_InvalidatesDashboardCache(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	repo.On("CreateUserWithData", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything, mock.Anything).Return("sid", nil)

	svc, cache := newTestOnboardingService(repo, sessions, events)
	_, err := svc.Submit(context.Background(), validInput())

	assert.NoError(t, err)
	// A cached view under a reused id must not survive the new signup.
	assert.Contains(t, cache.deleted, "dashboard:7")
}

func TestOnboardingService_Submit_PersistenceFailure(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	repo.On("CreateUserWithData", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	svc, cache := newTestOnboardingService(repo, sessions, events)
	result, err := svc.Submit(context.Background(), validInput())

	assert.Error(t, err)
	assert.Nil(t, result)
	// The transaction rolled back: no session may be established.
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, cache.deleted)
}

func TestOnboardingService_Submit_DuplicateIdentity(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	repo.On("CreateUserWithData", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(gorm.ErrDuplicatedKey)

	svc, _ := newTestOnboardingService(repo, sessions, events)
	_, err := svc.Submit(context.Background(), validInput())

	assert.ErrorIs(t, err, apperrors.ErrUserExists)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestOnboardingService_Submit_SessionFailureDoesNotMaskCreation(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	repo.On("CreateUserWithData", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything, mock.Anything).Return("", assert.AnError)

	svc, _ := newTestOnboardingService(repo, sessions, events)
	result, err := svc.Submit(context.Background(), validInput())

	// The records are committed; erroring here would push the client into a
	// retry that collides with its own account.
	assert.NoError(t, err)
	assert.Equal(t, uint(7), result.UserID)
	assert.Empty(t, result.SessionToken)
}

func TestOnboardingService_CloseFlushesQueuedEvents(t *testing.T) {
	repo := new(MockOnboardingRepository)
	sessions := new(MockSessionStore)
	events := new(MockSignupEventRepository)

	repo.On("CreateUserWithData", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).Return(nil)
	sessions.On("Create", mock.Anything, mock.Anything, mock.Anything).Return("sid", nil)
	events.On("CreateBatch", mock.Anything, mock.MatchedBy(func(batch []model.SignupEvent) bool {
		return len(batch) == 1 && batch[0].Status == model.SignupStatusAccepted
	})).Return(nil).Once()

	tokens := auth.NewTokenService("test-secret")
	svc := NewOnboardingService(repo, sessions, tokens, events, &recordingCache{})

	_, err := svc.Submit(context.Background(), validInput())
	assert.NoError(t, err)

	// Close blocks until the worker has drained the queue.
	svc.Close()
	events.AssertExpectations(t)
}
