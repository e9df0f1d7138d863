package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"skytails/internal/cache"
	"skytails/internal/model"
)

// MockPetRepository is a mock implementation of PetRepository.
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, pet *model.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) FindByUserID(ctx context.Context, userID uint) (*model.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *model.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByUserID(ctx context.Context, userID uint) (*model.Plan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

// noopCache is a cache.Client with no backing Redis: every read misses.
func noopCache() *cache.Client {
	return cache.New(nil)
}

func fixedClock() time.Time {
	return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
}

func TestDashboardService_GetDashboard_FullHousehold(t *testing.T) {
	petRepo := new(MockPetRepository)
	planRepo := new(MockPlanRepository)
	user := &model.User{ID: 7, Username: "a@b.com", Email: "a@b.com"}

	petRepo.On("FindByUserID", mock.Anything, uint(7)).Return(&model.Pet{ID: 1, UserID: 7, Name: "Buddy", Type: model.PetTypeDog, Age: 3}, nil)
	planRepo.On("FindByUserID", mock.Anything, uint(7)).Return(&model.Plan{ID: 1, UserID: 7, Tier: model.PlanTierCore, MonthlyContribution: 50}, nil)

	svc := NewDashboardService(petRepo, planRepo, noopCache()).(*dashboardService)
	svc.now = fixedClock

	view, err := svc.GetDashboard(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, "Buddy", view.Pet.Name)
	assert.Equal(t, model.PlanTierCore, view.Plan.Tier)
	assert.Len(t, view.ProjectedGrowth, 5)
	assert.Equal(t, "2026", view.ProjectedGrowth[0].Year)
	assert.InDelta(t, 642.0, view.ProjectedGrowth[0].Amount, 0.001)
	assert.NotEmpty(t, view.CareSuggestions)
}

func TestDashboardService_GetDashboard_NotYetConfigured(t *testing.T) {
	petRepo := new(MockPetRepository)
	planRepo := new(MockPlanRepository)
	user := &model.User{ID: 7}

	// Absence of pet and plan is not an error.
	petRepo.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
	planRepo.On("FindByUserID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewDashboardService(petRepo, planRepo, noopCache())
	view, err := svc.GetDashboard(context.Background(), user)

	assert.NoError(t, err)
	assert.Nil(t, view.Pet)
	assert.Nil(t, view.Plan)
	// Without a plan the fixed prototype series is served.
	assert.Equal(t, mockGrowthSeries(), view.ProjectedGrowth)
}

func TestDashboardService_GetDashboard_StoreFailure(t *testing.T) {
	petRepo := new(MockPetRepository)
	planRepo := new(MockPlanRepository)
	user := &model.User{ID: 7}

	petRepo.On("FindByUserID", mock.Anything, uint(7)).Return(nil, assert.AnError)

	svc := NewDashboardService(petRepo, planRepo, noopCache())
	view, err := svc.GetDashboard(context.Background(), user)

	assert.Error(t, err)
	assert.Nil(t, view)
}

func TestDashboardService_MockDashboard(t *testing.T) {
	svc := NewDashboardService(nil, nil, noopCache())
	view := svc.MockDashboard()

	assert.Equal(t, mockGrowthSeries(), view.ProjectedGrowth)
	assert.Equal(t, []string{
		"Annual Dental Cleaning",
		"Vaccine Booster (Distemper)",
		"Wellness Exam",
	}, view.CareSuggestions)
}
