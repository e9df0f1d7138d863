package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skytails/internal/model"
	"skytails/internal/repository"
)

const dashboardCacheTTL = 1 * time.Minute

// ViewCache is the fail-safe cache surface the services use; satisfied by
// cache.Client. Errors are advisory.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func dashboardCacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:%d", userID)
}

// DashboardView is the read-only view assembled for an authenticated user.
// Pet and Plan are omitted when not yet configured; that is not an error.
type DashboardView struct {
	User            *model.User   `json:"user"`
	Pet             *model.Pet    `json:"pet,omitempty"`
	Plan            *model.Plan   `json:"plan,omitempty"`
	ProjectedGrowth []GrowthPoint `json:"projectedGrowth"`
	CareSuggestions []string      `json:"careSuggestions"`
}

// MockDashboardView is the public prototype payload.
type MockDashboardView struct {
	ProjectedGrowth []GrowthPoint `json:"projectedGrowth"`
	CareSuggestions []string      `json:"careSuggestions"`
}

// DashboardService assembles the dashboard for a resolved identity.
type DashboardService interface {
	GetDashboard(ctx context.Context, user *model.User) (*DashboardView, error)
	MockDashboard() *MockDashboardView
}

type dashboardService struct {
	petRepo  repository.PetRepository
	planRepo repository.PlanRepository
	cache    ViewCache
	now      func() time.Time
}

// NewDashboardService builds a DashboardService with repositories and cache.
func NewDashboardService(petRepo repository.PetRepository, planRepo repository.PlanRepository, cache ViewCache) DashboardService {
	return &dashboardService{
		petRepo:  petRepo,
		planRepo: planRepo,
		cache:    cache,
		now:      time.Now,
	}
}

// GetDashboard combines the user's pet and plan with the projection series
// and static care suggestions. The caller must have passed the session gate.
func (s *dashboardService) GetDashboard(ctx context.Context, user *model.User) (*DashboardView, error) {
	if data, _ := s.cache.Get(ctx, dashboardCacheKey(user.ID)); data != nil {
		var cached DashboardView
		if err := json.Unmarshal(data, &cached); err == nil {
			cached.User = user
			return &cached, nil
		}
	}

	view := &DashboardView{
		User:            user,
		CareSuggestions: careSuggestions(),
	}

	pet, err := s.petRepo.FindByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load pet: %w", err)
	}
	view.Pet = pet

	plan, err := s.planRepo.FindByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	view.Plan = plan

	if plan != nil {
		view.ProjectedGrowth = ProjectedGrowth(plan.MonthlyContribution, s.now().Year(), projectionYears)
	} else {
		view.ProjectedGrowth = mockGrowthSeries()
	}

	if payload, err := json.Marshal(view); err == nil {
		_ = s.cache.Set(ctx, dashboardCacheKey(user.ID), payload, dashboardCacheTTL)
	}
	return view, nil
}

// MockDashboard returns the fixed prototype payload.
func (s *dashboardService) MockDashboard() *MockDashboardView {
	return &MockDashboardView{
		ProjectedGrowth: mockGrowthSeries(),
		CareSuggestions: mockCareSuggestions(),
	}
}
