package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skytails/internal/model"
)

// OnboardingRepository performs the atomic multi-record creation at the heart
// of onboarding: user, pet, and plan either all persist or none do.
type OnboardingRepository interface {
	CreateUserWithData(ctx context.Context, user *model.User, pet *model.Pet, plan *model.Plan) error
}

type onboardingRepository struct {
	db *gorm.DB
}

// NewOnboardingRepository builds a GORM-backed onboarding repository.
func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

// CreateUserWithData inserts the user first so the pet and plan can carry its
// generated id. Any failure rolls the whole transaction back; a context
// cancellation mid-transaction aborts it the same way, so no partial rows are
// ever visible.
func (r *onboardingRepository) CreateUserWithData(ctx context.Context, user *model.User, pet *model.Pet, plan *model.Plan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		pet.UserID = user.ID
		if err := tx.Create(pet).Error; err != nil {
			return fmt.Errorf("create pet: %w", err)
		}
		plan.UserID = user.ID
		if err := tx.Create(plan).Error; err != nil {
			return fmt.Errorf("create plan: %w", err)
		}
		return nil
	})
}
