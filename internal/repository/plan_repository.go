package repository

import (
	"context"

	"gorm.io/gorm"

	"skytails/internal/model"
)

// PlanRepository defines plan persistence operations.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.Plan) error
	FindByUserID(ctx context.Context, userID uint) (*model.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository builds a GORM-backed plan repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) FindByUserID(ctx context.Context, userID uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}
