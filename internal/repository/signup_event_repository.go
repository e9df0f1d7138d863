package repository

import (
	"context"

	"gorm.io/gorm"

	"skytails/internal/model"
)

// SignupEventRepository defines audit log persistence operations.
type SignupEventRepository interface {
	Create(ctx context.Context, event *model.SignupEvent) error
	CreateBatch(ctx context.Context, events []model.SignupEvent) error
}

type signupEventRepository struct {
	db *gorm.DB
}

// NewSignupEventRepository builds a GORM-backed signup event repository.
func NewSignupEventRepository(db *gorm.DB) SignupEventRepository {
	return &signupEventRepository{db: db}
}

func (r *signupEventRepository) Create(ctx context.Context, event *model.SignupEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *signupEventRepository) CreateBatch(ctx context.Context, events []model.SignupEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}
