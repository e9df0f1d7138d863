package repository

import (
	"context"

	"gorm.io/gorm"

	"skytails/internal/model"
)

// PetRepository defines pet persistence operations.
type PetRepository interface {
	Create(ctx context.Context, pet *model.Pet) error
	FindByUserID(ctx context.Context, userID uint) (*model.Pet, error)
}

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository builds a GORM-backed pet repository.
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *model.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

// FindByUserID returns the owner's first pet by id. Multiplicity is left
// structurally open for future multi-pet support.
func (r *petRepository) FindByUserID(ctx context.Context, userID uint) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}
