package model

// PetType enumerates the supported pet species.
type PetType string

const (
	PetTypeDog   PetType = "Dog"
	PetTypeCat   PetType = "Cat"
	PetTypeOther PetType = "Other"
)

// Valid reports whether the type is one of the supported species.
func (t PetType) Valid() bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeOther:
		return true
	}
	return false
}

// Pet represents a pet enrolled in a savings plan.
type Pet struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"userId" gorm:"not null;index"`
	Name      string  `json:"name" gorm:"size:255;not null"`
	Type      PetType `json:"type" gorm:"type:varchar(20);not null"`
	Age       int     `json:"age" gorm:"not null"`
	AvatarURL string  `json:"avatarUrl,omitempty" gorm:"size:512"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
