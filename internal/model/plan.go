package model

// PlanTier enumerates the fixed service levels.
type PlanTier string

const (
	PlanTierClassic PlanTier = "Classic"
	PlanTierCore    PlanTier = "Core"
	PlanTierPremium PlanTier = "Premium"
)

// Valid reports whether the tier is one of the fixed service levels.
func (t PlanTier) Valid() bool {
	switch t {
	case PlanTierClassic, PlanTierCore, PlanTierPremium:
		return true
	}
	return false
}

// Plan represents a user's monthly savings plan. The contribution is a
// currency-minor-unit-agnostic integer.
type Plan struct {
	ID                  uint     `json:"id" gorm:"primaryKey"`
	UserID              uint     `json:"userId" gorm:"not null;index"`
	Tier                PlanTier `json:"tier" gorm:"type:varchar(20);not null"`
	MonthlyContribution int      `json:"monthlyContribution" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
