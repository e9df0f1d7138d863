package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skytails/internal/model"
)

func strPtr(s string) *string { return &s }

func TestWizard_NextClampsAtFinalStep(t *testing.T) {
	w := New()
	w.Merge(Patch{
		PetName:  strPtr("Buddy"),
		Email:    strPtr("a@b.com"),
		Password: strPtr("x"),
		Country:  strPtr("US"),
	})

	for i := 0; i < 10; i++ {
		w.Next()
	}
	assert.Equal(t, StepFinalDetails, w.Step())

	// Repeated advance at the boundary is an idempotent no-op.
	assert.False(t, w.Next())
	assert.Equal(t, StepFinalDetails, w.Step())
}

func TestWizard_BackClampsAtLanding(t *testing.T) {
	w := New()
	assert.False(t, w.Back())
	assert.Equal(t, StepLanding, w.Step())

	w.Merge(Patch{PetName: strPtr("Buddy")})
	assert.True(t, w.Next())
	assert.True(t, w.Next())
	assert.True(t, w.Back())
	assert.True(t, w.Back())
	assert.False(t, w.Back())
	assert.Equal(t, StepLanding, w.Step())
}

func TestWizard_PetInfoGate(t *testing.T) {
	w := New()
	assert.True(t, w.Next()) // landing -> pet info

	// Empty pet name: advance is rejected and state does not change.
	assert.False(t, w.Next())
	assert.Equal(t, StepPetInfo, w.Step())

	w.Merge(Patch{PetName: strPtr("Buddy")})
	assert.True(t, w.Next())
	assert.Equal(t, StepPlanSelection, w.Step())
}

func TestWizard_AccountCreationGate(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		country  string
		pass     bool
	}{
		{"all empty", "", "", "", false},
		{"missing password", "a@b.com", "", "US", false},
		{"missing country", "a@b.com", "x", "", false},
		{"missing email", "", "x", "US", false},
		{"complete", "a@b.com", "x", "US", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			w.Merge(Patch{PetName: strPtr("Buddy")})
			for w.Step() != StepAccountCreation {
				assert.True(t, w.Next())
			}
			w.Merge(Patch{
				Email:    strPtr(tt.email),
				Password: strPtr(tt.password),
				Country:  strPtr(tt.country),
			})

			moved := w.Next()
			assert.Equal(t, tt.pass, moved)
			if !tt.pass {
				assert.Equal(t, StepAccountCreation, w.Step())
			} else {
				assert.Equal(t, StepFinalDetails, w.Step())
			}
		})
	}
}

func TestWizard_MergeIsPartial(t *testing.T) {
	w := New()

	// Defaults present before any merge.
	assert.Equal(t, model.PetTypeDog, w.Data().PetType)
	assert.Equal(t, 3, w.Data().PetAge)
	assert.Equal(t, model.PlanTierCore, w.Data().PlanTier)
	assert.Equal(t, 50, w.Data().MonthlyContribution)

	w.Merge(Patch{PetName: strPtr("Buddy")})
	w.Merge(Patch{Email: strPtr("a@b.com")})

	// Earlier fields survive later partial merges.
	assert.Equal(t, "Buddy", w.Data().PetName)
	assert.Equal(t, "a@b.com", w.Data().Email)
	assert.Equal(t, model.PlanTierCore, w.Data().PlanTier)
}

func TestWizard_Progress(t *testing.T) {
	w := New()
	_, _, ok := w.Progress()
	assert.False(t, ok, "landing shows no progress")

	w.Merge(Patch{PetName: strPtr("Buddy")})
	w.Next()
	current, total, ok := w.Progress()
	assert.True(t, ok)
	assert.Equal(t, 1, current)
	assert.Equal(t, 5, total)
}

func TestWizard_BuildSubmission(t *testing.T) {
	w := New()
	age := 3
	contribution := 50
	petType := model.PetTypeDog
	tier := model.PlanTierCore
	w.Merge(Patch{
		PetName:             strPtr("Buddy"),
		PetType:             &petType,
		PetAge:              &age,
		PlanTier:            &tier,
		MonthlyContribution: &contribution,
		Email:               strPtr("a@b.com"),
		Password:            strPtr("x"),
		Country:             strPtr("US"),
	})

	input := w.BuildSubmission()
	assert.Equal(t, "a@b.com", input.User.Email)
	assert.Equal(t, "US", input.User.Country)
	assert.Equal(t, "Buddy", input.Pet.Name)
	assert.Equal(t, model.PetTypeDog, input.Pet.Type)
	assert.Equal(t, 3, input.Pet.Age)
	assert.Equal(t, model.PlanTierCore, input.Plan.Tier)
	assert.Equal(t, 50, input.Plan.MonthlyContribution)
}
