// Package wizard holds the in-progress onboarding form across six ordered
// steps. It is a pure state machine: rendering lives in internal/tui and the
// authoritative validation lives server-side.
package wizard

import (
	"skytails/internal/model"
	"skytails/internal/service"
)

// Step is a wizard position. Navigation clamps to [StepLanding, StepFinalDetails].
type Step int

const (
	StepLanding Step = iota
	StepPetInfo
	StepPlanSelection
	StepPreview
	StepAccountCreation
	StepFinalDetails
)

// TotalSteps is the denominator of the progress indicator (landing excluded).
const TotalSteps = 5

// String returns the step's display name.
func (s Step) String() string {
	switch s {
	case StepLanding:
		return "Landing"
	case StepPetInfo:
		return "Pet Info"
	case StepPlanSelection:
		return "Plan Selection"
	case StepPreview:
		return "Preview"
	case StepAccountCreation:
		return "Account Creation"
	case StepFinalDetails:
		return "Final Details"
	}
	return "Unknown"
}

// FormData is the accumulating onboarding record. Inputs merge into it
// partially; it is never replaced wholesale.
type FormData struct {
	PetName             string
	PetType             model.PetType
	PetAge              int
	PlanTier            model.PlanTier
	MonthlyContribution int
	Email               string
	Password            string
	Country             string
}

// Patch is a partial update to FormData. Nil fields are left untouched.
type Patch struct {
	PetName             *string
	PetType             *model.PetType
	PetAge              *int
	PlanTier            *model.PlanTier
	MonthlyContribution *int
	Email               *string
	Password            *string
	Country             *string
}

// Wizard is the client-side onboarding state machine.
type Wizard struct {
	step Step
	data FormData
}

// New starts a wizard at the landing step with the product defaults.
func New() *Wizard {
	return &Wizard{
		step: StepLanding,
		data: FormData{
			PetType:             model.PetTypeDog,
			PetAge:              3,
			PlanTier:            model.PlanTierCore,
			MonthlyContribution: 50,
		},
	}
}

// Step returns the current position.
func (w *Wizard) Step() Step { return w.step }

// Data returns a copy of the accumulated form record.
func (w *Wizard) Data() FormData { return w.data }

// Merge applies a partial update to the form record.
func (w *Wizard) Merge(p Patch) {
	if p.PetName != nil {
		w.data.PetName = *p.PetName
	}
	if p.PetType != nil {
		w.data.PetType = *p.PetType
	}
	if p.PetAge != nil {
		w.data.PetAge = *p.PetAge
	}
	if p.PlanTier != nil {
		w.data.PlanTier = *p.PlanTier
	}
	if p.MonthlyContribution != nil {
		w.data.MonthlyContribution = *p.MonthlyContribution
	}
	if p.Email != nil {
		w.data.Email = *p.Email
	}
	if p.Password != nil {
		w.data.Password = *p.Password
	}
	if p.Country != nil {
		w.data.Country = *p.Country
	}
}

// CanAdvance reports whether the current step's completion gate is satisfied.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepPetInfo:
		return w.data.PetName != ""
	case StepAccountCreation:
		return w.data.Email != "" && w.data.Password != "" && w.data.Country != ""
	}
	return true
}

// Next advances one step, clamped at the final step. A gated or clamped call
// is a no-op; the return value reports whether the position changed.
func (w *Wizard) Next() bool {
	if w.step >= StepFinalDetails || !w.CanAdvance() {
		return false
	}
	w.step++
	return true
}

// Back retreats one step, clamped at the landing step.
func (w *Wizard) Back() bool {
	if w.step <= StepLanding {
		return false
	}
	w.step--
	return true
}

// Progress reports step/TotalSteps for the indicator. ok is false on the
// landing step, which shows no progress bar.
func (w *Wizard) Progress() (current, total int, ok bool) {
	if w.step == StepLanding {
		return 0, TotalSteps, false
	}
	return int(w.step), TotalSteps, true
}

// AtFinalStep reports whether the terminal submission action is available.
func (w *Wizard) AtFinalStep() bool { return w.step == StepFinalDetails }

// BuildSubmission reshapes the flat form record into the nested submission
// contract. The builder is statically typed; it can only ever produce a
// well-formed payload shape.
func (w *Wizard) BuildSubmission() *service.OnboardingInput {
	return &service.OnboardingInput{
		User: service.OnboardingUser{
			Email:    w.data.Email,
			Password: w.data.Password,
			Country:  w.data.Country,
		},
		Pet: service.OnboardingPet{
			Name: w.data.PetName,
			Type: w.data.PetType,
			Age:  w.data.PetAge,
		},
		Plan: service.OnboardingPlan{
			Tier:                w.data.PlanTier,
			MonthlyContribution: w.data.MonthlyContribution,
		},
	}
}
