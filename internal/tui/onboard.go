// Package tui renders the onboarding wizard as a terminal program.
//
// It follows The Elm Architecture: the Model holds state, Update reacts to
// messages, View renders to a string. All form state lives in the
// internal/wizard state machine; this package only draws it and drives it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"skytails/internal/model"
	"skytails/internal/service"
	"skytails/internal/wizard"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	barFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

var petTypes = []model.PetType{model.PetTypeDog, model.PetTypeCat, model.PetTypeOther}

var planTiers = []model.PlanTier{model.PlanTierClassic, model.PlanTierCore, model.PlanTierPremium}

// account step input indexes
const (
	inputEmail = iota
	inputPassword
	inputCountry
	accountInputCount
)

type submitResultMsg struct {
	userID uint
	err    error
}

type dashboardMsg struct {
	view *service.DashboardView
	err  error
}

// Model is the onboarding wizard TUI model.
type Model struct {
	wiz    *wizard.Wizard
	client *Client

	nameInput     textinput.Model
	accountInputs []textinput.Model
	focusedInput  int

	petTypeIdx int
	tierIdx    int

	submitting bool
	submitted  bool
	userID     uint
	dashboard  *service.DashboardView
	errMsg     string
}

// NewModel creates the wizard TUI model against an API client.
func NewModel(client *Client) Model {
	name := textinput.New()
	name.Placeholder = "Buddy"
	name.CharLimit = 64
	name.Focus()

	inputs := make([]textinput.Model, accountInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 128
	}
	inputs[inputEmail].Placeholder = "you@example.com"
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputCountry].Placeholder = "US"

	return Model{
		wiz:           wizard.New(),
		client:        client,
		nameInput:     name,
		accountInputs: inputs,
		tierIdx:       1, // Core
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			// Stay on the final step with the data intact.
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.submitted = true
		m.userID = msg.userID
		m.errMsg = ""
		return m, m.fetchDashboard()

	case dashboardMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.dashboard = msg.view
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.submitted || m.wiz.Step() == wizard.StepLanding {
				return m, tea.Quit
			}
		}
		if m.submitted || m.submitting {
			return m, nil
		}
		return m.updateStep(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) updateStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		if m.wiz.AtFinalStep() {
			m.syncInputs()
			m.submitting = true
			m.errMsg = ""
			return m, m.submit()
		}
		m.advance()
		return m, nil
	case "esc":
		m.syncInputs()
		m.wiz.Back()
		m.errMsg = ""
		return m, nil
	}

	switch m.wiz.Step() {
	case wizard.StepPetInfo:
		switch key {
		case "tab":
			m.petTypeIdx = (m.petTypeIdx + 1) % len(petTypes)
			t := petTypes[m.petTypeIdx]
			m.wiz.Merge(wizard.Patch{PetType: &t})
			return m, nil
		case "+", "=":
			age := m.wiz.Data().PetAge + 1
			m.wiz.Merge(wizard.Patch{PetAge: &age})
			return m, nil
		case "-":
			if age := m.wiz.Data().PetAge - 1; age >= 0 {
				m.wiz.Merge(wizard.Patch{PetAge: &age})
			}
			return m, nil
		}
	case wizard.StepPlanSelection:
		switch key {
		case "tab", "right":
			m.tierIdx = (m.tierIdx + 1) % len(planTiers)
		case "shift+tab", "left":
			m.tierIdx = (m.tierIdx + len(planTiers) - 1) % len(planTiers)
		case "+", "=":
			c := m.wiz.Data().MonthlyContribution + 10
			m.wiz.Merge(wizard.Patch{MonthlyContribution: &c})
			return m, nil
		case "-":
			if c := m.wiz.Data().MonthlyContribution - 10; c > 0 {
				m.wiz.Merge(wizard.Patch{MonthlyContribution: &c})
			}
			return m, nil
		}
		t := planTiers[m.tierIdx]
		m.wiz.Merge(wizard.Patch{PlanTier: &t})
		return m, nil
	case wizard.StepAccountCreation:
		if key == "tab" || key == "shift+tab" {
			m.syncInputs()
			if key == "tab" {
				m.focusedInput = (m.focusedInput + 1) % accountInputCount
			} else {
				m.focusedInput = (m.focusedInput + accountInputCount - 1) % accountInputCount
			}
			for i := range m.accountInputs {
				if i == m.focusedInput {
					m.accountInputs[i].Focus()
				} else {
					m.accountInputs[i].Blur()
				}
			}
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	switch m.wiz.Step() {
	case wizard.StepPetInfo:
		m.nameInput, cmd = m.nameInput.Update(msg)
		cmds = append(cmds, cmd)
	case wizard.StepAccountCreation:
		for i := range m.accountInputs {
			m.accountInputs[i], cmd = m.accountInputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// syncInputs merges the text widgets into the wizard record.
func (m *Model) syncInputs() {
	name := m.nameInput.Value()
	email := m.accountInputs[inputEmail].Value()
	password := m.accountInputs[inputPassword].Value()
	country := m.accountInputs[inputCountry].Value()
	m.wiz.Merge(wizard.Patch{
		PetName:  &name,
		Email:    &email,
		Password: &password,
		Country:  &country,
	})
}

// advance syncs inputs and attempts the gated transition. A rejected gate
// surfaces a hint instead of moving.
func (m *Model) advance() {
	m.syncInputs()
	if m.wiz.Next() {
		m.errMsg = ""
		if m.wiz.Step() == wizard.StepAccountCreation {
			m.focusedInput = inputEmail
			m.accountInputs[inputEmail].Focus()
		}
		return
	}
	switch m.wiz.Step() {
	case wizard.StepPetInfo:
		m.errMsg = "enter your pet's name to continue"
	case wizard.StepAccountCreation:
		m.errMsg = "email, password, and country are all required"
	}
}

func (m Model) submit() tea.Cmd {
	input := m.wiz.BuildSubmission()
	client := m.client
	return func() tea.Msg {
		resp, err := client.SubmitOnboarding(context.Background(), input)
		if err != nil {
			return submitResultMsg{err: err}
		}
		return submitResultMsg{userID: resp.UserID}
	}
}

func (m Model) fetchDashboard() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		view, err := client.Dashboard(context.Background())
		return dashboardMsg{view: view, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if m.submitted {
		return m.dashboardView()
	}

	if current, total, ok := m.wiz.Progress(); ok {
		b.WriteString(progressBar(current, total))
		b.WriteString("\n\n")
	}

	data := m.wiz.Data()
	switch m.wiz.Step() {
	case wizard.StepLanding:
		b.WriteString(titleStyle.Render("SkyTails"))
		b.WriteString("\n\nBuild your pet's financial future without the insurance mess.\n\n")
		b.WriteString(subtleStyle.Render("enter: start in 30 seconds · q: quit"))
	case wizard.StepPetInfo:
		b.WriteString(titleStyle.Render("Tell us about your pet"))
		b.WriteString("\n\nName: " + m.nameInput.View() + "\n")
		b.WriteString("Type: " + renderChoices(petTypeNames(), m.petTypeIdx) + subtleStyle.Render("  (tab)") + "\n")
		b.WriteString(fmt.Sprintf("Age:  %d"+subtleStyle.Render("  (+/-)")+"\n", data.PetAge))
		b.WriteString("\n" + subtleStyle.Render("enter: next"))
	case wizard.StepPlanSelection:
		b.WriteString(titleStyle.Render("Pick a plan"))
		b.WriteString("\n\nTier: " + renderChoices(planTierNames(), m.tierIdx) + subtleStyle.Render("  (←/→)") + "\n")
		b.WriteString(fmt.Sprintf("Monthly contribution: $%d"+subtleStyle.Render("  (+/-)")+"\n", data.MonthlyContribution))
		b.WriteString("\n" + subtleStyle.Render("enter: next · esc: back"))
	case wizard.StepPreview:
		b.WriteString(titleStyle.Render("Preview"))
		b.WriteString(fmt.Sprintf("\n\n%s the %s, age %d\n%s plan at $%d/month\n",
			data.PetName, data.PetType, data.PetAge, data.PlanTier, data.MonthlyContribution))
		b.WriteString("\n" + subtleStyle.Render("enter: looks good · esc: back"))
	case wizard.StepAccountCreation:
		b.WriteString(titleStyle.Render("Create your account"))
		b.WriteString("\n\nEmail:    " + m.accountInputs[inputEmail].View() + "\n")
		b.WriteString("Password: " + m.accountInputs[inputPassword].View() + "\n")
		b.WriteString("Country:  " + m.accountInputs[inputCountry].View() + "\n")
		b.WriteString("\n" + subtleStyle.Render("tab: next field · enter: next · esc: back"))
	case wizard.StepFinalDetails:
		b.WriteString(titleStyle.Render("Final details"))
		b.WriteString(fmt.Sprintf("\n\nAccount %s · %s the %s · %s at $%d/month\n",
			data.Email, data.PetName, data.PetType, data.PlanTier, data.MonthlyContribution))
		if m.submitting {
			b.WriteString("\nSubmitting...\n")
		} else {
			b.WriteString("\n" + subtleStyle.Render("enter: create my account · esc: back"))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) dashboardView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to SkyTails!"))
	b.WriteString(fmt.Sprintf("\n\nAccount #%d created.\n", m.userID))
	if m.dashboard != nil {
		if m.dashboard.Pet != nil {
			b.WriteString(fmt.Sprintf("\n%s is enrolled.\n", m.dashboard.Pet.Name))
		}
		if m.dashboard.Plan != nil {
			b.WriteString(fmt.Sprintf("%s plan, $%d/month.\n", m.dashboard.Plan.Tier, m.dashboard.Plan.MonthlyContribution))
		}
		b.WriteString("\nProjected growth:\n")
		for _, p := range m.dashboard.ProjectedGrowth {
			b.WriteString(fmt.Sprintf("  %s  $%.2f\n", p.Year, p.Amount))
		}
		b.WriteString("\nCare suggestions:\n")
		for _, s := range m.dashboard.CareSuggestions {
			b.WriteString("  · " + s + "\n")
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render("q: quit") + "\n")
	return b.String()
}

func progressBar(current, total int) string {
	const width = 30
	filled := width * current / total
	bar := barFillStyle.Render(strings.Repeat("█", filled)) + subtleStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s  Step %d of %d", bar, current, total)
}

func renderChoices(names []string, selected int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if i == selected {
			parts[i] = selectedStyle.Render("[" + n + "]")
		} else {
			parts[i] = subtleStyle.Render(" " + n + " ")
		}
	}
	return strings.Join(parts, " ")
}

func petTypeNames() []string {
	names := make([]string, len(petTypes))
	for i, t := range petTypes {
		names[i] = string(t)
	}
	return names
}

func planTierNames() []string {
	names := make([]string, len(planTiers))
	for i, t := range planTiers {
		names[i] = string(t)
	}
	return names
}
