package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/compare"
	"github.com/asesorlab/estax/internal/domain"
	"github.com/asesorlab/estax/internal/tui/components"
)

// Focusable controls, in navigation order.
const (
	focusSalary = iota
	focusHeadcount
	focusPayments
	focusContract
	focusRisk
	focusCount
)

// Model is the interactive labor-cost playground: a form on the left, live
// metric cards on the right, and an in-memory comparison session for saved
// scenarios.
type Model struct {
	engine  *calculation.Engine
	session *compare.Session

	salaryInput textinput.Model
	headcount   *components.ParameterSlider
	payments    int
	contract    domain.ContractType
	risk        domain.RiskTier

	focus  int
	width  int
	height int

	input  domain.LaborCostInput
	result domain.LaborCostResult
	err    error
}

// NewModel creates the playground model over a calculation engine.
func NewModel(engine *calculation.Engine) Model {
	salary := textinput.New()
	salary.Placeholder = "30000"
	salary.SetValue("30000")
	salary.CharLimit = 12
	salary.Width = 14
	salary.Prompt = "€ "
	salary.Focus()

	m := Model{
		engine:      engine,
		session:     compare.NewSession(),
		salaryInput: salary,
		headcount:   components.NewParameterSlider("Employees", 1, 1, 50, 1),
		payments:    12,
		contract:    domain.ContractPermanent,
		risk:        domain.RiskLow,
		focus:       focusSalary,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// recompute parses the form, validates at the boundary and reruns the
// engine. Invalid input keeps the previous result and surfaces the error.
func (m *Model) recompute() {
	gross, err := decimal.NewFromString(m.salaryInput.Value())
	if err != nil {
		m.err = fmt.Errorf("gross salary must be a number")
		return
	}

	input := domain.LaborCostInput{
		GrossSalary:     gross,
		SalaryInputMode: domain.SalaryAnnual,
		PaymentsPerYear: m.payments,
		ContractType:    m.contract,
		EmployeeCount:   int(m.headcount.Value),
		RiskTier:        m.risk,
	}
	if err := input.Validate(); err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.input = input
	m.result = m.engine.ComputeLaborCost(input)
}

// saveScenario stores the current result in the comparison session.
func (m *Model) saveScenario() {
	if m.err != nil {
		return
	}
	label := fmt.Sprintf("%s/%dp/%s x%d",
		m.contract, m.payments, m.risk, m.input.EmployeeCount)
	if _, err := m.session.Add(label, m.input, m.result); err != nil {
		m.err = err
	}
}
