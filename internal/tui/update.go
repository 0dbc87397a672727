package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asesorlab/estax/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil

		case "left", "right":
			if m.focus != focusSalary {
				m.adjust(msg.String() == "right")
				m.recompute()
				return m, nil
			}

		case "q":
			if m.focus != focusSalary {
				return m, tea.Quit
			}

		case "s":
			if m.focus != focusSalary {
				m.saveScenario()
				return m, nil
			}

		case "c":
			if m.focus != focusSalary {
				m.session.Clear()
				return m, nil
			}
		}

		// Remaining keys edit the salary field when it has focus.
		if m.focus == focusSalary {
			var cmd tea.Cmd
			m.salaryInput, cmd = m.salaryInput.Update(msg)
			m.recompute()
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	if focus == focusSalary {
		m.salaryInput.Focus()
	} else {
		m.salaryInput.Blur()
	}
	m.headcount.IsFocused = focus == focusHeadcount
}

// adjust moves the focused control one step.
func (m *Model) adjust(up bool) {
	switch m.focus {
	case focusHeadcount:
		if up {
			m.headcount.Increment()
		} else {
			m.headcount.Decrement()
		}
	case focusPayments:
		if m.payments == 12 {
			m.payments = 14
		} else {
			m.payments = 12
		}
	case focusContract:
		if m.contract == domain.ContractPermanent {
			m.contract = domain.ContractTemporary
		} else {
			m.contract = domain.ContractPermanent
		}
	case focusRisk:
		tiers := []domain.RiskTier{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}
		idx := 0
		for i, t := range tiers {
			if t == m.risk {
				idx = i
			}
		}
		if up {
			idx = (idx + 1) % len(tiers)
		} else {
			idx = (idx + len(tiers) - 1) % len(tiers)
		}
		m.risk = tiers[idx]
	}
}
