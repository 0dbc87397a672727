package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asesorlab/estax/internal/compare"
	"github.com/asesorlab/estax/internal/output"
	"github.com/asesorlab/estax/internal/tui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Labor Cost Playground"))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("Rates %d", m.engine.Rates.Year)))
	sb.WriteString("\n\n")

	form := m.renderForm()
	metrics := m.renderMetrics()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, form, "   ", metrics))

	if m.session.Len() > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(m.renderSession())
	}

	if m.err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(ErrorStyle.Render("! " + m.err.Error()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.renderHelp())

	return AppStyle.Render(sb.String())
}

func (m Model) renderForm() string {
	var sb strings.Builder

	label := ParameterLabelStyle
	if m.focus == focusSalary {
		label = label.Foreground(ColorPrimary)
	}
	sb.WriteString(label.Render("Annual gross"))
	sb.WriteString("\n")
	sb.WriteString(m.salaryInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(m.headcount.Render(
		m.focusedLabel(focusHeadcount), ParameterValueStyle, SliderTrackStyle, SliderThumbStyle))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderToggle(focusPayments, "Payments/year", fmt.Sprintf("%d", m.payments)))
	sb.WriteString("\n")
	sb.WriteString(m.renderToggle(focusContract, "Contract", string(m.contract)))
	sb.WriteString("\n")
	sb.WriteString(m.renderToggle(focusRisk, "Industry risk", string(m.risk)))

	return lipgloss.NewStyle().Width(34).Render(sb.String())
}

func (m Model) focusedLabel(focus int) lipgloss.Style {
	if m.focus == focus {
		return ParameterLabelStyle.Foreground(ColorPrimary)
	}
	return ParameterLabelStyle
}

func (m Model) renderToggle(focus int, label, value string) string {
	return m.focusedLabel(focus).Render(label) + "  " +
		ParameterValueStyle.Render("< "+value+" >")
}

func (m Model) renderMetrics() string {
	if m.err != nil && m.result.MonthlyGross.IsZero() {
		return SubtitleStyle.Render("waiting for valid input")
	}

	cards := []string{
		components.NewMetricCard("Net salary / month", output.FormatEuroCents(m.result.NetSalary)).
			Render(CardStyle, MetricLabelStyle, MetricValueStyle, SubtitleStyle),
		components.NewMetricCard("Employer cost / month", output.FormatEuroCents(m.result.TotalMonthlyEmployerCost)).
			Render(CardStyle, MetricLabelStyle, MetricValueStyle, SubtitleStyle),
		components.NewMetricCard("Employer cost / year", output.FormatEuroCents(m.result.TotalAnnualEmployerCost)).
			Render(CardStyle, MetricLabelStyle, MetricValueStyle, SubtitleStyle),
		components.NewMetricCard("IRPF withholding / month", output.FormatEuroCents(m.result.Employee.Withholding)).
			WithDescription("annualized, spread over 12").
			Render(CardStyle, MetricLabelStyle, MetricValueStyle, SubtitleStyle),
	}
	return components.Grid(cards, 2)
}

func (m Model) renderSession() string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("Saved scenarios (%d/%d)", m.session.Len(), compare.MaxScenarios)))
	sb.WriteString("\n")
	for _, sc := range m.session.Scenarios() {
		sb.WriteString(fmt.Sprintf("  %-28s net %s  cost %s/yr\n",
			sc.Label,
			output.FormatEuro(sc.Result.NetSalary),
			output.FormatEuro(sc.Result.TotalAnnualEmployerCost)))
	}
	for _, diff := range compare.DeriveKeyDifferences(m.session.Scenarios()) {
		sb.WriteString(SubtitleStyle.Render("  * "+diff) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"tab/↑↓", "navigate"},
		{"←→", "adjust"},
		{"s", "save scenario"},
		{"c", "clear scenarios"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, HelpKeyStyle.Render(k.key)+" "+HelpDescStyle.Render(k.desc))
	}
	return strings.Join(parts, "  ")
}
