package output

import (
	"fmt"
	"strings"

	"github.com/asesorlab/estax/internal/domain"
)

// ConsoleFormatter renders human-readable reports for the terminal.
type ConsoleFormatter struct{}

func (cf *ConsoleFormatter) Name() string { return "console" }

// FormatComparison renders the standard-vs-flat regime report.
func (cf *ConsoleFormatter) FormatComparison(in domain.ComparisonInput, result domain.ComparisonResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("SPECIAL REGIME COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	region := in.Region
	if region == "" {
		region = "default"
	}
	sb.WriteString(fmt.Sprintf("Region:          %s\n", region))
	sb.WriteString(fmt.Sprintf("Total income:    %s\n\n", FormatEuro(result.TotalIncome)))

	sb.WriteString(fmt.Sprintf("%-28s %14s %14s\n", "", "Standard", "Special (flat)"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-28s %14s %14s\n", "Tax due",
		FormatEuro(result.StandardTax), FormatEuro(result.FlatTax)))
	sb.WriteString(fmt.Sprintf("%-28s %14s %14s\n", "Effective rate",
		FormatPercent(result.StandardEffectiveRate), FormatPercent(result.FlatEffectiveRate)))
	sb.WriteString(fmt.Sprintf("%-28s %14s %14s\n", "Net income",
		FormatEuro(result.StandardNetIncome), FormatEuro(result.FlatNetIncome)))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	savingsLabel := "Annual saving under flat"
	if result.AnnualSavings.IsNegative() {
		savingsLabel = "Annual extra cost under flat"
	}
	sb.WriteString(fmt.Sprintf("%-28s %14s (%s%%)\n", savingsLabel,
		FormatEuro(result.AnnualSavings.Abs()), result.SavingsPercent.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("%-28s %14s\n", "Projected over regime",
		FormatEuro(result.ProjectedSavings)))

	if len(result.BracketBreakdown) > 0 {
		sb.WriteString("\nSTANDARD REGIME BREAKDOWN\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("%-18s %14s %10s %14s\n", "Bracket", "Income", "Rate", "Tax"))
		for _, line := range result.BracketBreakdown {
			sb.WriteString(fmt.Sprintf("%-18s %14s %10s %14s\n",
				line.Bracket,
				FormatEuro(line.IncomeInBracket),
				FormatPercent(line.EffectiveRate),
				FormatEuroCents(line.Tax)))
		}
	}

	if result.HighIncomeWarning {
		sb.WriteString("\nNote: income above the high-income threshold; professional review recommended.\n")
	}
	if result.ExceedsFlatRateThreshold {
		sb.WriteString("Note: income above the flat-rate threshold; the surcharge rate applies to the excess.\n")
	}

	return []byte(sb.String()), nil
}

// FormatLaborCost renders the employer-cost report.
func (cf *ConsoleFormatter) FormatLaborCost(in domain.LaborCostInput, result domain.LaborCostResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("EMPLOYER COST BREAKDOWN\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Contract: %s | Payments/year: %d | Risk: %s | Employees: %d\n\n",
		in.ContractType, in.PaymentsPerYear, in.RiskTier, in.EmployeeCount))

	sb.WriteString(fmt.Sprintf("%-34s %14s\n", "Monthly gross", FormatEuroCents(result.MonthlyGross)))
	sb.WriteString(fmt.Sprintf("%-34s %14s\n\n", "Annual gross", FormatEuroCents(result.AnnualGross)))

	sb.WriteString("Employer contributions (monthly)\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, row := range []struct {
		label string
		value string
	}{
		{"Social security", FormatEuroCents(result.Employer.SocialSecurity)},
		{"Unemployment", FormatEuroCents(result.Employer.Unemployment)},
		{"Training fund", FormatEuroCents(result.Employer.Training)},
		{"Wage guarantee fund", FormatEuroCents(result.Employer.WageGuarantee)},
		{"Accident insurance", FormatEuroCents(result.Employer.AccidentInsurance)},
		{"Total", FormatEuroCents(result.Employer.Total)},
	} {
		sb.WriteString(fmt.Sprintf("  %-32s %14s\n", row.label, row.value))
	}

	sb.WriteString("\nEmployee deductions (monthly)\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, row := range []struct {
		label string
		value string
	}{
		{"Social security", FormatEuroCents(result.Employee.SocialSecurity)},
		{"Unemployment", FormatEuroCents(result.Employee.Unemployment)},
		{"Training fund", FormatEuroCents(result.Employee.Training)},
		{"IRPF withholding", FormatEuroCents(result.Employee.Withholding)},
		{"Total", FormatEuroCents(result.Employee.Total)},
	} {
		sb.WriteString(fmt.Sprintf("  %-32s %14s\n", row.label, row.value))
	}

	sb.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-34s %14s\n", "Net salary (monthly)", FormatEuroCents(result.NetSalary)))
	sb.WriteString(fmt.Sprintf("%-34s %14s\n", "Total employer cost (monthly)", FormatEuroCents(result.TotalMonthlyEmployerCost)))
	sb.WriteString(fmt.Sprintf("%-34s %14s\n", "Total employer cost (annual)", FormatEuroCents(result.TotalAnnualEmployerCost)))

	return []byte(sb.String()), nil
}
