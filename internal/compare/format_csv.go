package compare

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/asesorlab/estax/internal/domain"
)

// CSVFormatter formats a comparison session as CSV.
type CSVFormatter struct{}

// Format generates CSV output with one row per scenario.
func (cf *CSVFormatter) Format(doc Document) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Contract Type",
		"Payments Per Year",
		"Risk Tier",
		"Employees",
		"Monthly Gross",
		"Net Salary",
		"Employer Contributions",
		"Total Monthly Cost",
		"Total Annual Cost",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, sc := range doc.Scenarios {
		if err := writer.Write(cf.formatRow(sc)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(sc domain.Scenario) []string {
	return []string{
		sc.Label,
		string(sc.Input.ContractType),
		fmt.Sprintf("%d", sc.Input.PaymentsPerYear),
		string(sc.Input.RiskTier),
		fmt.Sprintf("%d", sc.Input.EmployeeCount),
		sc.Result.MonthlyGross.StringFixed(2),
		sc.Result.NetSalary.StringFixed(2),
		sc.Result.Employer.Total.StringFixed(2),
		sc.Result.TotalMonthlyEmployerCost.StringFixed(2),
		sc.Result.TotalAnnualEmployerCost.StringFixed(2),
	}
}
