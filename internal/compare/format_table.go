package compare

import (
	"fmt"
	"strings"

	"github.com/asesorlab/estax/internal/output"
)

// TableFormatter formats a comparison session as a console table.
type TableFormatter struct{}

// Format generates a formatted table of the saved scenarios plus the derived
// key differences.
func (tf *TableFormatter) Format(doc Document) string {
	var sb strings.Builder

	sb.WriteString("LABOR COST SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")

	if len(doc.Scenarios) == 0 {
		sb.WriteString("No scenarios saved.\n")
		return sb.String()
	}

	nameWidth := 22
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Monthly Gross",
		numWidth, "Net Salary",
		numWidth, "Monthly Cost",
		numWidth, "Annual Cost"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	for _, sc := range doc.Scenarios {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
			nameWidth, truncate(sc.Label, nameWidth),
			numWidth, output.FormatEuro(sc.Result.MonthlyGross),
			numWidth, output.FormatEuro(sc.Result.NetSalary),
			numWidth, output.FormatEuro(sc.Result.TotalMonthlyEmployerCost),
			numWidth, output.FormatEuro(sc.Result.TotalAnnualEmployerCost)))
	}
	sb.WriteString(strings.Repeat("=", 84) + "\n")

	if len(doc.KeyDifferences) > 0 {
		sb.WriteString("\nKEY DIFFERENCES\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, diff := range doc.KeyDifferences {
			sb.WriteString("* " + diff + "\n")
		}
	}

	return sb.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
