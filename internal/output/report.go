package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/asesorlab/estax/internal/domain"
)

// ReportFormatter renders single-run calculator results in one output format.
type ReportFormatter interface {
	Name() string
	FormatComparison(in domain.ComparisonInput, result domain.ComparisonResult) ([]byte, error)
	FormatLaborCost(in domain.LaborCostInput, result domain.LaborCostResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a name, or nil for an unknown
// name. Supported: "console", "json", "csv".
func GetFormatterByName(name string) ReportFormatter {
	switch strings.ToLower(name) {
	case "console", "table", "":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the supported format names for CLI help text.
func FormatterNames() []string {
	return []string{"console", "json", "csv"}
}

// JSONFormatter emits results as JSON documents.
type JSONFormatter struct {
	Pretty bool
}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) FormatComparison(in domain.ComparisonInput, result domain.ComparisonResult) ([]byte, error) {
	return jf.marshal(struct {
		Input  domain.ComparisonInput  `json:"input"`
		Result domain.ComparisonResult `json:"result"`
	}{in, result})
}

func (jf *JSONFormatter) FormatLaborCost(in domain.LaborCostInput, result domain.LaborCostResult) ([]byte, error) {
	return jf.marshal(struct {
		Input  domain.LaborCostInput  `json:"input"`
		Result domain.LaborCostResult `json:"result"`
	}{in, result})
}

func (jf *JSONFormatter) marshal(v any) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// CSVFormatter emits results as flat key/value CSV rows, convenient for
// pasting into a spreadsheet.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

func (cf *CSVFormatter) FormatComparison(in domain.ComparisonInput, result domain.ComparisonResult) ([]byte, error) {
	rows := [][]string{
		{"field", "value"},
		{"region", in.Region},
		{"total_income", result.TotalIncome.StringFixed(2)},
		{"standard_tax", result.StandardTax.StringFixed(2)},
		{"standard_effective_rate", result.StandardEffectiveRate.StringFixed(4)},
		{"standard_net_income", result.StandardNetIncome.StringFixed(2)},
		{"flat_tax", result.FlatTax.StringFixed(2)},
		{"flat_effective_rate", result.FlatEffectiveRate.StringFixed(4)},
		{"flat_net_income", result.FlatNetIncome.StringFixed(2)},
		{"annual_savings", result.AnnualSavings.StringFixed(2)},
		{"savings_percent", result.SavingsPercent.StringFixed(2)},
		{"projected_savings", result.ProjectedSavings.StringFixed(2)},
		{"exceeds_flat_rate_threshold", fmt.Sprintf("%t", result.ExceedsFlatRateThreshold)},
		{"high_income_warning", fmt.Sprintf("%t", result.HighIncomeWarning)},
	}
	return writeCSV(rows)
}

func (cf *CSVFormatter) FormatLaborCost(in domain.LaborCostInput, result domain.LaborCostResult) ([]byte, error) {
	rows := [][]string{
		{"field", "value"},
		{"contract_type", string(in.ContractType)},
		{"payments_per_year", fmt.Sprintf("%d", in.PaymentsPerYear)},
		{"employee_count", fmt.Sprintf("%d", in.EmployeeCount)},
		{"industry_risk_tier", string(in.RiskTier)},
		{"monthly_gross", result.MonthlyGross.StringFixed(2)},
		{"annual_gross", result.AnnualGross.StringFixed(2)},
		{"employer_social_security", result.Employer.SocialSecurity.StringFixed(2)},
		{"employer_unemployment", result.Employer.Unemployment.StringFixed(2)},
		{"employer_training", result.Employer.Training.StringFixed(2)},
		{"employer_wage_guarantee", result.Employer.WageGuarantee.StringFixed(2)},
		{"employer_accident_insurance", result.Employer.AccidentInsurance.StringFixed(2)},
		{"employer_total", result.Employer.Total.StringFixed(2)},
		{"employee_social_security", result.Employee.SocialSecurity.StringFixed(2)},
		{"employee_unemployment", result.Employee.Unemployment.StringFixed(2)},
		{"employee_training", result.Employee.Training.StringFixed(2)},
		{"employee_withholding", result.Employee.Withholding.StringFixed(2)},
		{"employee_total", result.Employee.Total.StringFixed(2)},
		{"annual_withholding", result.AnnualWithholding.StringFixed(2)},
		{"net_salary", result.NetSalary.StringFixed(2)},
		{"total_monthly_employer_cost", result.TotalMonthlyEmployerCost.StringFixed(2)},
		{"total_annual_employer_cost", result.TotalAnnualEmployerCost.StringFixed(2)},
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
