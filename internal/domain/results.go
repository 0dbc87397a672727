package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BracketLine is one row of a progressive-tax breakdown. Rows only exist for
// brackets that actually received income, ordered ascending.
type BracketLine struct {
	Bracket         string          `json:"bracket"`
	IncomeInBracket decimal.Decimal `json:"incomeInBracket"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
	Tax             decimal.Decimal `json:"tax"`
}

// ComparisonResult is the outcome of comparing the standard progressive
// regime against the special flat regime. Recomputed in full for every call;
// never persisted.
type ComparisonResult struct {
	TotalIncome decimal.Decimal `json:"totalIncome"`

	StandardTax           decimal.Decimal `json:"standardTax"`
	StandardEffectiveRate decimal.Decimal `json:"standardEffectiveRate"`
	StandardNetIncome     decimal.Decimal `json:"standardNetIncome"`

	FlatTax           decimal.Decimal `json:"flatTax"`
	FlatEffectiveRate decimal.Decimal `json:"flatEffectiveRate"`
	FlatNetIncome     decimal.Decimal `json:"flatNetIncome"`

	// AnnualSavings is standard minus flat; negative means the flat regime
	// costs more, which is a reportable outcome, not an error.
	AnnualSavings    decimal.Decimal `json:"annualSavings"`
	SavingsPercent   decimal.Decimal `json:"savingsPercent"`
	ProjectedSavings decimal.Decimal `json:"projectedSavings"`

	BracketBreakdown []BracketLine `json:"bracketBreakdown"`

	// Advisory flags only; they never alter the arithmetic.
	ExceedsFlatRateThreshold bool `json:"exceedsFlatRateThreshold"`
	HighIncomeWarning        bool `json:"highIncomeWarning"`
}

// EmployerContributions is the per-component employer-side burden, per
// payment period.
type EmployerContributions struct {
	SocialSecurity    decimal.Decimal `json:"socialSecurity"`
	Unemployment      decimal.Decimal `json:"unemployment"`
	Training          decimal.Decimal `json:"training"`
	WageGuarantee     decimal.Decimal `json:"wageGuarantee"`
	AccidentInsurance decimal.Decimal `json:"accidentInsurance"`
	Total             decimal.Decimal `json:"total"`
}

// EmployeeDeductions is the per-component employee-side deduction, per
// payment period. Withholding is the IRPF amount, always spread over 12
// months regardless of the payment count.
type EmployeeDeductions struct {
	SocialSecurity decimal.Decimal `json:"socialSecurity"`
	Unemployment   decimal.Decimal `json:"unemployment"`
	Training       decimal.Decimal `json:"training"`
	Withholding    decimal.Decimal `json:"withholding"`
	Total          decimal.Decimal `json:"total"`
}

// LaborCostResult is the full employer-cost and net-salary breakdown. Every
// monetary field is already scaled by the input's employee count.
type LaborCostResult struct {
	MonthlyGross decimal.Decimal `json:"monthlyGross"`
	AnnualGross  decimal.Decimal `json:"annualGross"`

	Employer EmployerContributions `json:"employerContributions"`
	Employee EmployeeDeductions    `json:"employeeDeductions"`

	AnnualWithholding decimal.Decimal `json:"annualWithholding"`
	NetSalary         decimal.Decimal `json:"netSalary"`

	TotalMonthlyEmployerCost decimal.Decimal `json:"totalMonthlyEmployerCost"`
	TotalAnnualEmployerCost  decimal.Decimal `json:"totalAnnualEmployerCost"`
}

// Scenario is a saved labor-cost calculation held in an in-memory comparison
// session. Scenarios live only for the duration of the session.
type Scenario struct {
	ID      string          `json:"id"`
	Label   string          `json:"label"`
	Input   LaborCostInput  `json:"input"`
	Result  LaborCostResult `json:"result"`
	SavedAt time.Time       `json:"savedAt"`
}
