package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SalaryInputMode selects whether GrossSalary is a monthly or annual figure.
type SalaryInputMode string

const (
	SalaryMonthly SalaryInputMode = "monthly"
	SalaryAnnual  SalaryInputMode = "annual"
)

// ContractType is the employment contract class.
type ContractType string

const (
	ContractPermanent ContractType = "permanent"
	ContractTemporary ContractType = "temporary"
)

// RiskTier is the industry accident-risk classification.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// ComparisonInput describes one special-regime comparison request.
type ComparisonInput struct {
	GrossAnnualSalary decimal.Decimal `yaml:"gross_annual_salary" json:"grossAnnualSalary"`
	AdditionalIncome  decimal.Decimal `yaml:"additional_income" json:"additionalIncome"`
	Region            string          `yaml:"region" json:"region"`
}

// Validate rejects inputs the engines are not meant to see. The engines
// themselves stay pure and trust their inputs; every shipped caller runs
// Validate first.
func (ci ComparisonInput) Validate() error {
	if ci.GrossAnnualSalary.IsNegative() {
		return fmt.Errorf("gross annual salary cannot be negative")
	}
	if ci.AdditionalIncome.IsNegative() {
		return fmt.Errorf("additional income cannot be negative")
	}
	return nil
}

// TotalIncome is the sum of salary and additional income.
func (ci ComparisonInput) TotalIncome() decimal.Decimal {
	return ci.GrossAnnualSalary.Add(ci.AdditionalIncome)
}

// LaborCostInput describes one employer-cost calculation request.
type LaborCostInput struct {
	GrossSalary     decimal.Decimal `yaml:"gross_salary" json:"grossSalary"`
	SalaryInputMode SalaryInputMode `yaml:"salary_input_mode" json:"salaryInputMode"`
	PaymentsPerYear int             `yaml:"payments_per_year" json:"paymentsPerYear"`
	ContractType    ContractType    `yaml:"contract_type" json:"contractType"`
	EmployeeCount   int             `yaml:"employee_count" json:"employeeCount"`
	RiskTier        RiskTier        `yaml:"industry_risk_tier" json:"industryRiskTier"`
}

// Validate enforces the input contract at the boundary.
func (in LaborCostInput) Validate() error {
	if !in.GrossSalary.IsPositive() {
		return fmt.Errorf("gross salary must be positive")
	}
	switch in.SalaryInputMode {
	case SalaryMonthly, SalaryAnnual:
	default:
		return fmt.Errorf("salary input mode must be %q or %q", SalaryMonthly, SalaryAnnual)
	}
	if in.PaymentsPerYear != 12 && in.PaymentsPerYear != 14 {
		return fmt.Errorf("payments per year must be 12 or 14")
	}
	switch in.ContractType {
	case ContractPermanent, ContractTemporary:
	default:
		return fmt.Errorf("contract type must be %q or %q", ContractPermanent, ContractTemporary)
	}
	if in.EmployeeCount < 1 {
		return fmt.Errorf("employee count must be at least 1")
	}
	switch in.RiskTier {
	case RiskLow, RiskMedium, RiskHigh:
	default:
		return fmt.Errorf("industry risk tier must be %q, %q or %q", RiskLow, RiskMedium, RiskHigh)
	}
	return nil
}

// AnnualGross normalizes the salary to an annual figure.
func (in LaborCostInput) AnnualGross() decimal.Decimal {
	if in.SalaryInputMode == SalaryMonthly {
		return in.GrossSalary.Mul(decimal.NewFromInt(int64(in.PaymentsPerYear)))
	}
	return in.GrossSalary
}

// MonthlyGross normalizes the salary to a per-payment figure.
func (in LaborCostInput) MonthlyGross() decimal.Decimal {
	if in.SalaryInputMode == SalaryMonthly {
		return in.GrossSalary
	}
	return in.GrossSalary.Div(decimal.NewFromInt(int64(in.PaymentsPerYear)))
}
