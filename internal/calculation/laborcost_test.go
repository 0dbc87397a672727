package calculation_test

import (
	"testing"

	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/config"
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLaborCost(t *testing.T) *calculation.LaborCostCalculator {
	t.Helper()
	return calculation.NewLaborCostCalculator(config.DefaultRateSet())
}

func baseLaborInput() domain.LaborCostInput {
	return domain.LaborCostInput{
		GrossSalary:     decimal.NewFromInt(30000),
		SalaryInputMode: domain.SalaryAnnual,
		PaymentsPerYear: 12,
		ContractType:    domain.ContractPermanent,
		EmployeeCount:   1,
		RiskTier:        domain.RiskLow,
	}
}

func TestComputeLaborCostWorkedExample(t *testing.T) {
	lc := newLaborCost(t)

	result := lc.Compute(baseLaborInput())

	// 30000 annual over 12 payments.
	require.True(t, result.MonthlyGross.Equal(decimal.NewFromInt(2500)),
		"monthly gross = %s, want 2500", result.MonthlyGross)

	// Employer components of 2500.
	assert.True(t, result.Employer.SocialSecurity.Equal(decimal.NewFromInt(590)),
		"employer SS = %s, want 590", result.Employer.SocialSecurity)
	assert.True(t, result.Employer.Unemployment.Equal(decimal.NewFromFloat(137.5)),
		"employer unemployment = %s, want 137.5", result.Employer.Unemployment)
	assert.True(t, result.Employer.Training.Equal(decimal.NewFromInt(15)),
		"employer training = %s, want 15", result.Employer.Training)
	assert.True(t, result.Employer.WageGuarantee.Equal(decimal.NewFromInt(5)),
		"employer wage guarantee = %s, want 5", result.Employer.WageGuarantee)
	assert.True(t, result.Employer.AccidentInsurance.Equal(decimal.NewFromFloat(16.75)),
		"employer accident insurance = %s, want 16.75", result.Employer.AccidentInsurance)

	wantEmployerTotal := decimal.NewFromFloat(764.25)
	assert.True(t, result.Employer.Total.Equal(wantEmployerTotal),
		"employer total = %s, want %s", result.Employer.Total, wantEmployerTotal)

	// Total monthly cost exceeds gross by exactly the employer total.
	assert.True(t, result.TotalMonthlyEmployerCost.Equal(decimal.NewFromFloat(3264.25)),
		"total monthly cost = %s, want 3264.25", result.TotalMonthlyEmployerCost)
	assert.True(t, result.TotalMonthlyEmployerCost.GreaterThan(result.MonthlyGross))

	// Employee fixed deductions: 117.50 + 38.75 + 2.50.
	assert.True(t, result.Employee.SocialSecurity.Equal(decimal.NewFromFloat(117.5)))
	assert.True(t, result.Employee.Unemployment.Equal(decimal.NewFromFloat(38.75)))
	assert.True(t, result.Employee.Training.Equal(decimal.NewFromFloat(2.5)))

	// Taxable base 30000 - 158.75*12 = 28095; withholding scale gives
	// 2365.5 + 1860 + 2368.5 = 6594, spread over 12 months.
	assert.True(t, result.AnnualWithholding.Equal(decimal.NewFromInt(6594)),
		"annual withholding = %s, want 6594", result.AnnualWithholding)
	assert.True(t, result.Employee.Withholding.Equal(decimal.NewFromFloat(549.5)),
		"monthly withholding = %s, want 549.5", result.Employee.Withholding)

	assert.True(t, result.NetSalary.Equal(decimal.NewFromFloat(1791.75)),
		"net salary = %s, want 1791.75", result.NetSalary)
}

func TestComputeLaborCostHeadcountScaling(t *testing.T) {
	lc := newLaborCost(t)

	single := lc.Compute(baseLaborInput())

	scaled := baseLaborInput()
	scaled.EmployeeCount = 3
	triple := lc.Compute(scaled)

	three := decimal.NewFromInt(3)
	assert.True(t, triple.TotalAnnualEmployerCost.Equal(single.TotalAnnualEmployerCost.Mul(three)))
	assert.True(t, triple.TotalMonthlyEmployerCost.Equal(single.TotalMonthlyEmployerCost.Mul(three)))
	assert.True(t, triple.NetSalary.Equal(single.NetSalary.Mul(three)))
	assert.True(t, triple.Employer.Total.Equal(single.Employer.Total.Mul(three)))
	assert.True(t, triple.Employee.Total.Equal(single.Employee.Total.Mul(three)))
	assert.True(t, triple.AnnualWithholding.Equal(single.AnnualWithholding.Mul(three)))
}

func TestComputeLaborCostPaymentCountNormalization(t *testing.T) {
	lc := newLaborCost(t)
	tolerance := decimal.NewFromFloat(0.01)

	twelve := lc.Compute(baseLaborInput())

	fourteen := baseLaborInput()
	fourteen.PaymentsPerYear = 14
	result14 := lc.Compute(fourteen)

	// Per-payment figures differ, annual figures do not: withholding is
	// annualized then divided by 12 regardless of the payment count.
	assert.False(t, result14.MonthlyGross.Equal(twelve.MonthlyGross))
	assert.True(t,
		result14.TotalAnnualEmployerCost.Sub(twelve.TotalAnnualEmployerCost).Abs().LessThan(tolerance),
		"annual cost changed with payment count: %s vs %s",
		result14.TotalAnnualEmployerCost, twelve.TotalAnnualEmployerCost)
	assert.True(t,
		result14.AnnualWithholding.Sub(twelve.AnnualWithholding).Abs().LessThan(tolerance),
		"annual withholding changed with payment count: %s vs %s",
		result14.AnnualWithholding, twelve.AnnualWithholding)
}

func TestComputeLaborCostMonthlyInputMode(t *testing.T) {
	lc := newLaborCost(t)

	monthly := domain.LaborCostInput{
		GrossSalary:     decimal.NewFromInt(2500),
		SalaryInputMode: domain.SalaryMonthly,
		PaymentsPerYear: 12,
		ContractType:    domain.ContractPermanent,
		EmployeeCount:   1,
		RiskTier:        domain.RiskLow,
	}
	result := lc.Compute(monthly)

	annual := lc.Compute(baseLaborInput())
	assert.True(t, result.NetSalary.Equal(annual.NetSalary))
	assert.True(t, result.TotalAnnualEmployerCost.Equal(annual.TotalAnnualEmployerCost))
}

func TestComputeLaborCostTemporaryContractRates(t *testing.T) {
	lc := newLaborCost(t)

	temp := baseLaborInput()
	temp.ContractType = domain.ContractTemporary
	result := lc.Compute(temp)

	// Temporary contracts pay 6.70% employer and 1.60% employee
	// unemployment on 2500 monthly gross.
	assert.True(t, result.Employer.Unemployment.Equal(decimal.NewFromFloat(167.5)),
		"employer unemployment = %s, want 167.5", result.Employer.Unemployment)
	assert.True(t, result.Employee.Unemployment.Equal(decimal.NewFromInt(40)),
		"employee unemployment = %s, want 40", result.Employee.Unemployment)
}

func TestComputeLaborCostRiskTiers(t *testing.T) {
	lc := newLaborCost(t)

	tiers := map[domain.RiskTier]decimal.Decimal{
		domain.RiskLow:    decimal.NewFromFloat(16.75),
		domain.RiskMedium: decimal.NewFromFloat(37.5),
		domain.RiskHigh:   decimal.NewFromFloat(87.5),
	}
	for tier, want := range tiers {
		in := baseLaborInput()
		in.RiskTier = tier
		result := lc.Compute(in)
		assert.True(t, result.Employer.AccidentInsurance.Equal(want),
			"tier %s: accident insurance = %s, want %s", tier, result.Employer.AccidentInsurance, want)
	}
}
