package calculation

import (
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

// withholdingMonths is fixed at 12: IRPF withholding is spread over calendar
// months even when salary is paid in 14 installments.
var withholdingMonths = decimal.NewFromInt(12)

// LaborCostCalculator computes the employer-side burden, employee-side
// deductions and net salary for one payroll configuration.
type LaborCostCalculator struct {
	Rates               domain.ContributionRates
	WithholdingBrackets []domain.TaxBracket
}

// NewLaborCostCalculator builds a labor-cost calculator from a rate set.
func NewLaborCostCalculator(rates *domain.RateSet) *LaborCostCalculator {
	return &LaborCostCalculator{
		Rates:               rates.Contributions,
		WithholdingBrackets: rates.WithholdingBrackets,
	}
}

// Compute runs the full breakdown. Inputs are trusted; callers validate at
// the boundary. Every monetary output is scaled by the employee count as a
// final uniform multiplier.
func (lc *LaborCostCalculator) Compute(in domain.LaborCostInput) domain.LaborCostResult {
	payments := decimal.NewFromInt(int64(in.PaymentsPerYear))
	monthlyGross := in.MonthlyGross()
	annualGross := in.AnnualGross()

	employer := domain.EmployerContributions{
		SocialSecurity:    monthlyGross.Mul(lc.Rates.EmployerSocialSecurity),
		Unemployment:      monthlyGross.Mul(lc.Rates.EmployerUnemploymentFor(in.ContractType)),
		Training:          monthlyGross.Mul(lc.Rates.EmployerTraining),
		WageGuarantee:     monthlyGross.Mul(lc.Rates.EmployerWageGuarantee),
		AccidentInsurance: monthlyGross.Mul(lc.Rates.AccidentInsuranceFor(in.RiskTier)),
	}
	employer.Total = employer.SocialSecurity.
		Add(employer.Unemployment).
		Add(employer.Training).
		Add(employer.WageGuarantee).
		Add(employer.AccidentInsurance)

	employee := domain.EmployeeDeductions{
		SocialSecurity: monthlyGross.Mul(lc.Rates.EmployeeSocialSecurity),
		Unemployment:   monthlyGross.Mul(lc.Rates.EmployeeUnemploymentFor(in.ContractType)),
		Training:       monthlyGross.Mul(lc.Rates.EmployeeTraining),
	}
	fixedDeductions := employee.SocialSecurity.Add(employee.Unemployment).Add(employee.Training)

	// IRPF withholding: annualize the taxable base, run the withholding
	// scale with no regional delta, then divide by 12 regardless of the
	// payment count.
	taxableBase := annualGross.Sub(fixedDeductions.Mul(payments))
	annualWithholding, _ := ComputeProgressiveTax(taxableBase, lc.WithholdingBrackets, decimal.Zero)
	employee.Withholding = annualWithholding.Div(withholdingMonths)
	employee.Total = fixedDeductions.Add(employee.Withholding)

	netSalary := monthlyGross.Sub(employee.Total)
	totalMonthly := monthlyGross.Add(employer.Total)
	totalAnnual := totalMonthly.Mul(payments)

	count := decimal.NewFromInt(int64(in.EmployeeCount))
	return domain.LaborCostResult{
		MonthlyGross:             monthlyGross.Mul(count),
		AnnualGross:              annualGross.Mul(count),
		Employer:                 scaleEmployer(employer, count),
		Employee:                 scaleEmployee(employee, count),
		AnnualWithholding:        annualWithholding.Mul(count),
		NetSalary:                netSalary.Mul(count),
		TotalMonthlyEmployerCost: totalMonthly.Mul(count),
		TotalAnnualEmployerCost:  totalAnnual.Mul(count),
	}
}

func scaleEmployer(c domain.EmployerContributions, n decimal.Decimal) domain.EmployerContributions {
	return domain.EmployerContributions{
		SocialSecurity:    c.SocialSecurity.Mul(n),
		Unemployment:      c.Unemployment.Mul(n),
		Training:          c.Training.Mul(n),
		WageGuarantee:     c.WageGuarantee.Mul(n),
		AccidentInsurance: c.AccidentInsurance.Mul(n),
		Total:             c.Total.Mul(n),
	}
}

func scaleEmployee(d domain.EmployeeDeductions, n decimal.Decimal) domain.EmployeeDeductions {
	return domain.EmployeeDeductions{
		SocialSecurity: d.SocialSecurity.Mul(n),
		Unemployment:   d.Unemployment.Mul(n),
		Training:       d.Training.Mul(n),
		Withholding:    d.Withholding.Mul(n),
		Total:          d.Total.Mul(n),
	}
}
