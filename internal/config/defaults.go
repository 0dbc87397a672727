package config

import (
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultRateSet returns the built-in 2025 tables. A YAML rate file loaded
// through InputParser replaces these wholesale; the engines never reach for
// globals.
func DefaultRateSet() *domain.RateSet {
	return &domain.RateSet{
		Year: 2025,

		// Combined state + autonomic general scale. Regional deltas below
		// are applied on top of every bracket.
		StandardBrackets: []domain.TaxBracket{
			domain.Bounded(0, 12450, 0.19),
			domain.Bounded(12450, 20200, 0.24),
			domain.Bounded(20200, 35200, 0.30),
			domain.Bounded(35200, 60000, 0.37),
			domain.Bounded(60000, 300000, 0.45),
			domain.Open(300000, 0.47),
		},

		// Withholding uses the same general scale, never a regional delta.
		WithholdingBrackets: []domain.TaxBracket{
			domain.Bounded(0, 12450, 0.19),
			domain.Bounded(12450, 20200, 0.24),
			domain.Bounded(20200, 35200, 0.30),
			domain.Bounded(35200, 60000, 0.37),
			domain.Bounded(60000, 300000, 0.45),
			domain.Open(300000, 0.47),
		},

		Regional: domain.RegionalAdjustments{
			"madrid":    decimal.NewFromFloat(-0.010),
			"catalonia": decimal.NewFromFloat(0.005),
			"andalusia": decimal.NewFromFloat(-0.003),
			"valencia":  decimal.NewFromFloat(0.004),
			"murcia":    decimal.NewFromFloat(0.002),
			"default":   decimal.Zero,
		},

		Flat: domain.FlatRateSchedule{
			Threshold:     decimal.NewFromInt(600000),
			BaseRate:      decimal.NewFromFloat(0.24),
			SurchargeRate: decimal.NewFromFloat(0.47),
		},

		Contributions: domain.ContributionRates{
			EmployerSocialSecurity: decimal.NewFromFloat(0.236),
			EmployerUnemployment: map[domain.ContractType]decimal.Decimal{
				domain.ContractPermanent: decimal.NewFromFloat(0.055),
				domain.ContractTemporary: decimal.NewFromFloat(0.067),
			},
			EmployerTraining:      decimal.NewFromFloat(0.006),
			EmployerWageGuarantee: decimal.NewFromFloat(0.002),
			AccidentInsurance: map[domain.RiskTier]decimal.Decimal{
				domain.RiskLow:    decimal.NewFromFloat(0.0067),
				domain.RiskMedium: decimal.NewFromFloat(0.015),
				domain.RiskHigh:   decimal.NewFromFloat(0.035),
			},
			EmployeeSocialSecurity: decimal.NewFromFloat(0.047),
			EmployeeUnemployment: map[domain.ContractType]decimal.Decimal{
				domain.ContractPermanent: decimal.NewFromFloat(0.0155),
				domain.ContractTemporary: decimal.NewFromFloat(0.016),
			},
			EmployeeTraining: decimal.NewFromFloat(0.001),
		},

		RegimeYears:         6,
		HighIncomeThreshold: decimal.NewFromInt(300000),
	}
}
