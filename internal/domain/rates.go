package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one band of a progressive scale. Brackets are contiguous,
// non-overlapping and ordered ascending by Min; the final bracket has a nil
// Max, meaning it extends without bound. A nil Max is omitted from JSON so
// serialized results never carry an infinity sentinel.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit.
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// Bounded is a convenience constructor for a closed bracket.
func Bounded(min, max int64, rate float64) TaxBracket {
	upper := decimal.NewFromInt(max)
	return TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  &upper,
		Rate: decimal.NewFromFloat(rate),
	}
}

// Open is a convenience constructor for the final, unbounded bracket.
func Open(min int64, rate float64) TaxBracket {
	return TaxBracket{
		Min:  decimal.NewFromInt(min),
		Rate: decimal.NewFromFloat(rate),
	}
}

// RegionalAdjustments maps an autonomous-community key to a signed rate delta
// applied additively to every bracket of the standard scale. Unknown keys
// resolve to a zero delta.
type RegionalAdjustments map[string]decimal.Decimal

// DeltaFor returns the adjustment for a region, zero if the region is not
// configured.
func (ra RegionalAdjustments) DeltaFor(region string) decimal.Decimal {
	if delta, ok := ra[region]; ok {
		return delta
	}
	return decimal.Zero
}

// Regions returns the configured region keys.
func (ra RegionalAdjustments) Regions() []string {
	keys := make([]string, 0, len(ra))
	for k := range ra {
		keys = append(keys, k)
	}
	return keys
}

// FlatRateSchedule is the special-regime schedule: a base rate up to a single
// threshold and a surcharge rate on the excess. It is deliberately not
// expressed as progressive brackets; it has exactly one breakpoint and no
// regional variation.
type FlatRateSchedule struct {
	Threshold     decimal.Decimal `yaml:"threshold" json:"threshold"`
	BaseRate      decimal.Decimal `yaml:"base_rate" json:"baseRate"`
	SurchargeRate decimal.Decimal `yaml:"surcharge_rate" json:"surchargeRate"`
}

// ContributionRates holds the social security contribution schedule as
// fractions of monthly gross. Unemployment rates differ by contract type and
// the accident-insurance rate by industry risk tier.
type ContributionRates struct {
	EmployerSocialSecurity decimal.Decimal                  `yaml:"employer_social_security" json:"employerSocialSecurity"`
	EmployerUnemployment   map[ContractType]decimal.Decimal `yaml:"employer_unemployment" json:"employerUnemployment"`
	EmployerTraining       decimal.Decimal                  `yaml:"employer_training" json:"employerTraining"`
	EmployerWageGuarantee  decimal.Decimal                  `yaml:"employer_wage_guarantee" json:"employerWageGuarantee"`
	AccidentInsurance      map[RiskTier]decimal.Decimal     `yaml:"accident_insurance" json:"accidentInsurance"`

	EmployeeSocialSecurity decimal.Decimal                  `yaml:"employee_social_security" json:"employeeSocialSecurity"`
	EmployeeUnemployment   map[ContractType]decimal.Decimal `yaml:"employee_unemployment" json:"employeeUnemployment"`
	EmployeeTraining       decimal.Decimal                  `yaml:"employee_training" json:"employeeTraining"`
}

// EmployerUnemploymentFor returns the employer unemployment rate for a
// contract type, falling back to the permanent-contract rate.
func (cr ContributionRates) EmployerUnemploymentFor(ct ContractType) decimal.Decimal {
	if r, ok := cr.EmployerUnemployment[ct]; ok {
		return r
	}
	return cr.EmployerUnemployment[ContractPermanent]
}

// EmployeeUnemploymentFor returns the employee unemployment rate for a
// contract type, falling back to the permanent-contract rate.
func (cr ContributionRates) EmployeeUnemploymentFor(ct ContractType) decimal.Decimal {
	if r, ok := cr.EmployeeUnemployment[ct]; ok {
		return r
	}
	return cr.EmployeeUnemployment[ContractPermanent]
}

// AccidentInsuranceFor returns the accident-insurance rate for a risk tier,
// falling back to the low tier.
func (cr ContributionRates) AccidentInsuranceFor(tier RiskTier) decimal.Decimal {
	if r, ok := cr.AccidentInsurance[tier]; ok {
		return r
	}
	return cr.AccidentInsurance[RiskLow]
}

// RateSet bundles every table the engines need for one tax year. Rate sets
// are immutable once built; callers inject them into the calculation engine
// so per-year configuration needs no code change.
type RateSet struct {
	Year                int                 `yaml:"year" json:"year"`
	StandardBrackets    []TaxBracket        `yaml:"standard_brackets" json:"standardBrackets"`
	WithholdingBrackets []TaxBracket        `yaml:"withholding_brackets" json:"withholdingBrackets"`
	Regional            RegionalAdjustments `yaml:"regional_adjustments" json:"regionalAdjustments"`
	Flat                FlatRateSchedule    `yaml:"flat_rate" json:"flatRate"`
	Contributions       ContributionRates   `yaml:"contribution_rates" json:"contributionRates"`
	RegimeYears         int                 `yaml:"regime_years" json:"regimeYears"`
	HighIncomeThreshold decimal.Decimal     `yaml:"high_income_threshold" json:"highIncomeThreshold"`
}
