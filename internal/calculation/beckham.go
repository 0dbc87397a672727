package calculation

import (
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BeckhamCalculator compares the standard progressive regime against the
// special flat regime (Beckham Law) for a given rate set.
type BeckhamCalculator struct {
	Brackets []domain.TaxBracket
	Regional domain.RegionalAdjustments
	Flat     domain.FlatRateSchedule

	// RegimeYears is the fixed maximum duration of the special regime,
	// used for the projected-savings figure.
	RegimeYears int

	// HighIncomeThreshold triggers the advisory warning flag only; it does
	// not change the arithmetic.
	HighIncomeThreshold decimal.Decimal
}

// NewBeckhamCalculator builds a comparator from a rate set.
func NewBeckhamCalculator(rates *domain.RateSet) *BeckhamCalculator {
	return &BeckhamCalculator{
		Brackets:            rates.StandardBrackets,
		Regional:            rates.Regional,
		Flat:                rates.Flat,
		RegimeYears:         rates.RegimeYears,
		HighIncomeThreshold: rates.HighIncomeThreshold,
	}
}

// ComputeFlatTax applies the special-regime schedule: the base rate up to the
// threshold, the surcharge rate on the excess. This is a two-tier flat
// schedule with a single breakpoint, kept separate from the bracket walk.
func (bc *BeckhamCalculator) ComputeFlatTax(totalIncome decimal.Decimal) decimal.Decimal {
	if totalIncome.LessThanOrEqual(bc.Flat.Threshold) {
		return totalIncome.Mul(bc.Flat.BaseRate)
	}
	excess := totalIncome.Sub(bc.Flat.Threshold)
	return bc.Flat.Threshold.Mul(bc.Flat.BaseRate).Add(excess.Mul(bc.Flat.SurchargeRate))
}

// Compare runs both regimes over the input and derives savings figures.
// Effective rates are zero when total income is zero; they are never NaN.
func (bc *BeckhamCalculator) Compare(in domain.ComparisonInput) domain.ComparisonResult {
	totalIncome := in.TotalIncome()
	delta := bc.Regional.DeltaFor(in.Region)

	standardTax, breakdown := ComputeProgressiveTax(totalIncome, bc.Brackets, delta)
	flatTax := bc.ComputeFlatTax(totalIncome)

	result := domain.ComparisonResult{
		TotalIncome:              totalIncome,
		StandardTax:              standardTax,
		StandardNetIncome:        totalIncome.Sub(standardTax),
		FlatTax:                  flatTax,
		FlatNetIncome:            totalIncome.Sub(flatTax),
		AnnualSavings:            standardTax.Sub(flatTax),
		BracketBreakdown:         breakdown,
		ExceedsFlatRateThreshold: totalIncome.GreaterThan(bc.Flat.Threshold),
		HighIncomeWarning:        totalIncome.GreaterThan(bc.HighIncomeThreshold),
	}

	if totalIncome.IsPositive() {
		result.StandardEffectiveRate = standardTax.Div(totalIncome)
		result.FlatEffectiveRate = flatTax.Div(totalIncome)
	}
	if standardTax.IsPositive() {
		result.SavingsPercent = result.AnnualSavings.Div(standardTax).Mul(hundred)
	}
	result.ProjectedSavings = result.AnnualSavings.Mul(decimal.NewFromInt(int64(bc.RegimeYears)))

	return result
}
