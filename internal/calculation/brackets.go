package calculation

import (
	"fmt"

	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeProgressiveTax walks an ascending progressive scale and returns the
// total tax plus a per-bracket breakdown. The regional delta is applied
// additively to every bracket's rate; a delta negative enough to push a rate
// below zero is clamped at zero (a bracket can be free, never a credit).
//
// The walk fills brackets bottom-up: the amount taxed in each bracket is
// limited by the remaining income and the bracket width. It stops as soon as
// income is exhausted or the scale runs out, whichever comes first. Zero
// income yields zero tax and an empty breakdown.
func ComputeProgressiveTax(taxableIncome decimal.Decimal, brackets []domain.TaxBracket, regionalDelta decimal.Decimal) (decimal.Decimal, []domain.BracketLine) {
	total := decimal.Zero
	var breakdown []domain.BracketLine

	remaining := taxableIncome
	for _, bracket := range brackets {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		incomeInBracket := remaining
		if !bracket.Unbounded() {
			width := bracket.Max.Sub(bracket.Min)
			if width.LessThanOrEqual(decimal.Zero) {
				continue
			}
			incomeInBracket = decimal.Min(remaining, width)
		}
		if incomeInBracket.LessThanOrEqual(decimal.Zero) {
			continue
		}

		rate := bracket.Rate.Add(regionalDelta)
		if rate.IsNegative() {
			rate = decimal.Zero
		}

		tax := incomeInBracket.Mul(rate)
		total = total.Add(tax)
		breakdown = append(breakdown, domain.BracketLine{
			Bracket:         BracketLabel(bracket),
			IncomeInBracket: incomeInBracket,
			EffectiveRate:   rate,
			Tax:             tax,
		})
		remaining = remaining.Sub(incomeInBracket)
	}

	return total, breakdown
}

// BracketLabel renders a bracket's range for display and breakdown rows,
// e.g. "12450-20200" or "300000+" for the open top bracket.
func BracketLabel(b domain.TaxBracket) string {
	if b.Unbounded() {
		return fmt.Sprintf("%s+", b.Min.StringFixed(0))
	}
	return fmt.Sprintf("%s-%s", b.Min.StringFixed(0), b.Max.StringFixed(0))
}
