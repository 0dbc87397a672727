package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEuro renders a monetary amount for display with thousands grouping
// and no decimal places, e.g. "€1,234". Engines keep full precision; rounding
// happens only here.
func FormatEuro(d decimal.Decimal) string {
	return "€" + groupThousands(d.Round(0).StringFixed(0))
}

// FormatEuroCents renders a monetary amount with two decimal places.
func FormatEuroCents(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return "€" + groupThousands(intPart) + "." + frac
}

// FormatPercent renders a 0-1 fraction as a percentage with one decimal,
// e.g. "24.0%".
func FormatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
