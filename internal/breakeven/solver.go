package breakeven

import (
	"fmt"

	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

// SolverOptions configures the break-even search.
type SolverOptions struct {
	// LowerBound and UpperBound delimit the income range searched.
	LowerBound decimal.Decimal
	UpperBound decimal.Decimal

	// Tolerance is the acceptable absolute saving at the reported income.
	Tolerance decimal.Decimal

	// MaxIterations caps the bisection steps.
	MaxIterations int
}

// DefaultSolverOptions returns sensible defaults: search between 10k and 1M
// with a one-euro tolerance.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		LowerBound:    decimal.NewFromInt(10000),
		UpperBound:    decimal.NewFromInt(1000000),
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 100,
	}
}

// Result describes the break-even income for a region: the gross annual
// income at which the flat regime's annual saving crosses zero. Below it the
// special regime costs more than the standard one; above it the special
// regime saves money.
type Result struct {
	Region          string          `json:"region"`
	BreakEvenIncome decimal.Decimal `json:"breakEvenIncome"`
	SavingAtResult  decimal.Decimal `json:"savingAtResult"`
	Iterations      int             `json:"iterations"`
	Converged       bool            `json:"converged"`
}

// Solver finds the break-even income by bisection over the saving function.
type Solver struct {
	Calc    *calculation.BeckhamCalculator
	Options SolverOptions
}

// NewSolver creates a solver with explicit options.
func NewSolver(calc *calculation.BeckhamCalculator, options SolverOptions) *Solver {
	return &Solver{Calc: calc, Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(calc *calculation.BeckhamCalculator) *Solver {
	return NewSolver(calc, DefaultSolverOptions())
}

// savingAt evaluates standard tax minus flat tax at a gross income.
func (s *Solver) savingAt(income decimal.Decimal, region string) decimal.Decimal {
	result := s.Calc.Compare(domain.ComparisonInput{
		GrossAnnualSalary: income,
		AdditionalIncome:  decimal.Zero,
		Region:            region,
	})
	return result.AnnualSavings
}

// Solve bisects for the income where the saving changes sign. It fails when
// the saving has the same sign at both bounds, meaning no crossing exists in
// the configured range.
func (s *Solver) Solve(region string) (*Result, error) {
	if s.Calc == nil {
		return nil, fmt.Errorf("solver requires a calculator")
	}
	lo := s.Options.LowerBound
	hi := s.Options.UpperBound
	if hi.LessThanOrEqual(lo) {
		return nil, fmt.Errorf("upper bound %s must exceed lower bound %s", hi, lo)
	}

	savingLo := s.savingAt(lo, region)
	savingHi := s.savingAt(hi, region)
	if savingLo.Abs().LessThanOrEqual(s.Options.Tolerance) {
		return &Result{Region: region, BreakEvenIncome: lo, SavingAtResult: savingLo, Converged: true}, nil
	}
	if savingHi.Abs().LessThanOrEqual(s.Options.Tolerance) {
		return &Result{Region: region, BreakEvenIncome: hi, SavingAtResult: savingHi, Converged: true}, nil
	}
	if savingLo.Sign() == savingHi.Sign() {
		return nil, fmt.Errorf("no break-even income between %s and %s for region %s",
			lo.StringFixed(0), hi.StringFixed(0), region)
	}

	two := decimal.NewFromInt(2)
	var mid, savingMid decimal.Decimal
	for i := 1; i <= s.Options.MaxIterations; i++ {
		mid = lo.Add(hi).Div(two)
		savingMid = s.savingAt(mid, region)

		if savingMid.Abs().LessThanOrEqual(s.Options.Tolerance) {
			return &Result{
				Region:          region,
				BreakEvenIncome: mid,
				SavingAtResult:  savingMid,
				Iterations:      i,
				Converged:       true,
			}, nil
		}
		if savingMid.Sign() == savingLo.Sign() {
			lo = mid
			savingLo = savingMid
		} else {
			hi = mid
		}
	}

	// Interval shrank without meeting the tolerance; report the midpoint.
	return &Result{
		Region:          region,
		BreakEvenIncome: mid,
		SavingAtResult:  savingMid,
		Iterations:      s.Options.MaxIterations,
		Converged:       false,
	}, nil
}
