package breakeven

import (
	"testing"

	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/config"
	"github.com/shopspring/decimal"
)

func defaultCalculator() *calculation.BeckhamCalculator {
	return calculation.NewBeckhamCalculator(config.DefaultRateSet())
}

func TestSolveConvergesForDefaultRegion(t *testing.T) {
	solver := NewDefaultSolver(defaultCalculator())

	result, err := solver.Solve("")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Converged {
		t.Error("expected the search to converge")
	}
	if result.SavingAtResult.Abs().GreaterThan(solver.Options.Tolerance) {
		t.Errorf("saving at break-even = %s, want within tolerance %s",
			result.SavingAtResult, solver.Options.Tolerance)
	}

	// Under the 2025 tables the flat regime starts paying off a little
	// above 30k; the crossing sits between 30000 and 31000.
	lo := decimal.NewFromInt(30000)
	hi := decimal.NewFromInt(31000)
	if result.BreakEvenIncome.LessThan(lo) || result.BreakEvenIncome.GreaterThan(hi) {
		t.Errorf("break-even income = %s, want between %s and %s",
			result.BreakEvenIncome.StringFixed(0), lo, hi)
	}
}

func TestSolveRegionalDeltaMovesBreakEven(t *testing.T) {
	solver := NewDefaultSolver(defaultCalculator())

	base, err := solver.Solve("")
	if err != nil {
		t.Fatal(err)
	}
	// Madrid's negative regional delta lowers the progressive tax, so a
	// higher income is needed before the flat regime wins.
	madrid, err := solver.Solve("madrid")
	if err != nil {
		t.Fatal(err)
	}
	if !madrid.BreakEvenIncome.GreaterThan(base.BreakEvenIncome) {
		t.Errorf("madrid break-even %s should exceed default %s",
			madrid.BreakEvenIncome.StringFixed(0), base.BreakEvenIncome.StringFixed(0))
	}
}

func TestSolveNoCrossingInRange(t *testing.T) {
	solver := NewSolver(defaultCalculator(), SolverOptions{
		LowerBound:    decimal.NewFromInt(100000),
		UpperBound:    decimal.NewFromInt(200000),
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 100,
	})

	// The flat regime already saves money at both ends of this range, so
	// the saving never changes sign.
	if _, err := solver.Solve(""); err == nil {
		t.Error("expected an error when the saving has the same sign at both bounds")
	}
}

func TestSolveRejectsInvertedBounds(t *testing.T) {
	solver := NewSolver(defaultCalculator(), SolverOptions{
		LowerBound:    decimal.NewFromInt(50000),
		UpperBound:    decimal.NewFromInt(20000),
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 100,
	})
	if _, err := solver.Solve(""); err == nil {
		t.Error("expected an error for inverted bounds")
	}
}

func TestSolveRequiresCalculator(t *testing.T) {
	solver := NewSolver(nil, DefaultSolverOptions())
	if _, err := solver.Solve(""); err == nil {
		t.Error("expected an error without a calculator")
	}
}
