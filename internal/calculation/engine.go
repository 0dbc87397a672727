package calculation

import (
	"github.com/asesorlab/estax/internal/domain"
)

// Logger is the minimal logging surface the engine needs. The default is a
// no-op; the CLI installs a real implementation when debug output is on.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Engine bundles the two calculators over one injected rate set. Engines are
// stateless apart from configuration; a single Engine may be used from many
// goroutines concurrently.
type Engine struct {
	Rates     *domain.RateSet
	Beckham   *BeckhamCalculator
	LaborCost *LaborCostCalculator
	Debug     bool

	logger Logger
}

// NewEngine creates an engine over the given rate set.
func NewEngine(rates *domain.RateSet) *Engine {
	return &Engine{
		Rates:     rates,
		Beckham:   NewBeckhamCalculator(rates),
		LaborCost: NewLaborCostCalculator(rates),
		logger:    noopLogger{},
	}
}

// SetLogger installs a logger for debug output.
func (e *Engine) SetLogger(l Logger) {
	if l != nil {
		e.logger = l
	}
}

// CompareRegimes runs the standard-vs-flat comparison.
func (e *Engine) CompareRegimes(in domain.ComparisonInput) domain.ComparisonResult {
	result := e.Beckham.Compare(in)
	if e.Debug {
		e.logger.Debugf("compare regimes: region=%s total=%s standard=%s flat=%s savings=%s",
			in.Region, result.TotalIncome.StringFixed(2), result.StandardTax.StringFixed(2),
			result.FlatTax.StringFixed(2), result.AnnualSavings.StringFixed(2))
	}
	return result
}

// ComputeLaborCost runs the employer-cost breakdown.
func (e *Engine) ComputeLaborCost(in domain.LaborCostInput) domain.LaborCostResult {
	result := e.LaborCost.Compute(in)
	if e.Debug {
		e.logger.Debugf("labor cost: monthly=%s net=%s employer total=%s annual cost=%s",
			result.MonthlyGross.StringFixed(2), result.NetSalary.StringFixed(2),
			result.Employer.Total.StringFixed(2), result.TotalAnnualEmployerCost.StringFixed(2))
	}
	return result
}
