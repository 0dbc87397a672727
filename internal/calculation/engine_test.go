package calculation_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/config"
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Debugf(format string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(format, args...))
}
func (c *captureLogger) Infof(format string, args ...any)  {}
func (c *captureLogger) Warnf(format string, args ...any)  {}
func (c *captureLogger) Errorf(format string, args ...any) {}

func TestEngineDelegatesToCalculators(t *testing.T) {
	engine := calculation.NewEngine(config.DefaultRateSet())

	in := domain.ComparisonInput{GrossAnnualSalary: decimal.NewFromInt(80000)}
	if !engine.CompareRegimes(in).StandardTax.Equal(engine.Beckham.Compare(in).StandardTax) {
		t.Error("CompareRegimes should produce the calculator's result")
	}

	laborIn := domain.LaborCostInput{
		GrossSalary:     decimal.NewFromInt(30000),
		SalaryInputMode: domain.SalaryAnnual,
		PaymentsPerYear: 12,
		ContractType:    domain.ContractPermanent,
		EmployeeCount:   1,
		RiskTier:        domain.RiskLow,
	}
	if !engine.ComputeLaborCost(laborIn).NetSalary.Equal(engine.LaborCost.Compute(laborIn).NetSalary) {
		t.Error("ComputeLaborCost should produce the calculator's result")
	}
}

func TestEngineDebugLogging(t *testing.T) {
	engine := calculation.NewEngine(config.DefaultRateSet())
	logger := &captureLogger{}
	engine.SetLogger(logger)

	engine.CompareRegimes(domain.ComparisonInput{GrossAnnualSalary: decimal.NewFromInt(80000)})
	if len(logger.lines) != 0 {
		t.Errorf("no debug output expected with debug off, got %v", logger.lines)
	}

	engine.Debug = true
	engine.CompareRegimes(domain.ComparisonInput{GrossAnnualSalary: decimal.NewFromInt(80000), Region: "madrid"})
	if len(logger.lines) != 1 {
		t.Fatalf("expected one debug line, got %d", len(logger.lines))
	}
	if !strings.Contains(logger.lines[0], "madrid") {
		t.Errorf("debug line should mention the region: %q", logger.lines[0])
	}
}

func TestEngineIgnoresNilLogger(t *testing.T) {
	engine := calculation.NewEngine(config.DefaultRateSet())
	engine.SetLogger(nil)
	engine.Debug = true

	// Must not panic with the no-op logger still in place.
	engine.CompareRegimes(domain.ComparisonInput{GrossAnnualSalary: decimal.NewFromInt(50000)})
}
