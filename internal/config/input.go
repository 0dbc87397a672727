package config

import (
	"fmt"
	"os"

	"github.com/asesorlab/estax/internal/calculation"
	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of rate-table configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a rate set from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.RateSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rates domain.RateSet
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRateSet(&rates); err != nil {
		return nil, fmt.Errorf("rate set validation failed: %w", err)
	}

	return &rates, nil
}

// ValidateRateSet validates a loaded rate set.
func (ip *InputParser) ValidateRateSet(rates *domain.RateSet) error {
	if rates.Year <= 0 {
		return fmt.Errorf("year is required")
	}
	if err := ip.validateScale("standard_brackets", rates.StandardBrackets); err != nil {
		return err
	}
	if err := ip.validateScale("withholding_brackets", rates.WithholdingBrackets); err != nil {
		return err
	}
	if err := ip.validateFlatSchedule(&rates.Flat); err != nil {
		return err
	}
	if err := ip.validateContributions(&rates.Contributions); err != nil {
		return err
	}
	if rates.RegimeYears <= 0 {
		return fmt.Errorf("regime years must be positive")
	}
	if rates.HighIncomeThreshold.IsNegative() {
		return fmt.Errorf("high income threshold cannot be negative")
	}
	return nil
}

// validateScale checks that a progressive scale is contiguous, ascending and
// closed off by exactly one unbounded bracket.
func (ip *InputParser) validateScale(name string, brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%s: at least one bracket is required", name)
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("%s: first bracket must start at 0, got %s", name, brackets[0].Min)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s: bracket %d rate must be between 0 and 1", name, i)
		}
		last := i == len(brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("%s: final bracket must be unbounded", name)
			}
			continue
		}
		if b.Unbounded() {
			return fmt.Errorf("%s: only the final bracket may be unbounded", name)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("%s: bracket %d upper bound must exceed lower bound", name, i)
		}
		if !brackets[i+1].Min.Equal(*b.Max) {
			return fmt.Errorf("%s: bracket %d is not contiguous with bracket %d (%s != %s)",
				name, i, i+1, b.Max, brackets[i+1].Min)
		}
	}
	return nil
}

func (ip *InputParser) validateFlatSchedule(flat *domain.FlatRateSchedule) error {
	if !flat.Threshold.IsPositive() {
		return fmt.Errorf("flat_rate: threshold must be positive")
	}
	for _, r := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"base_rate", flat.BaseRate},
		{"surcharge_rate", flat.SurchargeRate},
	} {
		if r.rate.IsNegative() || r.rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("flat_rate: %s must be between 0 and 1", r.name)
		}
	}
	return nil
}

func (ip *InputParser) validateContributions(cr *domain.ContributionRates) error {
	checks := []struct {
		name string
		rate decimal.Decimal
	}{
		{"employer_social_security", cr.EmployerSocialSecurity},
		{"employer_training", cr.EmployerTraining},
		{"employer_wage_guarantee", cr.EmployerWageGuarantee},
		{"employee_social_security", cr.EmployeeSocialSecurity},
		{"employee_training", cr.EmployeeTraining},
	}
	for ct, r := range cr.EmployerUnemployment {
		checks = append(checks, struct {
			name string
			rate decimal.Decimal
		}{fmt.Sprintf("employer_unemployment[%s]", ct), r})
	}
	for ct, r := range cr.EmployeeUnemployment {
		checks = append(checks, struct {
			name string
			rate decimal.Decimal
		}{fmt.Sprintf("employee_unemployment[%s]", ct), r})
	}
	for tier, r := range cr.AccidentInsurance {
		checks = append(checks, struct {
			name string
			rate decimal.Decimal
		}{fmt.Sprintf("accident_insurance[%s]", tier), r})
	}
	for _, c := range checks {
		if c.rate.IsNegative() || c.rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("contribution_rates: %s must be between 0 and 1", c.name)
		}
	}
	if len(cr.EmployerUnemployment) == 0 {
		return fmt.Errorf("contribution_rates: employer_unemployment requires at least the permanent rate")
	}
	if len(cr.EmployeeUnemployment) == 0 {
		return fmt.Errorf("contribution_rates: employee_unemployment requires at least the permanent rate")
	}
	if len(cr.AccidentInsurance) == 0 {
		return fmt.Errorf("contribution_rates: accident_insurance requires at least the low tier")
	}
	return nil
}

// LoadOrDefault loads a rate file when one is given, otherwise returns the
// built-in defaults.
func (ip *InputParser) LoadOrDefault(filename string) (*domain.RateSet, error) {
	if filename == "" {
		return DefaultRateSet(), nil
	}
	return ip.LoadFromFile(filename)
}

// NewEngineFromFile is a convenience for callers that want an engine straight
// from an optional rate file.
func NewEngineFromFile(filename string) (*calculation.Engine, error) {
	parser := NewInputParser()
	rates, err := parser.LoadOrDefault(filename)
	if err != nil {
		return nil, err
	}
	return calculation.NewEngine(rates), nil
}
