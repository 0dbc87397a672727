package compare

import (
	"fmt"

	"github.com/asesorlab/estax/internal/domain"
	"github.com/asesorlab/estax/internal/output"
	"github.com/samber/lo"
)

// DeriveKeyDifferences builds human-readable statements about the extremes of
// a scenario set: the largest employer-cost gap and the largest net-salary
// gap. A set with fewer than two scenarios has no differences, and a
// statement is only emitted when the two extremes are genuinely different
// scenarios with a non-zero gap.
func DeriveKeyDifferences(scenarios []domain.Scenario) []string {
	if len(scenarios) < 2 {
		return nil
	}

	var differences []string

	cheapest := lo.MinBy(scenarios, func(a, b domain.Scenario) bool {
		return a.Result.TotalAnnualEmployerCost.LessThan(b.Result.TotalAnnualEmployerCost)
	})
	priciest := lo.MaxBy(scenarios, func(a, b domain.Scenario) bool {
		return a.Result.TotalAnnualEmployerCost.GreaterThan(b.Result.TotalAnnualEmployerCost)
	})
	costGap := priciest.Result.TotalAnnualEmployerCost.Sub(cheapest.Result.TotalAnnualEmployerCost)
	if cheapest.ID != priciest.ID && costGap.IsPositive() {
		differences = append(differences, fmt.Sprintf(
			"Lowest cost: %s costs %s less per year for the employer than %s",
			cheapest.Label, output.FormatEuro(costGap), priciest.Label))
	}

	bestNet := lo.MaxBy(scenarios, func(a, b domain.Scenario) bool {
		return a.Result.NetSalary.GreaterThan(b.Result.NetSalary)
	})
	worstNet := lo.MinBy(scenarios, func(a, b domain.Scenario) bool {
		return a.Result.NetSalary.LessThan(b.Result.NetSalary)
	})
	netGap := bestNet.Result.NetSalary.Sub(worstNet.Result.NetSalary)
	if bestNet.ID != worstNet.ID && netGap.IsPositive() {
		differences = append(differences, fmt.Sprintf(
			"Best take-home: %s nets the employee %s more per month than %s",
			bestNet.Label, output.FormatEuro(netGap), worstNet.Label))
	}

	return differences
}

// Labels returns the scenario labels in insertion order.
func Labels(scenarios []domain.Scenario) []string {
	return lo.Map(scenarios, func(s domain.Scenario, _ int) string { return s.Label })
}
