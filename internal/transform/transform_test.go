package transform

import (
	"testing"

	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

func baseInput() domain.LaborCostInput {
	return domain.LaborCostInput{
		GrossSalary:     decimal.NewFromInt(30000),
		SalaryInputMode: domain.SalaryAnnual,
		PaymentsPerYear: 12,
		ContractType:    domain.ContractPermanent,
		EmployeeCount:   1,
		RiskTier:        domain.RiskLow,
	}
}

func TestSetPaymentsKeepsAnnualStableForMonthlyMode(t *testing.T) {
	base := domain.LaborCostInput{
		GrossSalary:     decimal.NewFromInt(2500),
		SalaryInputMode: domain.SalaryMonthly,
		PaymentsPerYear: 12,
		ContractType:    domain.ContractPermanent,
		EmployeeCount:   1,
		RiskTier:        domain.RiskLow,
	}
	annualBefore := base.AnnualGross()

	out, err := (&SetPayments{Payments: 14}).Apply(base)
	if err != nil {
		t.Fatal(err)
	}
	if out.SalaryInputMode != domain.SalaryAnnual {
		t.Errorf("monthly input should be converted to annual, got mode %q", out.SalaryInputMode)
	}
	if !out.AnnualGross().Equal(annualBefore) {
		t.Errorf("annual gross changed: %s -> %s", annualBefore, out.AnnualGross())
	}
	if out.PaymentsPerYear != 14 {
		t.Errorf("payments = %d, want 14", out.PaymentsPerYear)
	}
	if base.PaymentsPerYear != 12 || base.SalaryInputMode != domain.SalaryMonthly {
		t.Error("Apply must not mutate its argument")
	}
}

func TestSetPaymentsRejectsOddCounts(t *testing.T) {
	if _, err := (&SetPayments{Payments: 13}).Apply(baseInput()); err == nil {
		t.Error("expected error for 13 payments")
	}
}

func TestSetRiskTierRejectsUnknown(t *testing.T) {
	if _, err := (&SetRiskTier{Tier: "extreme"}).Apply(baseInput()); err == nil {
		t.Error("expected error for unknown risk tier")
	}
}

func TestSetContractTypeRejectsUnknown(t *testing.T) {
	if _, err := (&SetContractType{Contract: "freelance"}).Apply(baseInput()); err == nil {
		t.Error("expected error for unknown contract type")
	}
}

func TestScaleHeadcount(t *testing.T) {
	out, err := (&ScaleHeadcount{Factor: 3}).Apply(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	if out.EmployeeCount != 3 {
		t.Errorf("employee count = %d, want 3", out.EmployeeCount)
	}

	if _, err := (&ScaleHeadcount{Factor: 0}).Apply(baseInput()); err == nil {
		t.Error("expected error for zero factor")
	}
}

func TestAdjustSalary(t *testing.T) {
	out, err := (&AdjustSalary{Percent: decimal.NewFromInt(10)}).Apply(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	if !out.GrossSalary.Equal(decimal.NewFromInt(33000)) {
		t.Errorf("gross after 10%% raise = %s, want 33000", out.GrossSalary)
	}

	cut, err := (&AdjustSalary{Percent: decimal.NewFromInt(-20)}).Apply(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	if !cut.GrossSalary.Equal(decimal.NewFromInt(24000)) {
		t.Errorf("gross after 20%% cut = %s, want 24000", cut.GrossSalary)
	}

	if _, err := (&AdjustSalary{Percent: decimal.NewFromInt(-100)}).Apply(baseInput()); err == nil {
		t.Error("expected error when the adjustment zeroes the salary")
	}
}

func TestApplyTransformsChainsInOrder(t *testing.T) {
	out, err := ApplyTransforms(baseInput(), []ScenarioTransform{
		&AdjustSalary{Percent: decimal.NewFromInt(10)},
		&ScaleHeadcount{Factor: 2},
		&SetContractType{Contract: domain.ContractTemporary},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !out.GrossSalary.Equal(decimal.NewFromInt(33000)) {
		t.Errorf("gross = %s, want 33000", out.GrossSalary)
	}
	if out.EmployeeCount != 2 {
		t.Errorf("employee count = %d, want 2", out.EmployeeCount)
	}
	if out.ContractType != domain.ContractTemporary {
		t.Errorf("contract = %q, want temporary", out.ContractType)
	}
}

func TestApplyTransformsRejectsNil(t *testing.T) {
	if _, err := ApplyTransforms(baseInput(), []ScenarioTransform{nil}); err == nil {
		t.Error("expected error for nil transform")
	}
}

func TestBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	for _, name := range []string{
		"fourteen_payments", "twelve_payments", "temporary_contract",
		"high_risk", "double_headcount", "raise_10pct",
	} {
		tmpl, ok := registry.Get(name)
		if !ok {
			t.Errorf("missing built-in template %q", name)
			continue
		}
		if _, err := ApplyTemplate(baseInput(), tmpl); err != nil {
			t.Errorf("template %q failed on a valid input: %v", name, err)
		}
	}

	if _, ok := registry.Get("no_such_template"); ok {
		t.Error("unexpected hit for an unregistered template")
	}
	if _, ok := registry.Get("FOURTEEN_PAYMENTS"); !ok {
		t.Error("template lookup should be case-insensitive")
	}
	if got := len(registry.List()); got != 6 {
		t.Errorf("registry lists %d templates, want 6", got)
	}
}
