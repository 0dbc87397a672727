package transform

import (
	"fmt"

	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioTransform is a composable modification of a labor-cost input. A
// transform never mutates its argument; it returns a modified copy. Chains of
// transforms power the what-if comparison flow.
type ScenarioTransform interface {
	// Apply returns a modified copy of the base input.
	Apply(base domain.LaborCostInput) (domain.LaborCostInput, error)

	// Name returns a short identifier, e.g. "set_payments".
	Name() string

	// Description returns a human-readable summary of the modification.
	Description() string
}

// ApplyTransforms applies a sequence of transforms in order, each receiving
// the previous one's output.
func ApplyTransforms(base domain.LaborCostInput, transforms []ScenarioTransform) (domain.LaborCostInput, error) {
	current := base
	for i, tr := range transforms {
		if tr == nil {
			return domain.LaborCostInput{}, fmt.Errorf("transform at index %d is nil", i)
		}
		next, err := tr.Apply(current)
		if err != nil {
			return domain.LaborCostInput{}, fmt.Errorf("transform %s failed: %w", tr.Name(), err)
		}
		current = next
	}
	return current, nil
}

// SetPayments switches the annual payment count.
type SetPayments struct {
	Payments int
}

func (t *SetPayments) Name() string        { return "set_payments" }
func (t *SetPayments) Description() string { return fmt.Sprintf("Pay salary in %d installments", t.Payments) }

func (t *SetPayments) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	if t.Payments != 12 && t.Payments != 14 {
		return domain.LaborCostInput{}, fmt.Errorf("payments must be 12 or 14, got %d", t.Payments)
	}
	out := base
	// A monthly figure means a different annual total under a different
	// payment count; keep the annual gross stable instead.
	if base.SalaryInputMode == domain.SalaryMonthly {
		out.GrossSalary = base.AnnualGross()
		out.SalaryInputMode = domain.SalaryAnnual
	}
	out.PaymentsPerYear = t.Payments
	return out, nil
}

// SetRiskTier switches the industry accident-risk tier.
type SetRiskTier struct {
	Tier domain.RiskTier
}

func (t *SetRiskTier) Name() string        { return "set_risk_tier" }
func (t *SetRiskTier) Description() string { return fmt.Sprintf("Classify industry risk as %s", t.Tier) }

func (t *SetRiskTier) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	switch t.Tier {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
	default:
		return domain.LaborCostInput{}, fmt.Errorf("unknown risk tier %q", t.Tier)
	}
	out := base
	out.RiskTier = t.Tier
	return out, nil
}

// SetContractType switches the employment contract class.
type SetContractType struct {
	Contract domain.ContractType
}

func (t *SetContractType) Name() string        { return "set_contract_type" }
func (t *SetContractType) Description() string { return fmt.Sprintf("Use a %s contract", t.Contract) }

func (t *SetContractType) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	switch t.Contract {
	case domain.ContractPermanent, domain.ContractTemporary:
	default:
		return domain.LaborCostInput{}, fmt.Errorf("unknown contract type %q", t.Contract)
	}
	out := base
	out.ContractType = t.Contract
	return out, nil
}

// ScaleHeadcount multiplies the employee count.
type ScaleHeadcount struct {
	Factor int
}

func (t *ScaleHeadcount) Name() string        { return "scale_headcount" }
func (t *ScaleHeadcount) Description() string { return fmt.Sprintf("Multiply headcount by %d", t.Factor) }

func (t *ScaleHeadcount) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	if t.Factor < 1 {
		return domain.LaborCostInput{}, fmt.Errorf("headcount factor must be at least 1, got %d", t.Factor)
	}
	out := base
	out.EmployeeCount = base.EmployeeCount * t.Factor
	return out, nil
}

// AdjustSalary changes the gross salary by a percentage (positive or
// negative).
type AdjustSalary struct {
	Percent decimal.Decimal
}

func (t *AdjustSalary) Name() string { return "adjust_salary" }

func (t *AdjustSalary) Description() string {
	return fmt.Sprintf("Adjust gross salary by %s%%", t.Percent.StringFixed(1))
}

func (t *AdjustSalary) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	factor := decimal.NewFromInt(1).Add(t.Percent.Div(decimal.NewFromInt(100)))
	if !factor.IsPositive() {
		return domain.LaborCostInput{}, fmt.Errorf("salary adjustment of %s%% would zero out the salary", t.Percent)
	}
	out := base
	out.GrossSalary = base.GrossSalary.Mul(factor)
	return out, nil
}
