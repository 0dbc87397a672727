package transform

import (
	"strings"

	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates.
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms.
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]Template)}
}

// Register adds a template to the registry.
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive).
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// ApplyTemplate applies a template's transforms to a base input.
func ApplyTemplate(base domain.LaborCostInput, t Template) (domain.LaborCostInput, error) {
	return ApplyTransforms(base, t.Transforms)
}

// CreateBuiltInTemplates builds the registry of common hiring what-ifs.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "fourteen_payments",
		Description: "Pay the same annual gross in 14 installments",
		Transforms: []ScenarioTransform{
			&SetPayments{Payments: 14},
		},
	})

	registry.Register(Template{
		Name:        "twelve_payments",
		Description: "Pay the same annual gross in 12 installments",
		Transforms: []ScenarioTransform{
			&SetPayments{Payments: 12},
		},
	})

	registry.Register(Template{
		Name:        "temporary_contract",
		Description: "Hire on a temporary contract (higher unemployment rates)",
		Transforms: []ScenarioTransform{
			&SetContractType{Contract: domain.ContractTemporary},
		},
	})

	registry.Register(Template{
		Name:        "high_risk",
		Description: "Classify the industry as high accident risk",
		Transforms: []ScenarioTransform{
			&SetRiskTier{Tier: domain.RiskHigh},
		},
	})

	registry.Register(Template{
		Name:        "double_headcount",
		Description: "Double the number of employees",
		Transforms: []ScenarioTransform{
			&ScaleHeadcount{Factor: 2},
		},
	})

	registry.Register(Template{
		Name:        "raise_10pct",
		Description: "Raise gross salary by 10%",
		Transforms: []ScenarioTransform{
			&AdjustSalary{Percent: decimal.NewFromInt(10)},
		},
	})

	return registry
}
