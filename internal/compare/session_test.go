package compare

import (
	"strings"
	"testing"

	"github.com/asesorlab/estax/internal/domain"
	"github.com/shopspring/decimal"
)

func scenarioWith(label string, annualCost, netSalary int64) domain.Scenario {
	return domain.Scenario{
		ID:    "id-" + label,
		Label: label,
		Result: domain.LaborCostResult{
			TotalAnnualEmployerCost: decimal.NewFromInt(annualCost),
			NetSalary:               decimal.NewFromInt(netSalary),
		},
	}
}

func TestSessionAddEnforcesBound(t *testing.T) {
	s := NewSession()

	for i := 0; i < MaxScenarios; i++ {
		if _, err := s.Add("", domain.LaborCostInput{}, domain.LaborCostResult{}); err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}

	if _, err := s.Add("overflow", domain.LaborCostInput{}, domain.LaborCostResult{}); err == nil {
		t.Error("expected error when exceeding the scenario bound")
	}
	if s.Len() != MaxScenarios {
		t.Errorf("session holds %d scenarios, want %d", s.Len(), MaxScenarios)
	}
}

func TestSessionRemove(t *testing.T) {
	s := NewSession()
	sc, err := s.Add("first", domain.LaborCostInput{}, domain.LaborCostResult{})
	if err != nil {
		t.Fatal(err)
	}

	if !s.Remove(sc.ID) {
		t.Error("expected Remove to find the scenario")
	}
	if s.Len() != 0 {
		t.Errorf("session holds %d scenarios after remove, want 0", s.Len())
	}
	if s.Remove("missing") {
		t.Error("expected Remove to report a miss for an unknown id")
	}
}

func TestSessionRemoveFreesCapacity(t *testing.T) {
	s := NewSession()
	var last domain.Scenario
	for i := 0; i < MaxScenarios; i++ {
		last, _ = s.Add("", domain.LaborCostInput{}, domain.LaborCostResult{})
	}
	s.Remove(last.ID)

	if _, err := s.Add("replacement", domain.LaborCostInput{}, domain.LaborCostResult{}); err != nil {
		t.Errorf("expected capacity after remove, got: %v", err)
	}
}

func TestDeriveKeyDifferencesSingleScenario(t *testing.T) {
	diffs := DeriveKeyDifferences([]domain.Scenario{scenarioWith("only", 40000, 1800)})
	if len(diffs) != 0 {
		t.Errorf("expected no differences for a single scenario, got %v", diffs)
	}
}

func TestDeriveKeyDifferencesIdenticalScenarios(t *testing.T) {
	diffs := DeriveKeyDifferences([]domain.Scenario{
		scenarioWith("a", 40000, 1800),
		scenarioWith("b", 40000, 1800),
	})
	if len(diffs) != 0 {
		t.Errorf("expected no differences when extremes coincide, got %v", diffs)
	}
}

func TestDeriveKeyDifferencesEmitsBothGaps(t *testing.T) {
	diffs := DeriveKeyDifferences([]domain.Scenario{
		scenarioWith("lean", 39000, 1700),
		scenarioWith("rich", 45000, 1900),
	})

	if len(diffs) != 2 {
		t.Fatalf("expected 2 differences, got %d: %v", len(diffs), diffs)
	}
	if !strings.Contains(diffs[0], "lean") || !strings.Contains(diffs[0], "rich") {
		t.Errorf("cost difference should name both scenarios: %q", diffs[0])
	}
	if !strings.Contains(diffs[0], "€6,000") {
		t.Errorf("cost difference should carry the €6,000 gap: %q", diffs[0])
	}
	if !strings.Contains(diffs[1], "€200") {
		t.Errorf("net difference should carry the €200 gap: %q", diffs[1])
	}
}

func TestBuildDocumentSnapshotsSession(t *testing.T) {
	s := NewSession()
	s.Add("one", domain.LaborCostInput{}, domain.LaborCostResult{
		TotalAnnualEmployerCost: decimal.NewFromInt(41000),
		NetSalary:               decimal.NewFromInt(1750),
	})
	s.Add("two", domain.LaborCostInput{}, domain.LaborCostResult{
		TotalAnnualEmployerCost: decimal.NewFromInt(43000),
		NetSalary:               decimal.NewFromInt(1800),
	})

	doc := BuildDocument(s)
	if len(doc.Scenarios) != 2 {
		t.Fatalf("document holds %d scenarios, want 2", len(doc.Scenarios))
	}
	if len(doc.KeyDifferences) == 0 {
		t.Error("expected derived key differences in the document")
	}
}

func TestTableFormatterEmptySession(t *testing.T) {
	out := (&TableFormatter{}).Format(Document{})
	if !strings.Contains(out, "No scenarios saved") {
		t.Errorf("empty-session table should say so, got:\n%s", out)
	}
}

func TestCSVFormatterRowsPerScenario(t *testing.T) {
	doc := Document{Scenarios: []domain.Scenario{
		scenarioWith("a", 40000, 1800),
		scenarioWith("b", 41000, 1850),
	}}

	out, err := (&CSVFormatter{}).Format(doc)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	doc := Document{Scenarios: []domain.Scenario{scenarioWith("a", 40000, 1800)}}

	out, err := (&JSONFormatter{Pretty: true}).Format(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"scenarios"`) {
		t.Errorf("JSON output missing scenarios field:\n%s", out)
	}
	if strings.Contains(out, "Inf") || strings.Contains(out, "NaN") {
		t.Errorf("JSON output must not contain non-finite values:\n%s", out)
	}
}
