package compare

import (
	"fmt"
	"time"

	"github.com/asesorlab/estax/internal/domain"
)

// MaxScenarios bounds how many scenarios a session holds side by side.
const MaxScenarios = 3

// Session is the ephemeral in-memory holder for saved scenarios. It exists
// for the lifetime of one comparison view and is discarded with it; nothing
// is ever persisted. Session is the consumer boundary, so the scenario cap
// is enforced here rather than inside the calculators.
type Session struct {
	scenarios []domain.Scenario
	nextID    int
}

// NewSession creates an empty comparison session.
func NewSession() *Session {
	return &Session{nextID: 1}
}

// Add saves a computed scenario. It fails once the session is full.
func (s *Session) Add(label string, in domain.LaborCostInput, result domain.LaborCostResult) (domain.Scenario, error) {
	if len(s.scenarios) >= MaxScenarios {
		return domain.Scenario{}, fmt.Errorf("comparison is limited to %d scenarios; remove one first", MaxScenarios)
	}
	if label == "" {
		label = fmt.Sprintf("Scenario %d", s.nextID)
	}
	scenario := domain.Scenario{
		ID:      fmt.Sprintf("scenario-%d", s.nextID),
		Label:   label,
		Input:   in,
		Result:  result,
		SavedAt: time.Now(),
	}
	s.nextID++
	s.scenarios = append(s.scenarios, scenario)
	return scenario, nil
}

// Remove drops a scenario by ID. Returns false when no scenario matched.
func (s *Session) Remove(id string) bool {
	for i, sc := range s.scenarios {
		if sc.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every scenario.
func (s *Session) Clear() {
	s.scenarios = nil
}

// Scenarios returns the saved scenarios in insertion order.
func (s *Session) Scenarios() []domain.Scenario {
	out := make([]domain.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Len returns the number of saved scenarios.
func (s *Session) Len() int {
	return len(s.scenarios)
}

// Document is the serializable view of a session used by the formatters.
type Document struct {
	Scenarios      []domain.Scenario `json:"scenarios"`
	KeyDifferences []string          `json:"keyDifferences"`
}

// BuildDocument snapshots a session together with its derived differences.
func BuildDocument(s *Session) Document {
	scenarios := s.Scenarios()
	return Document{
		Scenarios:      scenarios,
		KeyDifferences: DeriveKeyDifferences(scenarios),
	}
}
