package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asesorlab/estax/internal/calculation"
)

// Run starts the playground over the given engine and blocks until the user
// quits.
func Run(engine *calculation.Engine) error {
	p := tea.NewProgram(NewModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
