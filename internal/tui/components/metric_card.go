package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MetricCard displays a single metric with label and value.
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Width       int
}

// NewMetricCard creates a new metric card.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 28,
	}
}

// WithDescription adds a subtitle line.
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// Render returns the bordered card.
func (m *MetricCard) Render(cardStyle, labelStyle, valueStyle, descStyle lipgloss.Style) string {
	content := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	if m.Description != "" {
		content += "\n" + descStyle.Render(m.Description)
	}
	return cardStyle.Width(m.Width).Render(content)
}

// Grid lays out cards horizontally in rows of the given column count.
func Grid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	var rows []string
	var current []string
	for i, card := range cards {
		current = append(current, card)
		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
