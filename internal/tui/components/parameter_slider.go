package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ParameterSlider displays an adjustable numeric parameter with a visual
// slider bar.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string
	Format    string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider with defaults.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  24,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// Increment increases the value by one step, clamped to Max.
func (p *ParameterSlider) Increment() {
	if v := p.Value + p.Step; v <= p.Max {
		p.Value = v
	}
}

// Decrement decreases the value by one step, clamped to Min.
func (p *ParameterSlider) Decrement() {
	if v := p.Value - p.Step; v >= p.Min {
		p.Value = v
	}
}

// Percentage returns the value's position within the range.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the styled slider.
func (p *ParameterSlider) Render(labelStyle, valueStyle, trackStyle, thumbStyle lipgloss.Style) string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render(p.Label))
	sb.WriteString("  ")

	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}
	sb.WriteString(valueStyle.Render(valueStr))
	sb.WriteString("\n")
	sb.WriteString(p.renderBar(trackStyle, thumbStyle))

	return sb.String()
}

func (p *ParameterSlider) renderBar(trackStyle, thumbStyle lipgloss.Style) string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
