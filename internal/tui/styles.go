package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorAccent  = lipgloss.Color("208") // orange
	ColorSuccess = lipgloss.Color("42")  // green
	ColorDanger  = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("241") // gray
	ColorBorder  = lipgloss.Color("238")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true)

	ParameterLabelStyle = lipgloss.NewStyle().
				Bold(true)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
