package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	groundedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	stableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("118"))

	unstableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// statusStyle returns the style for a control-index band.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "GROUNDED":
		return groundedStyle
	case "STABLE":
		return stableStyle
	case "UNSTABLE":
		return unstableStyle
	default:
		return criticalStyle
	}
}
