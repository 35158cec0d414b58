package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for dashboard sections
// so stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 96)
}

// MetricCard renders a dashboard card with a dim label over a bold value.
func MetricCard(label, value string, width int) string {
	body := theme.Label.Render(label) + "\n" + theme.Value.Foreground(theme.Primary).Render(value)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(body)
}

// Panel wraps content in a rounded-border box of the given width.
func Panel(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(1, 2).
		Render(content)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
