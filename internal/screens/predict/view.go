package predict

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/ui/components"
	"github.com/abhisek/gradecast/internal/ui/layout"
	"github.com/abhisek/gradecast/internal/ui/theme"
)

// columns matches the three-column form of the web dashboard:
// 5, 5 and 4 fields.
var columns = [][2]int{{0, 5}, {5, 10}, {10, 14}}

func (s *Screen) viewForm(width, height int) string {
	cw := min(width-4, 96)

	var cols []string
	if layout.IsCompactWidth(width) {
		// Two columns: the first seven fields, then the rest.
		colW := layout.ColumnWidth(cw, 2, 2)
		cols = append(cols, s.renderColumn(0, 7, colW), "  ", s.renderColumn(7, len(s.inputs), colW))
	} else {
		colW := layout.ColumnWidth(cw, 3, 2)
		for i, c := range columns {
			if i > 0 {
				cols = append(cols, "  ")
			}
			cols = append(cols, s.renderColumn(c[0], c[1], colW))
		}
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	button := components.NewButton("Predict Performance", s.focus == len(s.inputs), nil).View()
	if s.busy {
		button = theme.Hint.Render("Predicting...")
	}

	sections := []string{
		theme.Title.Width(cw).Render("Student Performance Prediction"),
		grid,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(button),
	}
	if len(s.messages) > 0 {
		lines := make([]string, len(s.messages))
		for i, m := range s.messages {
			lines[i] = theme.Bad.Render("✗ " + m)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderColumn(from, to, width int) string {
	var rows []string
	for i := from; i < to; i++ {
		in := s.inputs[i]
		label := theme.Label
		if i == s.focus {
			label = theme.Selected
		}
		title := label.Render(fmt.Sprintf("%s (%s)", in.spec.Label, in.spec.Domain()))

		var control string
		if in.isEnum() {
			control = in.sel.View()
		} else {
			control = in.text.View()
		}
		rows = append(rows, title+"\n  "+control)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n\n"))
}

func (s *Screen) viewResult(width, height int) string {
	cw := components.ContentWidth(width)
	banner := theme.ResultCard.Width(cw).Render(fmt.Sprintf("Predicted Final Grade Class: %s", s.label))
	back := components.NewButton("Back to Form", true, nil).View()

	content := theme.Title.Width(cw).Render("Final Grade Prediction") + "\n\n" +
		banner + "\n\n" +
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(back)
	return components.Centered(content, width, height)
}
