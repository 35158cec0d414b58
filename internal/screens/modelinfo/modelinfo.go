package modelinfo

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/features"
	"github.com/abhisek/gradecast/internal/screen"
	"github.com/abhisek/gradecast/internal/ui/components"
	"github.com/abhisek/gradecast/internal/ui/theme"
)

// ModelInfoScreen shows what the loaded model is and which inputs it takes.
type ModelInfoScreen struct {
	info backend.ModelInfo
}

var _ screen.Screen = (*ModelInfoScreen)(nil)

func New(info backend.ModelInfo) *ModelInfoScreen {
	return &ModelInfoScreen{info: info}
}

func (s *ModelInfoScreen) Init() tea.Cmd { return nil }

func (s *ModelInfoScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *ModelInfoScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	row := func(label, value string) string {
		return theme.Label.Render(fmt.Sprintf("%-21s", label)) + theme.Value.Render(value)
	}

	var b strings.Builder
	b.WriteString(row("Model Name", s.info.Name) + "\n")
	b.WriteString(row("Algorithm", s.info.Algorithm) + "\n")
	b.WriteString(row("Validation Accuracy", s.info.AccuracyText()) + "\n")
	b.WriteString(row("Grade Classes", strings.Join(s.info.Classes, ", ")) + "\n\n")

	b.WriteString(theme.Selected.Render("Inputs") + "\n")
	for _, spec := range features.Specs() {
		b.WriteString(theme.Label.Render(fmt.Sprintf("  %-22s", spec.Label)) + theme.Body.Render(spec.Domain()) + "\n")
	}

	content := theme.Title.Width(cw).Render("Model Information") + "\n\n" +
		components.Panel(strings.TrimRight(b.String(), "\n"), cw)
	return components.Centered(content, width, height)
}

func (s *ModelInfoScreen) Title() string { return "Model Information" }
