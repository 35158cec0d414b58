package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/router"
	"github.com/abhisek/gradecast/internal/screen"
	"github.com/abhisek/gradecast/internal/screens/modelinfo"
	"github.com/abhisek/gradecast/internal/screens/predict"
	"github.com/abhisek/gradecast/internal/session"
	"github.com/abhisek/gradecast/internal/ui/components"
	"github.com/abhisek/gradecast/internal/ui/layout"
	"github.com/abhisek/gradecast/internal/ui/theme"
)

// Status is shown on the dashboard once a backend has loaded.
const Status = "Production Ready"

const description = "Predicts a student's final grade class from behavioral, engagement,\n" +
	"academic and psychological indicators."

// Menu labels.
const (
	MenuPredict = "Student Performance"
	MenuModel   = "Model Information"
	MenuExit    = "Exit"
)

const buttonWidth = 26

// HomeScreen is the dashboard: model cards and the main menu.
type HomeScreen struct {
	menu components.Menu
	info backend.ModelInfo
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard for sess, whose backend is described by info.
func New(sess *session.Session, info backend.ModelInfo) *HomeScreen {
	items := []components.MenuItem{
		{Label: MenuPredict, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: predict.New(sess)}
			}
		}},
		{Label: MenuModel, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modelinfo.New(info)}
			}
		}},
		{Label: MenuExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		info: info,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Student Performance Dashboard"))
	sections = append(sections, h.renderCards(cw))
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, theme.Subtitle.Width(cw).Render(description))
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.View(buttonWidth)))

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) renderCards(cw int) string {
	const gap = 1
	colW := layout.ColumnWidth(cw, 3, gap)
	cards := []string{
		components.MetricCard("Model", h.info.Name, colW),
		components.MetricCard("Accuracy", h.info.AccuracyText(), colW),
		components.MetricCard("Status", Status, colW),
	}
	spacer := strings.Repeat(" ", gap)
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], spacer, cards[1], spacer, cards[2])
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints lists the dashboard keys.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
