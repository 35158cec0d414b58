package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/ui/theme"
)

// Selector cycles through a fixed set of integer choices with left/right.
type Selector struct {
	Choices  []int
	Selected int
	focused  bool
	invalid  bool
}

// NewSelector creates a selector positioned on the first choice.
func NewSelector(choices []int) Selector {
	return Selector{Choices: choices}
}

// Focus gives the selector keyboard focus.
func (s *Selector) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *Selector) Blur() { s.focused = false }

// Focused reports whether the selector has focus.
func (s Selector) Focused() bool { return s.focused }

// Update handles left/right (and h/l) when focused. Digit keys jump to a
// matching choice.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.Choices) == 0 {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		s.Selected = (s.Selected - 1 + len(s.Choices)) % len(s.Choices)
	case "right", "l", "space", " ":
		s.Selected = (s.Selected + 1) % len(s.Choices)
	default:
		if n, err := strconv.Atoi(key); err == nil {
			for i, c := range s.Choices {
				if c == n {
					s.Selected = i
				}
			}
		}
	}
	return s, nil
}

// Value returns the selected choice.
func (s Selector) Value() int {
	if len(s.Choices) == 0 {
		return 0
	}
	return s.Choices[s.Selected]
}

// SetValue selects v if it is one of the choices.
func (s *Selector) SetValue(v int) {
	for i, c := range s.Choices {
		if c == v {
			s.Selected = i
			return
		}
	}
}

// SetInvalid marks the selector as rejected by validation.
func (s *Selector) SetInvalid(invalid bool) {
	s.invalid = invalid
}

// View renders "‹ 1 ›" with the current choice.
func (s Selector) View() string {
	value := strconv.Itoa(s.Value())
	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := theme.Unselected
	if s.focused {
		arrows = arrows.Foreground(theme.Primary)
		val = theme.Selected
	}
	view := arrows.Render("‹ ") + val.Render(value) + arrows.Render(" ›")
	if s.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}
