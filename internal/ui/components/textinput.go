package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradecast/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with dashboard styling. In numeric mode
// it accepts digits, one decimal point and a leading minus sign.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	invalid     bool
}

// NewTextInput creates a blurred text input.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok && !t.acceptsKey(kmsg.String()) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) acceptsKey(key string) bool {
	if len(key) != 1 {
		return true // navigation and editing keys
	}
	c := key[0]
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.':
		return !strings.Contains(t.Model.Value(), ".")
	case c == '-':
		return t.Model.Position() == 0 && !strings.HasPrefix(t.Model.Value(), "-")
	default:
		return false
	}
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.invalid {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// SetInvalid marks the input as rejected by validation.
func (t *TextInput) SetInvalid(invalid bool) {
	t.invalid = invalid
}
