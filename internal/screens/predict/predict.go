// Package predict is the student performance screen: a 14-field form and
// the prediction it produces.
package predict

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/features"
	"github.com/abhisek/gradecast/internal/screen"
	"github.com/abhisek/gradecast/internal/session"
	"github.com/abhisek/gradecast/internal/ui/components"
	"github.com/abhisek/gradecast/internal/ui/layout"
)

// predictionMsg carries the outcome of a Submit back to the update loop.
type predictionMsg struct {
	label backend.Label
	err   error
}

// input is one form control bound to a feature.
type input struct {
	spec features.Spec
	text components.TextInput // continuous and integer fields
	sel  components.Selector  // enum fields
}

func (in *input) isEnum() bool { return in.spec.Kind == features.KindEnum }

func (in *input) focus() tea.Cmd {
	if in.isEnum() {
		in.sel.Focus()
		return nil
	}
	return in.text.Focus()
}

func (in *input) blur() {
	if in.isEnum() {
		in.sel.Blur()
		return
	}
	in.text.Blur()
}

func (in *input) setInvalid(invalid bool) {
	if in.isEnum() {
		in.sel.SetInvalid(invalid)
		return
	}
	in.text.SetInvalid(invalid)
}

// Screen is the form/result screen. The result is shown while the
// session is in its result view.
type Screen struct {
	session *session.Session
	inputs  []input
	focus   int // index into inputs; len(inputs) is the submit button

	busy       bool
	showResult bool
	label      backend.Label
	messages   []string
}

var _ screen.Screen = (*Screen)(nil)

// New builds the form for sess. Numeric fields start at the bottom of
// their range and selectors at their first choice.
func New(sess *session.Session) *Screen {
	s := &Screen{session: sess}
	for _, spec := range features.Specs() {
		in := input{spec: spec}
		if spec.Kind == features.KindEnum {
			in.sel = components.NewSelector(spec.Choices)
		} else {
			in.text = components.NewTextInput(spec.Domain(), true, 8)
			in.text.SetValue(strconv.FormatFloat(spec.Min, 'f', -1, 64))
		}
		s.inputs = append(s.inputs, in)
	}

	if label, ok := sess.LastPrediction(); ok {
		s.showResult = true
		s.label = label
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.inputs[0].focus()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case predictionMsg:
		return s, s.handlePrediction(msg)
	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if s.showResult {
			switch msg.String() {
			case "enter", "b":
				s.backToForm()
			}
			return s, nil
		}
		return s, s.handleFormKey(msg)
	}
	return s, nil
}

func (s *Screen) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return s.moveFocus(1)
	case "shift+tab", "up":
		return s.moveFocus(-1)
	case "enter":
		return s.submit()
	}

	if s.focus >= len(s.inputs) {
		return nil
	}
	in := &s.inputs[s.focus]
	var cmd tea.Cmd
	if in.isEnum() {
		in.sel, cmd = in.sel.Update(msg)
	} else {
		in.text, cmd = in.text.Update(msg)
	}
	return cmd
}

func (s *Screen) moveFocus(delta int) tea.Cmd {
	if s.focus < len(s.inputs) {
		s.inputs[s.focus].blur()
	}
	n := len(s.inputs) + 1
	s.focus = (s.focus + delta + n) % n
	if s.focus < len(s.inputs) {
		return s.inputs[s.focus].focus()
	}
	return nil
}

// Fields collects the form values. Blank numeric inputs are left out so
// the builder can report them; text that is not a number becomes a
// validation message.
func (s *Screen) Fields() (features.Fields, error) {
	raw := make(map[string]string, len(s.inputs))
	fs := make(features.Fields, len(s.inputs))
	for _, in := range s.inputs {
		if in.isEnum() {
			fs[in.spec.Field] = float64(in.sel.Value())
			continue
		}
		raw[in.spec.Name] = in.text.Value()
	}
	parsed, err := features.ParseFields(raw)
	for f, v := range parsed {
		fs[f] = v
	}
	return fs, err
}

func (s *Screen) submit() tea.Cmd {
	for i := range s.inputs {
		s.inputs[i].setInvalid(false)
	}

	fs, err := s.Fields()
	if err != nil {
		s.showErrors(err)
		return nil
	}

	s.busy = true
	s.messages = nil
	sess := s.session
	return func() tea.Msg {
		label, err := sess.Submit(context.Background(), fs)
		return predictionMsg{label: label, err: err}
	}
}

func (s *Screen) handlePrediction(msg predictionMsg) tea.Cmd {
	s.busy = false
	if msg.err != nil {
		s.showErrors(msg.err)
		return nil
	}
	s.showResult = true
	s.label = msg.label
	s.messages = nil
	return nil
}

func (s *Screen) showErrors(err error) {
	var verrs features.ValidationErrors
	var missing *features.MissingFieldError
	var be *backend.Error

	switch {
	case errors.As(err, &verrs):
		s.messages = verrs.Messages()
		for i := range s.inputs {
			s.inputs[i].setInvalid(verrs.Has(s.inputs[i].spec.Field))
		}
	case errors.As(err, &missing):
		s.messages = nil
		for _, f := range missing.Fields {
			s.messages = append(s.messages, fmt.Sprintf("%s is required.", f.Label()))
			s.inputs[f].setInvalid(true)
		}
	case errors.As(err, &be):
		s.messages = []string{"Prediction failed: " + be.Err.Error()}
	default:
		s.messages = []string{err.Error()}
	}
}

func (s *Screen) backToForm() {
	s.session.Reset()
	s.showResult = false
	s.label = ""
	s.messages = nil
}

func (s *Screen) View(width, height int) string {
	if s.showResult {
		return s.viewResult(width, height)
	}
	return s.viewForm(width, height)
}

func (s *Screen) Title() string {
	if s.showResult {
		return "Final Grade Prediction"
	}
	return "Student Performance Prediction"
}

// KeyHints lists the keys for the current view.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.showResult {
		return []layout.KeyHint{
			{Key: "Enter/b", Description: "Back to Form"},
			{Key: "Esc", Description: "Home"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change choice"},
		{Key: "Enter", Description: "Predict"},
		{Key: "Esc", Description: "Home"},
	}
}

// Messages returns the validation or failure messages on display.
func (s *Screen) Messages() []string { return s.messages }

// Label returns the prediction on display, if any.
func (s *Screen) Label() (backend.Label, bool) { return s.label, s.showResult }

// Busy reports whether a prediction is in flight.
func (s *Screen) Busy() bool { return s.busy }
