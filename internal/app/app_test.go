package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/inference"
	"github.com/abhisek/gradecast/internal/router"
	"github.com/abhisek/gradecast/internal/session"
)

func testModel() AppModel {
	sess := session.New(inference.New(backend.NewStub("1")), nil)
	return newAppModel(Options{
		Session: sess,
		Info:    backend.ModelInfo{Name: "Random Forest Classifier", Algorithm: "Random Forest", Accuracy: 0.87},
		Backend: "forest",
	})
}

func sized(t *testing.T, m AppModel, w, h int) AppModel {
	t.Helper()
	out, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return out.(AppModel)
}

func TestView_TooSmall(t *testing.T) {
	m := sized(t, testModel(), 40, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected minimum size message")
	}
}

func TestView_HeaderShowsBackend(t *testing.T) {
	m := sized(t, testModel(), 120, 40)
	content := m.render()
	for _, want := range []string{"gradecast", "Home", "forest"} {
		if !strings.Contains(content, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestUpdate_NavigatesAndBacksOut(t *testing.T) {
	m := sized(t, testModel(), 120, 40)

	out, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = out.(AppModel)
	out, _ = m.Update(cmd())
	m = out.(AppModel)
	if got := m.router.Active().Title(); got != "Student Performance Prediction" {
		t.Fatalf("active screen = %q", got)
	}

	out, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = out.(AppModel)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
	out, _ = m.Update(router.PopScreenMsg{})
	m = out.(AppModel)
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d", m.router.Depth())
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	_, cmd := testModel().Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
