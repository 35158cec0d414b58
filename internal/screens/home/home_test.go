package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/inference"
	"github.com/abhisek/gradecast/internal/router"
	"github.com/abhisek/gradecast/internal/screens/modelinfo"
	"github.com/abhisek/gradecast/internal/screens/predict"
	"github.com/abhisek/gradecast/internal/session"
)

func testInfo() backend.ModelInfo {
	return backend.ModelInfo{
		Name:      "Random Forest Classifier",
		Algorithm: "Random Forest",
		Accuracy:  0.87,
		Classes:   []string{"0", "1", "2", "3", "4"},
	}
}

func newTestHome() *HomeScreen {
	sess := session.New(inference.New(backend.NewStub("1")), nil)
	return New(sess, testInfo())
}

func TestHome_ViewShowsCards(t *testing.T) {
	view := newTestHome().View(120, 34)
	for _, want := range []string{"Random Forest Classifier", "87.00%", Status, MenuPredict, MenuModel, MenuExit} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHome_EnterPushesPredict(t *testing.T) {
	h := newTestHome()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*predict.Screen); !ok {
		t.Errorf("pushed %T", push.Screen)
	}
}

func TestHome_ModelInformation(t *testing.T) {
	h := newTestHome()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*modelinfo.ModelInfoScreen); !ok {
		t.Errorf("pushed %T", push.Screen)
	}
}

func TestHome_Exit(t *testing.T) {
	h := newTestHome()
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
