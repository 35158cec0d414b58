package modelinfo

import (
	"strings"
	"testing"

	"github.com/abhisek/gradecast/internal/backend"
)

func TestModelInfo_View(t *testing.T) {
	s := New(backend.ModelInfo{
		Name:      "Random Forest Classifier",
		Algorithm: "Random Forest",
		Accuracy:  0.87,
		Classes:   []string{"0", "1", "2", "3", "4"},
	})
	view := s.View(100, 40)
	for _, want := range []string{"Random Forest Classifier", "Random Forest", "87.00%", "0, 1, 2, 3, 4", "Study Hours", "18-30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if s.Title() != "Model Information" {
		t.Errorf("Title = %q", s.Title())
	}
}
