// Package backend defines the model backend capability and its concrete
// implementations. A backend is loaded once at startup and is read-only
// afterwards.
package backend

import (
	"context"
	"fmt"

	"github.com/abhisek/gradecast/internal/features"
)

// Label is the predicted grade class. It is opaque to the rest of the system.
type Label string

// ModelInfo describes the loaded model for display.
type ModelInfo struct {
	Name      string
	Algorithm string
	Accuracy  float64 // Validation accuracy in [0,1]; zero when unknown
	Classes   []string
}

// AccuracyText formats the accuracy as a percentage, e.g. "87.00%".
func (m ModelInfo) AccuracyText() string {
	if m.Accuracy <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", m.Accuracy*100)
}

// Backend produces a label for a single feature record.
type Backend interface {
	// Predict classifies rec. Implementations must not mutate shared state.
	Predict(ctx context.Context, rec features.Record) (Label, error)

	// Info describes the model.
	Info() ModelInfo
}

// Error reports that a backend failed to produce a label. Callers do not
// retry it.
type Error struct {
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s backend: %v", e.Backend, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StartupError reports that no backend could be loaded. The process must
// not serve predictions after one.
type StartupError struct {
	Backend string
	Source  string // artifact path or endpoint
	Err     error
}

func (e *StartupError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("load %s backend from %s: %v", e.Backend, e.Source, e.Err)
	}
	return fmt.Sprintf("load %s backend: %v", e.Backend, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

type contextKey string

const sessionKey contextKey = "session_id"

// WithSessionID tags ctx with the session a prediction belongs to.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// SessionIDFrom returns the session tag, or "" when none is set.
func SessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}
