// Package session holds the state of one interactive prediction session.
// A session lives for one run of the program and is never persisted.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/features"
)

// View is the screen the session is currently showing.
type View int

const (
	ViewForm   View = iota // Collecting input
	ViewResult             // Showing a prediction
)

func (v View) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewResult:
		return "result"
	default:
		return "unknown"
	}
}

// ErrResultShowing is returned by Submit while a result is displayed.
// Callers must Reset first.
var ErrResultShowing = errors.New("session: result is showing, reset before submitting again")

// Predictor produces a label for raw input. *inference.Pipeline satisfies it.
type Predictor interface {
	Predict(ctx context.Context, fs features.Fields) (backend.Label, error)
}

// Stats counts what happened during a session.
type Stats struct {
	Submissions int // Submit calls accepted in the form view
	Predictions int // Submissions that produced a label
	Rejections  int // Submissions refused for invalid or missing input
	Failures    int // Submissions where the backend failed
}

// Session is the Form/Result state machine. It is not safe for concurrent
// use; callers submit one request at a time.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// StartTime is when the session began.
	StartTime time.Time

	predictor Predictor
	logger    *slog.Logger

	view  View
	label backend.Label
	stats Stats
}

// New starts a session in the form view.
func New(p Predictor, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		ID:        uuid.New().String(),
		StartTime: time.Now(),
		predictor: p,
		logger:    logger,
		view:      ViewForm,
	}
	s.logger.Info("session started", "session_id", s.ID)
	return s
}

// View returns the current view.
func (s *Session) View() View { return s.view }

// LastPrediction returns the label on display. ok is false in the form view.
func (s *Session) LastPrediction() (label backend.Label, ok bool) {
	if s.view != ViewResult {
		return "", false
	}
	return s.label, true
}

// Stats returns the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Submit runs a prediction. On success the session moves to the result
// view. On any error it stays in the form view and the error is returned
// unchanged: features.ValidationErrors, *features.MissingFieldError or
// *backend.Error.
func (s *Session) Submit(ctx context.Context, fs features.Fields) (backend.Label, error) {
	if s.view == ViewResult {
		return "", ErrResultShowing
	}
	s.stats.Submissions++

	label, err := s.predictor.Predict(backend.WithSessionID(ctx, s.ID), fs)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			s.stats.Failures++
			s.logger.Error("prediction failed", "session_id", s.ID, "backend", be.Backend, "error", be.Err)
		} else {
			s.stats.Rejections++
			s.logger.Debug("input rejected", "session_id", s.ID, "error", err)
		}
		return "", err
	}

	s.stats.Predictions++
	s.view = ViewResult
	s.label = label
	return label, nil
}

// Reset returns to an empty form. It is valid in either view.
func (s *Session) Reset() {
	s.view = ViewForm
	s.label = ""
}

// Close logs the end of the session.
func (s *Session) Close() {
	s.logger.Info("session ended",
		"session_id", s.ID,
		"duration", time.Since(s.StartTime).Round(time.Millisecond),
		"submissions", s.stats.Submissions,
		"predictions", s.stats.Predictions,
		"rejections", s.stats.Rejections,
		"failures", s.stats.Failures,
	)
}
