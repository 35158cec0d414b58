package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/gradecast/internal/features"
	"github.com/abhisek/gradecast/internal/store"
)

// LoggingBackend records one event per Predict call. Inputs and labels
// are never recorded.
type LoggingBackend struct {
	inner  Backend
	name   string
	repo   store.EventRepo
	logger *slog.Logger
}

var _ Backend = (*LoggingBackend)(nil)

// WithLogging wraps b. A nil repo disables event recording; a nil logger
// uses slog.Default.
func WithLogging(b Backend, name string, repo store.EventRepo, logger *slog.Logger) *LoggingBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingBackend{inner: b, name: name, repo: repo, logger: logger}
}

func (l *LoggingBackend) Predict(ctx context.Context, rec features.Record) (Label, error) {
	start := time.Now()
	label, err := l.inner.Predict(ctx, rec)
	latency := time.Since(start)

	data := store.BackendRequestEventData{
		SessionID: SessionIDFrom(ctx),
		Backend:   l.name,
		Model:     l.inner.Info().Name,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("backend request failed",
			"backend", l.name,
			"model", data.Model,
			"latency_ms", data.LatencyMs,
			"error", err,
		)
	} else {
		l.logger.Debug("backend request",
			"backend", l.name,
			"model", data.Model,
			"latency_ms", data.LatencyMs,
		)
	}

	if l.repo != nil {
		// A cancelled request still deserves its event.
		if logErr := l.repo.AppendBackendRequest(context.WithoutCancel(ctx), data); logErr != nil {
			l.logger.Warn("record backend request", "error", logErr)
		}
	}

	return label, err
}

func (l *LoggingBackend) Info() ModelInfo { return l.inner.Info() }

// Name returns the configured backend kind, e.g. "forest".
func (l *LoggingBackend) Name() string { return l.name }
