// Package inference turns raw form input into a predicted grade class:
// validate, build the canonical record, call the backend.
package inference

import (
	"context"
	"time"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/features"
)

// Pipeline validates input and forwards it to a single backend.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	backend backend.Backend
	name    string
	timeout time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout bounds each backend call. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// WithName sets the backend name carried by backend errors.
func WithName(name string) Option {
	return func(p *Pipeline) { p.name = name }
}

// New creates a Pipeline over b.
func New(b backend.Backend, opts ...Option) *Pipeline {
	p := &Pipeline{backend: b, name: "model"}
	if n, ok := b.(interface{ Name() string }); ok {
		p.name = n.Name()
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict returns the label for fs.
//
// Validation failures come back as features.ValidationErrors and missing
// fields as *features.MissingFieldError; in both cases the backend is not
// called. A backend failure is returned as *backend.Error and is never
// retried.
func (p *Pipeline) Predict(ctx context.Context, fs features.Fields) (backend.Label, error) {
	if err := features.Validate(fs); err != nil {
		return "", err
	}
	rec, err := features.Build(fs)
	if err != nil {
		return "", err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	label, err := p.backend.Predict(ctx, rec)
	if err != nil {
		return "", &backend.Error{Backend: p.name, Err: err}
	}
	return label, nil
}

// Info describes the model behind the pipeline.
func (p *Pipeline) Info() backend.ModelInfo {
	return p.backend.Info()
}

// BackendName returns the name used in backend errors.
func (p *Pipeline) BackendName() string {
	return p.name
}
