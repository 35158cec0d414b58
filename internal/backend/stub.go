package backend

import (
	"context"
	"sync"

	"github.com/abhisek/gradecast/internal/features"
)

// Stub is a deterministic Backend for tests. It always answers with Label
// (or Err) and records every record it was asked to classify.
type Stub struct {
	Label Label
	Err   error
	Model ModelInfo

	mu    sync.Mutex
	calls []features.Record
}

var _ Backend = (*Stub)(nil)

// NewStub returns a Stub that always predicts label.
func NewStub(label Label) *Stub {
	return &Stub{
		Label: label,
		Model: ModelInfo{Name: "Stub", Algorithm: "Constant", Classes: []string{string(label)}},
	}
}

func (s *Stub) Predict(_ context.Context, rec features.Record) (Label, error) {
	s.mu.Lock()
	s.calls = append(s.calls, rec)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Label, nil
}

func (s *Stub) Info() ModelInfo { return s.Model }

// Calls returns the records seen so far.
func (s *Stub) Calls() []features.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]features.Record, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of Predict calls.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
