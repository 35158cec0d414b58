package inference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/features"
	"github.com/abhisek/gradecast/internal/llm"
)

func sample() features.Fields {
	return features.Fields{
		features.StudyHours:           5,
		features.Attendance:           90,
		features.Resources:            1,
		features.Extracurricular:      1,
		features.Motivation:           2,
		features.Internet:             1,
		features.Gender:               0,
		features.Age:                  20,
		features.LearningStyle:        1,
		features.OnlineCourses:        3,
		features.Discussions:          1,
		features.AssignmentCompletion: 85,
		features.EduTech:              1,
		features.StressLevel:          0,
	}
}

func TestPredict_SendsCanonicalRecord(t *testing.T) {
	stub := backend.NewStub("1")
	p := New(stub)

	label, err := p.Predict(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, backend.Label("1"), label)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []float64{5, 90, 1, 1, 2, 1, 0, 20, 1, 3, 1, 85, 1, 0}, calls[0].Values())
}

func TestPredict_ValidationSkipsBackend(t *testing.T) {
	stub := backend.NewStub("1")
	p := New(stub)

	fs := sample()
	fs[features.Age] = 31
	_, err := p.Predict(context.Background(), fs)

	var verrs features.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"Age must be 18-30."}, verrs.Messages())
	assert.Equal(t, 0, stub.CallCount())
}

func TestPredict_ReportsEveryViolation(t *testing.T) {
	stub := backend.NewStub("1")
	fs := sample()
	fs[features.Age] = 35
	fs[features.Attendance] = 150

	_, err := New(stub).Predict(context.Background(), fs)
	var verrs features.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Equal(t, 0, stub.CallCount())
}

func TestPredict_MissingFieldSkipsBackend(t *testing.T) {
	stub := backend.NewStub("1")
	fs := sample()
	delete(fs, features.Gender)

	_, err := New(stub).Predict(context.Background(), fs)
	var missing *features.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []features.Field{features.Gender}, missing.Fields)
	assert.Equal(t, 0, stub.CallCount())
}

func TestPredict_WrapsBackendFailure(t *testing.T) {
	cause := errors.New("feature shape mismatch")
	stub := backend.NewStub("1")
	stub.Err = cause

	_, err := New(stub, WithName("forest")).Predict(context.Background(), sample())
	var be *backend.Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "forest", be.Backend)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, stub.CallCount(), "backend failures are not retried")
}

func TestPredict_Idempotent(t *testing.T) {
	stub := backend.NewStub("2")
	p := New(stub)
	for range 3 {
		label, err := p.Predict(context.Background(), sample())
		require.NoError(t, err)
		assert.Equal(t, backend.Label("2"), label)
	}
	calls := stub.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, calls[0], calls[2])
}

type slowBackend struct{ backend.Stub }

func (s *slowBackend) Predict(ctx context.Context, _ features.Record) (backend.Label, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Second):
		return "0", nil
	}
}

func TestPredict_Timeout(t *testing.T) {
	p := New(&slowBackend{}, WithTimeout(20*time.Millisecond))
	_, err := p.Predict(context.Background(), sample())
	var be *backend.Error
	require.True(t, errors.As(err, &be))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// hangingProvider never answers until its context ends.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestPredict_TimeoutBoundsLLMBackend(t *testing.T) {
	b := backend.NewLLM(hangingProvider{}, backend.DefaultClasses, 0)
	p := New(b, WithTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := p.Predict(context.Background(), sample())
	var be *backend.Error
	require.True(t, errors.As(err, &be))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNew_UsesLoggingBackendName(t *testing.T) {
	b := backend.WithLogging(backend.NewStub("0"), "forest", nil, nil)
	assert.Equal(t, "forest", New(b).BackendName())
	assert.Equal(t, "model", New(backend.NewStub("0")).BackendName())
}
