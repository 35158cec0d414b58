package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	SessionID string    // exact match when set
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
}

// BackendRequestEventData captures one call to a model backend.
// Inputs and predicted labels are deliberately not part of the event.
type BackendRequestEventData struct {
	SessionID    string
	Backend      string
	Model        string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// BackendRequestEvent is a stored BackendRequestEventData.
type BackendRequestEvent struct {
	ID        int64
	Timestamp time.Time
	BackendRequestEventData
}

// EventRepo provides append and query access to backend request events.
type EventRepo interface {
	// AppendBackendRequest records a model backend call.
	AppendBackendRequest(ctx context.Context, data BackendRequestEventData) error

	// QueryBackendRequests returns events, newest first.
	QueryBackendRequests(ctx context.Context, opts QueryOpts) ([]BackendRequestEvent, error)
}
