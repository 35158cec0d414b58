package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo with plain SQL.
type eventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendBackendRequest(ctx context.Context, data BackendRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO backend_requests
			(timestamp, session_id, backend, model, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.clock().UTC().Format(time.RFC3339Nano),
		data.SessionID,
		data.Backend,
		data.Model,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save backend request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBackendRequests(ctx context.Context, opts QueryOpts) ([]BackendRequestEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.SessionID != "" {
		where = append(where, "session_id = ?")
		args = append(args, opts.SessionID)
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC().Format(time.RFC3339Nano))
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UTC().Format(time.RFC3339Nano))
	}

	q := `SELECT id, timestamp, session_id, backend, model, latency_ms, success, error_message
		FROM backend_requests`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query backend request events: %w", err)
	}
	defer rows.Close()

	var out []BackendRequestEvent
	for rows.Next() {
		var (
			e  BackendRequestEvent
			ts string
		)
		if err := rows.Scan(&e.ID, &ts, &e.SessionID, &e.Backend, &e.Model, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan backend request event: %w", err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
