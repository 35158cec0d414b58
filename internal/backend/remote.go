package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abhisek/gradecast/internal/features"
)

// Remote scores records against an MLflow-style HTTP endpoint
// (POST /invocations with a dataframe_split body).
type Remote struct {
	url    string
	client *http.Client
	info   ModelInfo
}

var _ Backend = (*Remote)(nil)

// NewRemote creates a client for url. A nil client uses one with timeout.
func NewRemote(url string, client *http.Client, timeout time.Duration, classes []string) *Remote {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if len(classes) == 0 {
		classes = DefaultClasses
	}
	return &Remote{
		url:    url,
		client: client,
		info:   ModelInfo{Name: url, Algorithm: "Remote scoring endpoint", Classes: classes},
	}
}

type dataframeSplit struct {
	Columns []string    `json:"columns"`
	Data    [][]float64 `json:"data"`
}

type scoringRequest struct {
	DataframeSplit dataframeSplit `json:"dataframe_split"`
}

type scoringResponse struct {
	Predictions []json.RawMessage `json:"predictions"`
}

func (r *Remote) Predict(ctx context.Context, rec features.Record) (Label, error) {
	body, err := json.Marshal(scoringRequest{DataframeSplit: dataframeSplit{
		Columns: features.Columns(),
		Data:    [][]float64{rec.Values()},
	}})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("scoring request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("scoring endpoint returned %s", resp.Status)
	}

	var out scoringResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Predictions) != 1 {
		return "", fmt.Errorf("expected 1 prediction, got %d", len(out.Predictions))
	}
	return parseLabel(out.Predictions[0])
}

// parseLabel accepts a JSON string or number. Whole numbers are rendered
// without a fraction so 2.0 and 2 both map to "2".
func parseLabel(raw json.RawMessage) (Label, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Label(s), nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("prediction %s is neither a string nor a number", raw)
	}
	return Label(formatValue(n)), nil
}

func (r *Remote) Info() ModelInfo {
	info := r.info
	info.Classes = append([]string(nil), r.info.Classes...)
	return info
}
