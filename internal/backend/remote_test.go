package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gradecast/internal/features"
)

func TestRemote_Predict(t *testing.T) {
	var got scoringRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/invocations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions": [2.0]}`))
	}))
	defer srv.Close()

	b := NewRemote(srv.URL+"/invocations", srv.Client(), 0, nil)
	label, err := b.Predict(context.Background(), record(t, nil))
	require.NoError(t, err)
	assert.Equal(t, Label("2"), label)

	assert.Equal(t, features.Columns(), got.DataframeSplit.Columns)
	require.Len(t, got.DataframeSplit.Data, 1)
	assert.Equal(t, []float64{5, 90, 1, 1, 2, 1, 0, 20, 1, 3, 1, 85, 1, 0}, got.DataframeSplit.Data[0])
}

func TestRemote_StringLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions": ["B"]}`))
	}))
	defer srv.Close()

	label, err := NewRemote(srv.URL, srv.Client(), 0, nil).Predict(context.Background(), record(t, nil))
	require.NoError(t, err)
	assert.Equal(t, Label("B"), label)
}

func TestRemote_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"server error", http.StatusInternalServerError, `{"error": "boom"}`, "500"},
		{"not json", http.StatusOK, `<html>`, "decode response"},
		{"no predictions", http.StatusOK, `{"predictions": []}`, "expected 1 prediction"},
		{"object prediction", http.StatusOK, `{"predictions": [{"x": 1}]}`, "neither a string nor a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewRemote(srv.URL, srv.Client(), 0, nil).Predict(context.Background(), record(t, nil))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRemote_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	b := NewRemote(srv.URL, nil, 50*time.Millisecond, nil)
	_, err := b.Predict(context.Background(), record(t, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scoring request")
	assert.Equal(t, DefaultClasses, b.Info().Classes)
}
