package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gradecast/internal/backend"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GRADECAST_BACKEND", "GRADECAST_MODEL_PATH", "GRADECAST_REMOTE_URL",
		"GRADECAST_DB", "GRADECAST_LOG_LEVEL", "GRADECAST_LOG_FILE",
		"GRADECAST_MODEL_TIMEOUT", "GRADECAST_LLM_PROVIDER",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, backend.KindForest, cfg.Model.Kind)
	assert.Equal(t, backend.DefaultModelPath, cfg.Model.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.DB)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  backend: remote
  url: http://localhost:5001/invocations
  timeout: 5s
  classes: ["A", "B", "C", "D", "F"]
  llm:
    provider: openai
    openai:
      model: gpt-4o
db: /tmp/gradecast.db
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, backend.KindRemote, cfg.Model.Kind)
	assert.Equal(t, "http://localhost:5001/invocations", cfg.Model.URL)
	assert.Equal(t, 5*time.Second, cfg.Model.Timeout)
	assert.Equal(t, []string{"A", "B", "C", "D", "F"}, cfg.Model.Classes)
	assert.Equal(t, "openai", cfg.Model.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model.LLM.OpenAI.Model)
	assert.Equal(t, "/tmp/gradecast.db", cfg.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, backend.DefaultModelPath, cfg.Model.Path)
}

func TestLoad_DefaultPathFile(t *testing.T) {
	clearEnv(t)
	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRADECAST_BACKEND", "llm")
	t.Setenv("GRADECAST_MODEL_PATH", "/models/rf.json")
	t.Setenv("GRADECAST_DB", "/data/g.db")
	t.Setenv("GRADECAST_LOG_LEVEL", "error")
	t.Setenv("GRADECAST_MODEL_TIMEOUT", "2s")
	t.Setenv("GRADECAST_LLM_PROVIDER", "gemini")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "llm", cfg.Model.Kind)
	assert.Equal(t, "/models/rf.json", cfg.Model.Path)
	assert.Equal(t, "/data/g.db", cfg.DB)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Model.Timeout)
	assert.Equal(t, "gemini", cfg.Model.LLM.Provider)
}

func TestApplyEnv_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRADECAST_MODEL_TIMEOUT", "soon")
	assert.Error(t, Default().ApplyEnv())
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "gradecast", "config.yaml"), path)
}
