package backend

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/abhisek/gradecast/internal/llm"
	"github.com/abhisek/gradecast/internal/store"
)

// Backend kinds accepted by Config.Kind.
const (
	KindForest = "forest"
	KindLLM    = "llm"
	KindRemote = "remote"
)

// DefaultModelPath is where the exported forest artifact is expected.
const DefaultModelPath = "Models/best_rf_model.json"

// Config selects and configures the model backend.
type Config struct {
	Kind    string        `yaml:"backend"`
	Path    string        `yaml:"path"`    // forest artifact
	URL     string        `yaml:"url"`     // remote scoring endpoint
	Classes []string      `yaml:"classes"` // llm and remote label set
	Timeout time.Duration `yaml:"timeout"` // per prediction; zero means none

	LLM llm.Config `yaml:"llm"`
}

// DefaultConfig loads the forest artifact from DefaultModelPath.
func DefaultConfig() Config {
	return Config{
		Kind:    KindForest,
		Path:    DefaultModelPath,
		Classes: slices.Clone(DefaultClasses),
		Timeout: 30 * time.Second,
		LLM:     llm.DefaultConfig(),
	}
}

// Open builds the configured backend and wraps it with request logging.
// Every failure is a *StartupError.
func Open(ctx context.Context, cfg Config, repo store.EventRepo, logger *slog.Logger) (*LoggingBackend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		b   Backend
		err error
	)
	switch cfg.Kind {
	case KindForest, "":
		cfg.Kind = KindForest
		var f *Forest
		f, err = LoadForest(cfg.Path)
		if err == nil {
			logger.Info("loaded forest artifact", "path", cfg.Path, "trees", f.NumTrees())
			b = f
		}
	case KindLLM:
		llmCfg := cfg.LLM
		llmCfg.Discover()
		var p llm.Provider
		p, err = llm.NewProvider(ctx, llmCfg, logger)
		if err != nil {
			err = &StartupError{Backend: KindLLM, Source: llmCfg.Provider, Err: err}
		} else {
			b = NewLLM(p, cfg.Classes, llmCfg.MaxTokens)
		}
	case KindRemote:
		if cfg.URL == "" {
			err = &StartupError{Backend: KindRemote, Err: fmt.Errorf("no scoring url configured")}
		} else {
			b = NewRemote(cfg.URL, nil, cfg.Timeout, cfg.Classes)
		}
	default:
		err = &StartupError{Backend: cfg.Kind, Err: fmt.Errorf("unknown backend %q (want forest, llm or remote)", cfg.Kind)}
	}
	if err != nil {
		return nil, err
	}

	return WithLogging(b, cfg.Kind, repo, logger), nil
}
