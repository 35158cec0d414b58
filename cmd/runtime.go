package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/backend"
	"github.com/abhisek/gradecast/internal/config"
	"github.com/abhisek/gradecast/internal/inference"
	"github.com/abhisek/gradecast/internal/logging"
	"github.com/abhisek/gradecast/internal/store"
)

// runtime is everything a prediction command needs, opened in order and
// released by Close.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	pipeline *inference.Pipeline

	closers []io.Closer
}

// openRuntime loads config, sets up logging, opens the request log and
// loads the backend. A backend that fails to load is fatal.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	rt := &runtime{cfg: cfg}

	logger, logFile, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}
	rt.logger = logger
	rt.closers = append(rt.closers, logFile)

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.store = st
	rt.closers = append(rt.closers, st)

	b, err := backend.Open(cmd.Context(), cfg.Model, st.EventRepo(), logger)
	if err != nil {
		logger.Error("backend failed to load", "backend", cfg.Model.Kind, "error", err)
		rt.Close()
		return nil, err
	}
	rt.pipeline = inference.New(b, inference.WithTimeout(cfg.Model.Timeout))
	return rt, nil
}

// Close releases resources in reverse order.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		_ = rt.closers[i].Close()
	}
	rt.closers = nil
}
