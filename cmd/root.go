package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/config"
	"github.com/abhisek/gradecast/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gradecast",
	Short: "Student final grade prediction dashboard",
	Long: "gradecast predicts a student's final grade class from study, engagement,\n" +
		"academic and wellbeing indicators using a trained tree-ensemble model.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/gradecast/config.yaml)")
	flags.String("db", "", "Path to SQLite database file (overrides GRADECAST_DB env var)")
	flags.String("model", "", "Path to the exported forest artifact (overrides GRADECAST_MODEL_PATH)")
	flags.String("backend", "", "Model backend: forest, llm or remote (overrides GRADECAST_BACKEND)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies flags.
// Flags win over both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DB = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.Model.Path = v
	}
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Model.Kind = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, then GRADECAST_DB,
// then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}
