package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the backend request log",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent backend requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryBackendRequests(cmd.Context(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		printEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

func init() {
	eventsListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	eventsListCmd.Flags().String("session", "", "Only show events from this session ID")
	eventsCmd.AddCommand(eventsListCmd)
}

func printEvents(w io.Writer, events []store.BackendRequestEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No backend requests found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-8s  %-8s  %-28s  %-7s  %s\n",
		"ID", "Timestamp", "Session", "Backend", "Model", "Ms", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗ " + e.ErrorMessage
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-8s  %-8s  %-28s  %-7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			truncate(e.SessionID, 8),
			e.Backend,
			truncate(e.Model, 28),
			e.LatencyMs,
			ok,
		)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
