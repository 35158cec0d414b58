package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/app"
	"github.com/abhisek/gradecast/internal/session"
)

// runApp loads the backend and launches the TUI with a fresh session.
func runApp(cmd *cobra.Command) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	sess := session.New(rt.pipeline, rt.logger)
	defer sess.Close()

	return app.Run(app.Options{
		Session: sess,
		Info:    rt.pipeline.Info(),
		Backend: rt.pipeline.BackendName(),
	})
}
