package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/backend"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "gradecast", version)
		fmt.Fprintf(cmd.OutOrStdout(), "model artifact format %s.x\n", backend.ForestFormatMajor)
	},
}
