package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/backend"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show information about the loaded model",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		printModelInfo(cmd.OutOrStdout(), rt.pipeline.BackendName(), rt.pipeline.Info())
		return nil
	},
}

func printModelInfo(w io.Writer, backendName string, info backend.ModelInfo) {
	fmt.Fprintf(w, "Backend:             %s\n", backendName)
	fmt.Fprintf(w, "Model Name:          %s\n", info.Name)
	fmt.Fprintf(w, "Algorithm:           %s\n", info.Algorithm)
	fmt.Fprintf(w, "Validation Accuracy: %s\n", info.AccuracyText())
	fmt.Fprintf(w, "Grade Classes:       %s\n", strings.Join(info.Classes, ", "))
}
