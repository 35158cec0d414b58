package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradecast/internal/features"
	"github.com/abhisek/gradecast/internal/session"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the final grade class for one student",
	Long: "Predict the final grade class for one student. Every feature flag is\n" +
		"required; all invalid values are reported together.",
	Example: "  gradecast predict --study-hours 5 --attendance 90 --resources 1 --extracurricular 1 \\\n" +
		"    --motivation 2 --internet 1 --gender 0 --age 20 --learning-style 1 \\\n" +
		"    --online-courses 3 --discussions 1 --assignment-completion 85 --edutech 1 --stress-level 0",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := make(map[string]string, features.NumFields)
		for _, spec := range features.Specs() {
			if v, _ := cmd.Flags().GetString(spec.Flag); v != "" {
				raw[spec.Name] = v
			}
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		sess := session.New(rt.pipeline, rt.logger)
		defer sess.Close()

		return runPredict(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), sess, raw)
	},
}

func init() {
	for _, spec := range features.Specs() {
		predictCmd.Flags().String(spec.Flag, "", fmt.Sprintf("%s (%s)", spec.Label, spec.Domain()))
	}
}

// errInvalidInput is returned after the validation messages are printed so
// the process exits non-zero without repeating them.
var errInvalidInput = errors.New("invalid input")

// runPredict submits raw through sess and prints the label to out, or every
// message to errOut.
func runPredict(ctx context.Context, out, errOut io.Writer, sess *session.Session, raw map[string]string) error {
	fs, err := features.ParseFields(raw)
	if err == nil {
		_, err = sess.Submit(ctx, fs)
	}
	if err == nil {
		label, _ := sess.LastPrediction()
		fmt.Fprintf(out, "Predicted Final Grade Class: %s\n", label)
		return nil
	}

	var verrs features.ValidationErrors
	var missing *features.MissingFieldError
	switch {
	case errors.As(err, &verrs):
		for _, m := range verrs.Messages() {
			fmt.Fprintln(errOut, m)
		}
		return errInvalidInput
	case errors.As(err, &missing):
		for _, f := range missing.Fields {
			fmt.Fprintf(errOut, "--%s is required.\n", f.Spec().Flag)
		}
		return errInvalidInput
	default:
		return err
	}
}
