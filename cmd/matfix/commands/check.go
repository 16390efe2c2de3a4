package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/my-pwa-apps/matfix/cmd/matfix/opts"
	"github.com/my-pwa-apps/matfix/pkg/operation"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report unsupported material properties without fixing them",
		Long: `Check runs the strip pipeline in memory and reports what a fix run
would remove. The file on disk is never written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) > 0 {
				opts.Config.File = args[0]
			}

			// Create operator
			op, err := operation.New(operation.Options{
				Config:   opts.Config,
				Stripper: opts.Stripper,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			// Run check
			result, err := op.Check(ctx)
			if err != nil {
				return errors.Errorf("checking file: %w", err)
			}

			// WasModified alone also covers normalization-only rewrites,
			// so the property headline keys off the removal count.
			out := cmd.OutOrStdout()
			switch {
			case result.RemovedCount > 0:
				fmt.Fprintln(out, opts.Formatter.FormatCheckResult(opts.Config.File, true, result.RemovedCount))
			case result.WasModified:
				fmt.Fprintln(out, opts.Formatter.FormatArtifactsOnly(opts.Config.File))
			default:
				fmt.Fprintln(out, opts.Formatter.FormatCheckResult(opts.Config.File, false, 0))
			}
			for _, property := range opts.Stripper.Properties() {
				if count := result.RemovedByProperty[property]; count > 0 {
					fmt.Fprintln(out, opts.Formatter.FormatPropertyCount(property, count))
				}
			}

			return nil
		},
	}

	return cmd
}
