package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/my-pwa-apps/matfix/cmd/matfix/opts"
	"github.com/my-pwa-apps/matfix/pkg/operation"
	"github.com/my-pwa-apps/matfix/pkg/status"
	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Strip unsupported material properties from a scene file",
		Long: `Fix removes material properties that non-PBR renderers reject.
It will:
1. Read the target file into memory
2. Strip metalness, roughness, emissive and emissiveIntensity entries
3. Normalize leftover whitespace and separators
4. Overwrite the file in place`,
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

			// Run fix
			runner := operation.NewRunner(zerolog.Ctx(ctx), opts.Config.Async)

			var result *stripper.Result
			fixOp := operation.OperationFunc(func(ctx context.Context) error {
				r, err := op.Fix(ctx)
				if err != nil {
					return errors.Errorf("fixing file: %w", err)
				}
				result = r
				return nil
			})

			if err := runner.Run(ctx, fixOp); err != nil {
				return err
			}

			// Report result
			if opts.Config.DryRun {
				opts.UserLogger.LogFileChange(status.FileChange{
					Type:         status.FileSkipped,
					Path:         opts.Config.File,
					RemovedCount: result.RemovedCount,
				})
				return nil
			}

			opts.UserLogger.LogCompletion(opts.Stripper.Properties())
			return nil
		},
	}

	return cmd
}
