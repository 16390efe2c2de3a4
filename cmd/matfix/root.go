package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/my-pwa-apps/matfix/cmd/matfix/commands"
	"github.com/my-pwa-apps/matfix/cmd/matfix/opts"
	"github.com/my-pwa-apps/matfix/pkg/config"
	"github.com/my-pwa-apps/matfix/pkg/status"
	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

var (
	// Flags
	configFile   string
	debugEnabled bool
	dryRun       bool
	backup       bool
	async        bool
)

// newRootCmd creates the matfix root command
func newRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:          "matfix",
		Short:        "Remove unsupported material properties from HTML scene files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := zerolog.Ctx(cmd.Context()).WithContext(cmd.Context())

			// Load config
			cfg, err := config.LoadOrDefault(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			// Flags override the config file
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debugEnabled
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun = dryRun
			}
			if cmd.Flags().Changed("backup") {
				cfg.Backup = backup
			}
			if cmd.Flags().Changed("async") {
				cfg.Async = async
			}
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			// Create stripper with the fixed rule set
			s, err := stripper.New(stripper.DefaultRules())
			if err != nil {
				return errors.Errorf("creating stripper: %w", err)
			}

			ro.Config = cfg
			ro.Stripper = s
			ro.UserLogger = status.NewUserLogger(ctx).WithWriter(cmd.OutOrStdout())
			ro.Formatter = status.NewDefaultFileFormatter()

			cmd.SetContext(ctx)
			return nil
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(commands.NewFixCmd(ro))
	cmd.AddCommand(commands.NewCheckCmd(ro))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".matfix.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debugEnabled, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "process without writing the file back")
	cmd.PersistentFlags().BoolVar(&backup, "backup", false, "write a .orig copy before overwriting")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run the operation asynchronously")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugEnabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
