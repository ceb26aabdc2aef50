package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menyqr-app/config"
	"menyqr-app/internal/logging"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

type configLoader func() (*config.Config, error)

// NewRootCmd creates the menyqr command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Load)
}

func newRootCmd(load configLoader) *cobra.Command {
	a := &app{}
	var logLevel string

	root := &cobra.Command{
		Use:   "menyqr",
		Short: "MenyQR restaurant dashboard and public menus",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			log, err := logging.New(cfg.Logging)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")

	serve := newServeCmd(a)
	root.RunE = serve.RunE
	root.AddCommand(
		serve,
		newMigrateCmd(a),
		newSeedCmd(a),
		newTokenCmd(a),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
