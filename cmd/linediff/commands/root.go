package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"linediff/internal/app"
	"linediff/internal/config"
)

var (
	verbose bool
	envFile string

	logger *zap.Logger
	cfg    *config.Config
	wire   *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "linediff",
		Short: "Compare two line-oriented text files and export the differences",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}

			cfg, err = config.Load(envFile)
			if err != nil {
				return err
			}

			wire = app.NewWire(app.Config{Logger: logger})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file with LINEDIFF_* defaults")

	root.AddCommand(compareCmd(), renderCmd())
	return root.Execute()
}
