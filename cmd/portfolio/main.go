package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dixanta.dev/internal/config"
	"dixanta.dev/internal/logging"
)

// app carries what every subcommand needs once the root has run
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	dataDir  string
	logLevel string
	dev      bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve and maintain the portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data") {
				cfg.DataPath = a.dataDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			if cmd.Flags().Changed("dev") {
				cfg.Dev = a.dev
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, cfg.Dev)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.dataDir, "data", "d", "data", "Directory holding projects, about and skills data files (env PORTFOLIO_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error (env PORTFOLIO_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&a.dev, "dev", false, "Human-readable development logging (env PORTFOLIO_DEV)")

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newSlugCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newSitemapCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
