package cmd

import (
	"fmt"

	"github.com/rustyeddy/crossvote/config"
	"github.com/rustyeddy/crossvote/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "crossvote",
	Short: "Moving-average crossover voting backtester for daily price bars",
	Long: `Crossvote backtests a long-only strategy on daily OHLC+VWAP bars.

Every (short, long) pair of trailing moving-average windows votes BUY,
SELL or abstains on each trading day by projecting where its two averages
cross and comparing that price with the previous day's VWAP. The majority
decides the day's signal, which a simple portfolio simulator fills at the
open. A run produces a blotter, a daily ledger and a performance summary
against buy-and-hold.

It provides tools for:
  - Running backtests from CSV or SQLite price data
  - Generating and validating run configuration files
  - Importing CSV price bars into SQLite`,
	SilenceUsage: true,
}

var (
	cfgFile  string
	logLevel string
	logDev   bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "run config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().BoolVar(&logDev, "log-dev", false, "human readable development logging")
}

// loadConfig returns the --config file, or the defaults when none is given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	dev := cfg.Log.Development || logDev

	log, err := logging.New(level, dev)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}
