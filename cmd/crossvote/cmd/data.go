package cmd

import (
	"fmt"

	"github.com/rustyeddy/crossvote/config"
	"github.com/rustyeddy/crossvote/market"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect and import daily price data",
	Long: `Work with the daily price bars backtests run on.

Subcommands:
  import - Load a CSV file into a SQLite bar store
  info   - Summarise a CSV or SQLite price series

Examples:
  crossvote data import --csv IVV.csv --db bars.db --symbol IVV
  crossvote data info --data bars.db --data-format sqlite --symbol IVV`,
}

var dataImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV price file into SQLite",
	Long: `Read a Date,Open,High,Low,Close,VWAP CSV file and store its bars under
--symbol in the SQLite database at --db. Bars already stored for the same
symbol and day are replaced.`,
	Args: cobra.NoArgs,
	RunE: runDataImport,
}

var dataInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a summary of a price series",
	Args:  cobra.NoArgs,
	RunE:  runDataInfo,
}

var (
	dataCSVPath string
	dataDBPath  string
	dataSymbol  string
	dataPath    string
	dataFormat  string
)

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataImportCmd)
	dataCmd.AddCommand(dataInfoCmd)

	dataCmd.PersistentFlags().StringVar(&dataSymbol, "symbol", "IVV", "symbol of the price series")

	dataImportCmd.Flags().StringVar(&dataCSVPath, "csv", "", "CSV file to import (required)")
	dataImportCmd.Flags().StringVar(&dataDBPath, "db", "./bars.db", "SQLite bar store")
	dataImportCmd.MarkFlagRequired("csv")

	dataInfoCmd.Flags().StringVarP(&dataPath, "data", "d", "", "price data file (required)")
	dataInfoCmd.Flags().StringVar(&dataFormat, "data-format", "csv", "price data format: csv or sqlite")
	dataInfoCmd.MarkFlagRequired("data")
}

func runDataImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	ps, err := market.LoadCSV(dataCSVPath, dataSymbol)
	if err != nil {
		return fmt.Errorf("load %s: %w", dataCSVPath, err)
	}
	if ps.Duplicates > 0 {
		log.Warn("duplicate days dropped",
			zap.String("path", dataCSVPath),
			zap.Int("duplicates", ps.Duplicates))
	}

	if err := market.SaveSQLite(cmd.Context(), dataDBPath, ps); err != nil {
		return fmt.Errorf("save %s: %w", dataDBPath, err)
	}
	log.Info("bars imported",
		zap.String("symbol", ps.Symbol),
		zap.String("db", dataDBPath),
		zap.Int("bars", ps.Len()))

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d %s bars into %s\n", ps.Len(), ps.Symbol, dataDBPath)
	return nil
}

func runDataInfo(cmd *cobra.Command, args []string) error {
	d := config.DataConfig{Path: dataPath, Format: dataFormat, Symbol: dataSymbol}
	ps, err := d.LoadSeries(cmd.Context())
	if err != nil {
		return fmt.Errorf("load %s: %w", dataPath, err)
	}
	ps.PrintInfo(cmd.OutOrStdout())
	return nil
}
