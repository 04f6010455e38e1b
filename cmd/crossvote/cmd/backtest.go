package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rustyeddy/crossvote/backtest"
	"github.com/rustyeddy/crossvote/config"
	"github.com/rustyeddy/crossvote/journal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a crossover voting backtest over a date range",
	Long: `Backtest loads a daily price series and simulates one trading day per bar
between --start and --end (inclusive). Values come from --config or the
built-in defaults; any flag given on the command line overrides them.

Supported strategies:
  - crossover: moving-average crossover voting over the window grid
  - noop: always HOLD (baseline)

Output formats:
  - table: aligned text summary (--verbose adds blotter and ledger)
  - csv:   blotter, ledger and summary tables
  - org:   org-mode run report

Example:
  crossvote backtest --data IVV.csv --start 2015-04-03 --end 2015-05-10 \
      --min-short 5 --max-short 7 --min-long 10 --max-long 13`,
	Args: cobra.NoArgs,
	RunE: runBacktest,
}

var (
	btDataPath     string
	btDataFormat   string
	btSymbol       string
	btStrategy     string
	btStart        string
	btEnd          string
	btMinShort     int
	btMaxShort     int
	btMinLong      int
	btMaxLong      int
	btBuyBias      float64
	btSellBias     float64
	btCash         float64
	btBuyFraction  float64
	btSellFraction float64
	btPermissive   bool
	btFormat       string
	btOut          string
	btVerbose      bool
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	def := config.Default()
	f := backtestCmd.Flags()

	f.StringVarP(&btDataPath, "data", "d", def.Data.Path, "price data file (CSV or SQLite)")
	f.StringVar(&btDataFormat, "data-format", def.Data.Format, "price data format: csv or sqlite")
	f.StringVar(&btSymbol, "symbol", def.Data.Symbol, "symbol of the price series")
	f.StringVarP(&btStrategy, "strategy", "s", def.Backtest.Strategy, "strategy name (crossover, noop)")
	f.StringVar(&btStart, "start", def.Backtest.Start, "first day, YYYY-MM-DD")
	f.StringVar(&btEnd, "end", def.Backtest.End, "last day, YYYY-MM-DD")

	f.IntVar(&btMinShort, "min-short", def.Backtest.MinShort, "smallest short window")
	f.IntVar(&btMaxShort, "max-short", def.Backtest.MaxShort, "short windows stop before this length")
	f.IntVar(&btMinLong, "min-long", def.Backtest.MinLong, "smallest long window")
	f.IntVar(&btMaxLong, "max-long", def.Backtest.MaxLong, "long windows stop before this length")
	f.Float64Var(&btBuyBias, "buy-bias", def.Backtest.BuyBias, "extra BUY votes needed over SELL")
	f.Float64Var(&btSellBias, "sell-bias", def.Backtest.SellBias, "extra SELL votes needed over BUY")

	f.Float64VarP(&btCash, "cash", "b", def.Backtest.InitialCash, "initial cash")
	f.Float64Var(&btBuyFraction, "buy-fraction", def.Backtest.BuyFraction, "fraction of cash spent on BUY")
	f.Float64Var(&btSellFraction, "sell-fraction", def.Backtest.SellFraction, "fraction of the position sold on SELL")
	f.BoolVar(&btPermissive, "permissive", def.Backtest.Permissive, "allow fractions outside [0, 1]")

	f.StringVarP(&btFormat, "format", "f", string(journal.FormatTable), "output format: table, csv or org")
	f.StringVarP(&btOut, "out", "o", "", "write the report to this file (a directory of CSV files for --format csv)")
	f.BoolVarP(&btVerbose, "verbose", "v", false, "table format: include the blotter and ledger")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyBacktestFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	format, err := journal.ParseFormat(btFormat)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	ps, err := cfg.Data.LoadSeries(cmd.Context())
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Data.Path, err)
	}
	log.Debug("series loaded",
		zap.String("path", cfg.Data.Path),
		zap.String("symbol", ps.Symbol),
		zap.Int("bars", ps.Len()),
		zap.Int("duplicates", ps.Duplicates),
	)

	req, err := cfg.Request()
	if err != nil {
		return err
	}
	req.Logger = log

	res, err := backtest.RunBacktest(ps, req)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), res, format)
}

// applyBacktestFlags copies every flag given on the command line into cfg.
func applyBacktestFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}

	set("data", func() { cfg.Data.Path = btDataPath })
	set("data-format", func() { cfg.Data.Format = btDataFormat })
	set("symbol", func() { cfg.Data.Symbol = btSymbol })
	set("strategy", func() { cfg.Backtest.Strategy = btStrategy })
	set("start", func() { cfg.Backtest.Start = btStart })
	set("end", func() { cfg.Backtest.End = btEnd })
	set("min-short", func() { cfg.Backtest.MinShort = btMinShort })
	set("max-short", func() { cfg.Backtest.MaxShort = btMaxShort })
	set("min-long", func() { cfg.Backtest.MinLong = btMinLong })
	set("max-long", func() { cfg.Backtest.MaxLong = btMaxLong })
	set("buy-bias", func() { cfg.Backtest.BuyBias = btBuyBias })
	set("sell-bias", func() { cfg.Backtest.SellBias = btSellBias })
	set("cash", func() { cfg.Backtest.InitialCash = btCash })
	set("buy-fraction", func() { cfg.Backtest.BuyFraction = btBuyFraction })
	set("sell-fraction", func() { cfg.Backtest.SellFraction = btSellFraction })
	set("permissive", func() { cfg.Backtest.Permissive = btPermissive })
}

func writeReport(stdout io.Writer, res *backtest.Result, format journal.Format) error {
	if btOut == "" {
		return journal.Write(stdout, res, format, btVerbose)
	}

	if format == journal.FormatCSV {
		paths, err := journal.WriteCSVFiles(btOut, res)
		if err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		for _, p := range paths {
			fmt.Fprintf(stdout, "wrote %s\n", p)
		}
		return nil
	}

	fh, err := os.Create(btOut)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := journal.Write(fh, res, format, btVerbose); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", btOut)
	return nil
}
