package journal

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rustyeddy/crossvote/analytics"
	"github.com/rustyeddy/crossvote/backtest"
	"github.com/rustyeddy/crossvote/market"
)

var (
	BlotterHeader = []string{"date", "id", "action", "symbol", "size", "price", "type", "status"}
	LedgerHeader  = []string{"date", "position", "price", "cash", "portfolio_value",
		"portfolio_return", "benchmark_price_change", "portfolio_price_change"}
	SummaryHeader = []string{"metric", "value"}
)

// WriteBlotterCSV writes one row per order, HOLD days included.
func WriteBlotterCSV(w io.Writer, b backtest.Blotter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BlotterHeader); err != nil {
		return err
	}
	for _, o := range b {
		err := cw.Write([]string{
			o.Date.Format(market.DateLayout),
			strconv.Itoa(o.ID),
			o.Action.String(),
			o.Symbol,
			f(o.Size),
			f(o.Price),
			o.Type,
			o.Status,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteLedgerCSV(w io.Writer, l backtest.Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LedgerHeader); err != nil {
		return err
	}
	for _, e := range l {
		err := cw.Write([]string{
			e.Date.Format(market.DateLayout),
			f(e.Position),
			f(e.Price),
			f(e.Cash),
			f(e.Value),
			f(e.Return),
			f(e.BenchmarkChange),
			f(e.PortfolioChange),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the summary as metric/value pairs.
func WriteSummaryCSV(w io.Writer, s analytics.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, m := range summaryMetrics(s) {
		if err := cw.Write([]string{m.name, g(m.value)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFiles writes blotter.csv, ledger.csv and summary.csv into dir
// and returns their paths.
func WriteCSVFiles(dir string, res *backtest.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"blotter.csv", func(w io.Writer) error { return WriteBlotterCSV(w, res.Blotter) }},
		{"ledger.csv", func(w io.Writer) error { return WriteLedgerCSV(w, res.Ledger) }},
		{"summary.csv", func(w io.Writer) error { return WriteSummaryCSV(w, res.Summary) }},
	}

	var paths []string
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		fh, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		if err := out.write(fh); err != nil {
			fh.Close()
			return paths, err
		}
		if err := fh.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type metric struct {
	name  string
	value float64
}

func summaryMetrics(s analytics.Summary) []metric {
	return []metric{
		{"r", s.R},
		{"r_squared", s.RSquared},
		{"std_benchmark", s.StdBenchmark},
		{"std_portfolio", s.StdPortfolio},
		{"var_benchmark", s.VarBenchmark},
		{"var_portfolio", s.VarPortfolio},
		{"covariance", s.Covariance},
		{"alpha", s.Alpha},
		{"beta", s.Beta},
		{"observations", float64(s.Observations)},
	}
}

// f prints ledger values as rounded, without trailing zeros.
func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func g(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
