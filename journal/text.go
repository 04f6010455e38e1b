package journal

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rustyeddy/crossvote/backtest"
	"github.com/rustyeddy/crossvote/market"
)

const rule = "--------------------------------------------------"

// PrintResult writes a human readable report: the run header, the
// performance summary and, when verbose, the blotter and ledger tables.
func PrintResult(w io.Writer, r *backtest.Result, verbose bool) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Run ID:        %s\n", r.RunID)
	fmt.Fprintf(w, "Created:       %s\n", r.Created.Format(time.RFC3339))
	fmt.Fprintf(w, "Strategy:      %s\n", r.Strategy)
	fmt.Fprintf(w, "Symbol:        %s\n", r.Symbol)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Start:         %s (bar %d)\n", r.Start.Format(market.DateLayout), r.StartIndex)
	fmt.Fprintf(w, "End:           %s (bar %d)\n", r.End.Format(market.DateLayout), r.EndIndex)
	fmt.Fprintf(w, "Trading Days:  %d\n", len(r.Ledger))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Strategy Configuration")
	fmt.Fprintln(w, rule)
	if r.Strategy == "crossover" {
		c := r.Request.Crossover
		fmt.Fprintf(w, "Short Windows: [%d, %d)\n", c.MinShort, c.MaxShort)
		fmt.Fprintf(w, "Long Windows:  [%d, %d)\n", c.MinLong, c.MaxLong)
		fmt.Fprintf(w, "Bias:          buy %g sell %g\n", c.BuyBias, c.SellBias)
	}
	fmt.Fprintf(w, "Buy Fraction:  %.2f\n", r.Request.BuyFraction)
	fmt.Fprintf(w, "Sell Fraction: %.2f\n", r.Request.SellFraction)

	final := r.Final()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account Performance")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Start Cash:    %.2f\n", r.Request.InitialCash)
	fmt.Fprintf(w, "End Value:     %.2f\n", final.Value)
	fmt.Fprintf(w, "Position:      %.2f\n", final.Position)
	fmt.Fprintf(w, "Cash:          %.2f\n", final.Cash)
	fmt.Fprintf(w, "Return:        %.2f%%\n", final.Return*100)
	fmt.Fprintf(w, "Benchmark:     %.2f%%\n", r.BenchmarkReturn()*100)
	fmt.Fprintf(w, "Trades:        %d\n", r.Blotter.Trades())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance Summary")
	fmt.Fprintln(w, rule)
	s := r.Summary
	fmt.Fprintf(w, "R:             %.4f\n", s.R)
	fmt.Fprintf(w, "R Squared:     %.4f\n", s.RSquared)
	fmt.Fprintf(w, "Alpha:         %.6f\n", s.Alpha)
	fmt.Fprintf(w, "Beta:          %.4f\n", s.Beta)
	fmt.Fprintf(w, "Std Benchmark: %.6f\n", s.StdBenchmark)
	fmt.Fprintf(w, "Std Portfolio: %.6f\n", s.StdPortfolio)
	fmt.Fprintf(w, "Var Benchmark: %.8f\n", s.VarBenchmark)
	fmt.Fprintf(w, "Var Portfolio: %.8f\n", s.VarPortfolio)
	fmt.Fprintf(w, "Covariance:    %.8f\n", s.Covariance)

	if verbose {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Blotter")
		fmt.Fprintln(w, rule)
		PrintBlotter(w, r.Blotter)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Ledger")
		fmt.Fprintln(w, rule)
		PrintLedger(w, r.Ledger)
	}

	fmt.Fprintln(w)
}

func PrintBlotter(w io.Writer, b backtest.Blotter) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "date\tid\taction\tsymbol\tsize\tprice\t")
	for _, o := range b {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.2f\t%.2f\t\n",
			o.Date.Format(market.DateLayout), o.ID, o.Action, o.Symbol, o.Size, o.Price)
	}
	tw.Flush()
}

func PrintLedger(w io.Writer, l backtest.Ledger) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "date\tposition\tprice\tcash\tvalue\treturn\tbench chg\tport chg\t")
	for _, e := range l {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.4f\t%.4f\t%.4f\t\n",
			e.Date.Format(market.DateLayout), e.Position, e.Price, e.Cash, e.Value,
			e.Return, e.BenchmarkChange, e.PortfolioChange)
	}
	tw.Flush()
}
