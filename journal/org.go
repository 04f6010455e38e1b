package journal

import (
	"io"
	"text/template"
	"time"

	"github.com/rustyeddy/crossvote/backtest"
)

var orgFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
	"day":    func(t time.Time) string { return t.Format("2006-01-02") },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var orgTemplate = template.Must(template.New("backtest").Funcs(orgFuncs).Parse(OrgTemplate))

// WriteOrg renders r as an org-mode entry with a properties drawer, the
// summary and the full ledger as an org table.
func WriteOrg(w io.Writer, r *backtest.Result) error {
	return orgTemplate.Execute(w, r)
}

const OrgTemplate = `* BACKTEST: {{.Strategy}} {{.Symbol}} {{day .Start}}..{{day .End}}
:PROPERTIES:
:RUN_ID:      {{.RunID}}
:STRATEGY:    {{.Strategy}}
:SYMBOL:      {{.Symbol}}
:START_DATE:  {{day .Start}}
:END_DATE:    {{day .End}}
:START_CASH:  {{printf "%.2f" .Request.InitialCash}}
:END_VALUE:   {{printf "%.2f" .Final.Value}}
:RETURN_PCT:  {{printf "%.2f" (mul100 .Final.Return)}}
:BENCH_PCT:   {{printf "%.2f" (mul100 .BenchmarkReturn)}}
:TRADES:      {{.Blotter.Trades}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Strategy Parameters
| Parameter     | Value |
|---------------+-------|
{{- if eq .Strategy "crossover"}}
| Short Windows | [{{.Request.Crossover.MinShort}}, {{.Request.Crossover.MaxShort}}) |
| Long Windows  | [{{.Request.Crossover.MinLong}}, {{.Request.Crossover.MaxLong}}) |
| Buy Bias      | {{.Request.Crossover.BuyBias}} |
| Sell Bias     | {{.Request.Crossover.SellBias}} |
{{- end}}
| Buy Fraction  | {{printf "%.2f" .Request.BuyFraction}} |
| Sell Fraction | {{printf "%.2f" .Request.SellFraction}} |

** Performance Summary
- R:              *{{printf "%.4f" .Summary.R}}*
- R Squared:      *{{printf "%.4f" .Summary.RSquared}}*
- Alpha:          *{{printf "%.6f" .Summary.Alpha}}*
- Beta:           *{{printf "%.4f" .Summary.Beta}}*
- Std Benchmark:  *{{printf "%.6f" .Summary.StdBenchmark}}*
- Std Portfolio:  *{{printf "%.6f" .Summary.StdPortfolio}}*
- Covariance:     *{{printf "%.8f" .Summary.Covariance}}*

** Ledger
| date | action | size | price | position | cash | value | return |
|------+--------+------+-------+----------+------+-------+--------|
{{- $blotter := .Blotter}}
{{- range $i, $e := .Ledger}}
{{- $o := index $blotter $i}}
| {{day $e.Date}} | {{$o.Action}} | {{printf "%.2f" $o.Size}} | {{printf "%.2f" $e.Price}} | {{printf "%.2f" $e.Position}} | {{printf "%.2f" $e.Cash}} | {{printf "%.2f" $e.Value}} | {{printf "%.4f" $e.Return}} |
{{- end}}
`
