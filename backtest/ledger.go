package backtest

import (
	"time"

	"github.com/rustyeddy/crossvote/strategies"
)

const (
	OrderTypeMarket = "MARKET"
	StatusFilled    = "FILLED"
)

// Order is one blotter row. Every trading day gets one, HOLD days included
// with a zero size.
type Order struct {
	ID     int               `json:"id"`
	Date   time.Time         `json:"date"`
	Action strategies.Signal `json:"action"`
	Symbol string            `json:"symbol"`
	Size   float64           `json:"size"`
	Price  float64           `json:"price"`
	Type   string            `json:"type"`
	Status string            `json:"status"`
}

// LedgerEntry is the portfolio after one trading day's fill.
type LedgerEntry struct {
	Date            time.Time `json:"date"`
	Position        float64   `json:"position"`
	Price           float64   `json:"price"`
	Cash            float64   `json:"cash"`
	Value           float64   `json:"portfolio_value"`
	Return          float64   `json:"portfolio_return"`
	BenchmarkChange float64   `json:"benchmark_price_change"`
	PortfolioChange float64   `json:"portfolio_price_change"`
}

type Blotter []Order

type Ledger []LedgerEntry

// Changes splits the ledger into its benchmark and portfolio change series.
func (l Ledger) Changes() (benchmark, portfolio []float64) {
	benchmark = make([]float64, len(l))
	portfolio = make([]float64, len(l))
	for i, e := range l {
		benchmark[i] = e.BenchmarkChange
		portfolio[i] = e.PortfolioChange
	}
	return benchmark, portfolio
}

// Trades counts the orders that moved shares. A BUY or SELL whose size
// rounds to zero is not a trade.
func (b Blotter) Trades() int {
	n := 0
	for _, o := range b {
		if o.Action != strategies.Hold && o.Size != 0 {
			n++
		}
	}
	return n
}

// State is what one trading day hands to the next.
type State struct {
	Cash     float64
	Position float64

	// Value is the previous day's portfolio value, the base of the next
	// day's portfolio change.
	Value float64

	// Seq is the number of orders written so far.
	Seq int
}

// InitialState is the state before the first trading day.
func InitialState(cash float64) State {
	return State{Cash: cash, Value: cash}
}

// StateAfter is the state carried forward from entry, the seq-th row.
func StateAfter(entry LedgerEntry, seq int) State {
	return State{
		Cash:     entry.Cash,
		Position: entry.Position,
		Value:    entry.Value,
		Seq:      seq,
	}
}
