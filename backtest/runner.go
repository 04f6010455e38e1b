package backtest

import (
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/crossvote/analytics"
	"github.com/rustyeddy/crossvote/id"
	"github.com/rustyeddy/crossvote/market"
	"github.com/rustyeddy/crossvote/strategies"
	"go.uber.org/zap"
)

var ErrInvalidFraction = errors.New("fraction outside [0, 1]")

// Request describes one backtest.
type Request struct {
	// Start and End are calendar days, both inclusive. A day without a bar
	// resolves forward for Start and backward for End.
	Start time.Time
	End   time.Time

	// Strategy is a strategies.ByName name; empty means crossover.
	Strategy  string
	Crossover strategies.CrossoverConfig

	InitialCash  float64
	BuyFraction  float64
	SellFraction float64

	// Permissive skips the fraction range check, allowing leveraged buys
	// and short positions.
	Permissive bool

	Logger *zap.Logger
}

// DefaultRequest trades the default crossover grid with half of cash or
// half of the position per signal.
func DefaultRequest(start, end time.Time) Request {
	return Request{
		Start:        start,
		End:          end,
		Strategy:     "crossover",
		Crossover:    strategies.DefaultCrossoverConfig(),
		InitialCash:  10000,
		BuyFraction:  0.5,
		SellFraction: 0.5,
	}
}

func (r Request) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("%w: %s > %s", ErrEmptyRange,
			r.Start.Format(market.DateLayout), r.End.Format(market.DateLayout))
	}
	if r.InitialCash <= 0 {
		return fmt.Errorf("initial cash must be positive, got %g", r.InitialCash)
	}
	if !r.Permissive {
		if r.BuyFraction < 0 || r.BuyFraction > 1 {
			return fmt.Errorf("%w: buy fraction %g", ErrInvalidFraction, r.BuyFraction)
		}
		if r.SellFraction < 0 || r.SellFraction > 1 {
			return fmt.Errorf("%w: sell fraction %g", ErrInvalidFraction, r.SellFraction)
		}
	}
	return nil
}

// Result is everything a run produces.
type Result struct {
	RunID    string
	Symbol   string
	Strategy string
	Created  time.Time

	// Request echoes the inputs; Start and End are the resolved bar days.
	Request    Request
	Start      time.Time
	End        time.Time
	StartIndex int
	EndIndex   int

	Blotter Blotter
	Ledger  Ledger
	Summary analytics.Summary
}

// Final is the last ledger row.
func (r *Result) Final() LedgerEntry {
	if len(r.Ledger) == 0 {
		return LedgerEntry{}
	}
	return r.Ledger[len(r.Ledger)-1]
}

// BenchmarkReturn is the buy-and-hold return from the open before the
// first trading day to the open of the last one.
func (r *Result) BenchmarkReturn() float64 {
	if len(r.Ledger) == 0 {
		return 0
	}
	growth := 1.0
	for _, e := range r.Ledger {
		growth *= 1 + e.BenchmarkChange
	}
	return growth - 1
}

// RunBacktest resolves the request's dates against ps, simulates every day
// in range and summarises the ledger.
func RunBacktest(ps *market.PriceSeries, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if ps == nil || ps.Len() == 0 {
		return nil, market.ErrEmptySeries
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}

	strat, err := strategies.ByName(req.Strategy, req.Crossover)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}

	startIdx, err := ps.Resolve(req.Start, market.Forward)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	endIdx, err := ps.Resolve(req.End, market.Backward)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	if startIdx > endIdx {
		return nil, fmt.Errorf("%w: no bars between %s and %s", ErrEmptyRange,
			req.Start.Format(market.DateLayout), req.End.Format(market.DateLayout))
	}

	created := time.Now().UTC()
	res := &Result{
		RunID:      id.At(created),
		Symbol:     ps.Symbol,
		Strategy:   strat.Name(),
		Created:    created,
		Request:    req,
		Start:      ps.At(startIdx).Date,
		End:        ps.At(endIdx).Date,
		StartIndex: startIdx,
		EndIndex:   endIdx,
	}
	log = log.With(zap.String("run_id", res.RunID), zap.String("symbol", res.Symbol))
	log.Info("backtest start",
		zap.String("strategy", res.Strategy),
		zap.String("start", res.Start.Format(market.DateLayout)),
		zap.String("end", res.End.Format(market.DateLayout)),
		zap.Int("start_index", startIdx),
		zap.Int("end_index", endIdx),
	)

	sim := NewSimulator(ps.Bars, strat, Params{
		Symbol:       ps.Symbol,
		InitialCash:  req.InitialCash,
		BuyFraction:  req.BuyFraction,
		SellFraction: req.SellFraction,
	})
	if err := sim.Run(startIdx, endIdx); err != nil {
		log.Error("simulation failed", zap.Error(err))
		return nil, err
	}
	res.Blotter = sim.Blotter
	res.Ledger = sim.Ledger

	bench, port := res.Ledger.Changes()
	res.Summary, err = analytics.Analyze(bench, port)
	if err != nil {
		log.Error("performance summary failed", zap.Error(err), zap.Int("days", len(res.Ledger)))
		return nil, fmt.Errorf("date range too short for performance summary: %w", err)
	}

	final := res.Final()
	log.Info("backtest complete",
		zap.Int("days", len(res.Ledger)),
		zap.Int("trades", res.Blotter.Trades()),
		zap.Float64("final_value", final.Value),
		zap.Float64("return", final.Return),
		zap.Float64("beta", res.Summary.Beta),
	)
	return res, nil
}
