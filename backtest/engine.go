package backtest

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/crossvote/market"
	"github.com/rustyeddy/crossvote/strategies"
)

var (
	ErrInsufficientHistory = errors.New("not enough history before start")
	ErrEmptyRange          = errors.New("start is after end")
)

// Params are the trading rules of a run. Fractions are applied as given;
// range checks belong to Request.Validate.
type Params struct {
	Symbol      string
	InitialCash float64

	// BuyFraction of cash is spent on a BUY, SellFraction of the position
	// is sold on a SELL.
	BuyFraction  float64
	SellFraction float64
}

// Simulator walks trading days in order, asking the strategy for a signal,
// filling it at the day's open and appending one blotter and one ledger row.
// Each day depends only on the State left by the previous day.
type Simulator struct {
	bars   []market.Bar
	strat  strategies.Strategy
	params Params
	state  State

	Blotter Blotter
	Ledger  Ledger
}

func NewSimulator(bars []market.Bar, strat strategies.Strategy, p Params) *Simulator {
	return &Simulator{
		bars:   bars,
		strat:  strat,
		params: p,
		state:  InitialState(p.InitialCash),
	}
}

// State is the state the next Step starts from.
func (s *Simulator) State() State {
	return s.state
}

// Resume continues from a state captured from another run, typically
// StateAfter(ledger[k], k+1). Rows already held are kept.
func (s *Simulator) Resume(st State) {
	s.state = st
}

// Run steps every index in [start, end].
func (s *Simulator) Run(start, end int) error {
	if start > end {
		return fmt.Errorf("%w: index %d > %d", ErrEmptyRange, start, end)
	}
	if warm := max(s.strat.Warmup(), 1); start < warm {
		return fmt.Errorf("%w: start index %d, %s needs %d", ErrInsufficientHistory,
			start, s.strat.Name(), warm)
	}
	if end >= len(s.bars) {
		return fmt.Errorf("end index %d beyond %d bars", end, len(s.bars))
	}

	for idx := start; idx <= end; idx++ {
		if _, _, err := s.Step(idx); err != nil {
			return err
		}
	}
	return nil
}

// Step trades day idx.
func (s *Simulator) Step(idx int) (Order, LedgerEntry, error) {
	if idx < 1 || idx >= len(s.bars) {
		return Order{}, LedgerEntry{}, fmt.Errorf("index %d outside 1..%d", idx, len(s.bars)-1)
	}

	action, err := s.strat.Signal(s.bars, idx)
	if err != nil {
		return Order{}, LedgerEntry{}, fmt.Errorf("signal %s: %w",
			s.bars[idx].Date.Format(market.DateLayout), err)
	}

	bar := s.bars[idx]
	price := bar.Open
	lastPrice := s.bars[idx-1].Open

	st := s.state
	cash, position := st.Cash, st.Position
	size := 0.0

	switch action {
	case strategies.Buy:
		cost := cash * s.params.BuyFraction
		size = cost / price
		cash -= cost
		position += size

	case strategies.Sell:
		size = position * s.params.SellFraction
		cash += size * price
		position -= size
	}

	value := position*price + cash
	seq := st.Seq + 1

	order := Order{
		ID:     seq,
		Date:   bar.Date,
		Action: action,
		Symbol: s.params.Symbol,
		Size:   round2(size),
		Price:  round2(price),
		Type:   OrderTypeMarket,
		Status: StatusFilled,
	}
	entry := LedgerEntry{
		Date:            bar.Date,
		Position:        round2(position),
		Price:           round2(price),
		Cash:            round2(cash),
		Value:           round2(value),
		Return:          round4(value/s.params.InitialCash - 1),
		BenchmarkChange: round4(price/lastPrice - 1),
		PortfolioChange: round4(value/st.Value - 1),
	}

	s.Blotter = append(s.Blotter, order)
	s.Ledger = append(s.Ledger, entry)
	s.state = StateAfter(entry, seq)
	return order, entry, nil
}
