package strategies

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/crossvote/indicators"
	"github.com/rustyeddy/crossvote/market"
)

var ErrInvalidWindows = errors.New("invalid window range")

// CrossoverConfig fixes the voting grid for a run. Window ranges are
// half-open: [MinShort, MaxShort) x [MinLong, MaxLong).
type CrossoverConfig struct {
	MinShort int `json:"min_short" yaml:"min_short"`
	MaxShort int `json:"max_short" yaml:"max_short"`
	MinLong  int `json:"min_long" yaml:"min_long"`
	MaxLong  int `json:"max_long" yaml:"max_long"`

	// A side must out-vote the other by more than its bias to act.
	BuyBias  float64 `json:"buy_bias" yaml:"buy_bias"`
	SellBias float64 `json:"sell_bias" yaml:"sell_bias"`
}

func DefaultCrossoverConfig() CrossoverConfig {
	return CrossoverConfig{
		MinShort: 5,
		MaxShort: 7,
		MinLong:  10,
		MaxLong:  13,
	}
}

func (c CrossoverConfig) Validate() error {
	if c.MinShort < 1 || c.MinLong < 1 {
		return fmt.Errorf("%w: window lengths must be at least 1 (short %d, long %d)",
			ErrInvalidWindows, c.MinShort, c.MinLong)
	}
	if c.MaxShort <= c.MinShort {
		return fmt.Errorf("%w: short [%d,%d) is empty", ErrInvalidWindows, c.MinShort, c.MaxShort)
	}
	if c.MaxLong <= c.MinLong {
		return fmt.Errorf("%w: long [%d,%d) is empty", ErrInvalidWindows, c.MinLong, c.MaxLong)
	}
	if c.BuyBias < 0 || c.SellBias < 0 {
		return fmt.Errorf("biases must not be negative (buy %g, sell %g)", c.BuyBias, c.SellBias)
	}
	return nil
}

// Warmup is the first index with enough history for every window on both
// the current and the previous day.
func (c CrossoverConfig) Warmup() int {
	return max(c.MaxShort, c.MaxLong)
}

// Pairs is the number of votes cast per day.
func (c CrossoverConfig) Pairs() int {
	return (c.MaxShort - c.MinShort) * (c.MaxLong - c.MinLong)
}

// Decide maps a tally to a signal. Neither comparison is inclusive, so an
// even split with zero bias holds.
func (c CrossoverConfig) Decide(t Tally) Signal {
	diff := float64(t.Buy - t.Sell)
	if diff-c.BuyBias > 0 {
		return Buy
	}
	if -diff-c.SellBias > 0 {
		return Sell
	}
	return Hold
}

// Crossover votes across a grid of short/long moving-average pairs.
type Crossover struct {
	cfg CrossoverConfig
}

func NewCrossover(cfg CrossoverConfig) (*Crossover, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Crossover{cfg: cfg}, nil
}

func (c *Crossover) Name() string { return "crossover" }

func (c *Crossover) Config() CrossoverConfig { return c.cfg }

func (c *Crossover) Warmup() int { return c.cfg.Warmup() }

func (c *Crossover) Signal(bars []market.Bar, idx int) (Signal, error) {
	t, err := c.Tally(bars, idx)
	if err != nil {
		return Hold, err
	}
	return c.cfg.Decide(t), nil
}

// Tally casts one vote per window pair for day idx.
func (c *Crossover) Tally(bars []market.Bar, idx int) (Tally, error) {
	if idx < c.Warmup() || idx > len(bars) {
		return Tally{}, fmt.Errorf("%w: index %d, warmup %d, %d bars",
			indicators.ErrInsufficientHistory, idx, c.Warmup(), len(bars))
	}

	shorts, err := averages(bars, idx, c.cfg.MinShort, c.cfg.MaxShort)
	if err != nil {
		return Tally{}, err
	}
	longs, err := averages(bars, idx, c.cfg.MinLong, c.cfg.MaxLong)
	if err != nil {
		return Tally{}, err
	}

	vwap := bars[idx-1].VWAP
	var t Tally
	for _, s := range shorts {
		for _, l := range longs {
			t.Add(vote(s, l, vwap))
		}
	}
	return t, nil
}

// PairVote is the vote of a single (short, long) window pair on day idx.
func PairVote(bars []market.Bar, idx, shortN, longN int) (Vote, error) {
	if idx < 1 || idx > len(bars) {
		return Abstain, fmt.Errorf("index %d outside 1..%d", idx, len(bars))
	}
	s, err := trendAt(bars, idx, shortN)
	if err != nil {
		return Abstain, err
	}
	l, err := trendAt(bars, idx, longN)
	if err != nil {
		return Abstain, err
	}
	return vote(s, l, bars[idx-1].VWAP), nil
}

// Joint solves
//
//	(prevLong - long)   * x + y = prevLong
//	(prevShort - short) * x + y = prevShort
//
// for y, the level where the two trend lines meet. ok is false when the
// system is singular.
func Joint(prevLong, long, prevShort, short float64) (y float64, ok bool) {
	a1 := prevLong - long
	a2 := prevShort - short
	det := a1 - a2
	if det == 0 {
		return 0, false
	}
	return (a1*prevShort - a2*prevLong) / det, true
}

// trend is a window average on the current and the previous day.
type trend struct {
	cur, prev float64
}

func trendAt(bars []market.Bar, idx, n int) (trend, error) {
	cur, err := indicators.WindowAverage(bars, idx, n)
	if err != nil {
		return trend{}, err
	}
	prev, err := indicators.WindowAverage(bars, idx-1, n)
	if err != nil {
		return trend{}, err
	}
	return trend{cur: cur, prev: prev}, nil
}

func averages(bars []market.Bar, idx, lo, hi int) ([]trend, error) {
	out := make([]trend, 0, hi-lo)
	for n := lo; n < hi; n++ {
		t, err := trendAt(bars, idx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func vote(short, long trend, vwap float64) Vote {
	joint, ok := Joint(long.prev, long.cur, short.prev, short.cur)
	if !ok {
		return Abstain
	}
	if joint < vwap {
		return VoteSell
	}
	return VoteBuy
}
