package strategies

import "github.com/rustyeddy/crossvote/market"

// Noop holds every day. Run against the same range it shows the portfolio
// that never trades.
type Noop struct{}

func (Noop) Name() string { return "noop" }

func (Noop) Warmup() int { return 1 }

func (Noop) Signal(bars []market.Bar, idx int) (Signal, error) {
	return Hold, nil
}
