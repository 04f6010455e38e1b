package strategies

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/crossvote/market"
)

// Strategy turns the bars before idx into a Signal for day idx.
type Strategy interface {
	Name() string

	// Warmup is the smallest index Signal accepts.
	Warmup() int

	Signal(bars []market.Bar, idx int) (Signal, error)
}

// Names lists the strategies ByName knows.
var Names = []string{"crossover", "noop"}

// ByName builds a strategy. Strategies that take no parameters ignore cfg.
func ByName(name string, cfg CrossoverConfig) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crossover", "cross", "":
		return NewCrossover(cfg)

	case "noop", "none", "hold":
		return Noop{}, nil

	default:
		return nil, fmt.Errorf("unknown strategy %q (supported: %s)", name, strings.Join(Names, ", "))
	}
}
