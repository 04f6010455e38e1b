// Package indicators computes trailing-window statistics over daily bars.
package indicators

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/crossvote/market"
)

var ErrInsufficientHistory = errors.New("insufficient history")

// WindowAverage returns the mean typical price over bars[idx-n:idx]. The bar
// at idx itself is not included.
func WindowAverage(bars []market.Bar, idx, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("window must be positive, got %d", n)
	}
	if idx > len(bars) {
		return 0, fmt.Errorf("index %d beyond %d bars", idx, len(bars))
	}
	if idx-n < 0 {
		return 0, fmt.Errorf("%w: window %d ending at %d", ErrInsufficientHistory, n, idx)
	}

	total := 0.0
	for i := idx - n; i < idx; i++ {
		total += bars[i].Typical()
	}
	return total / float64(n), nil
}
