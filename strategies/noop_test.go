package strategies

import (
	"testing"

	"github.com/rustyeddy/crossvote/internal/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestNoopSignal(t *testing.T) {
	bars := fixtures.Golden()
	strat := Noop{}

	for idx := strat.Warmup(); idx < len(bars); idx++ {
		sig, err := strat.Signal(bars, idx)
		assert.NoError(t, err)
		assert.Equal(t, Hold, sig)
	}
}
