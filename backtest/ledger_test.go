package backtest

import (
	"testing"

	"github.com/rustyeddy/crossvote/strategies"
	"github.com/stretchr/testify/assert"
)

func TestBlotterTrades(t *testing.T) {
	tests := []struct {
		name    string
		blotter Blotter
		want    int
	}{
		{"empty", nil, 0},
		{"holds only", Blotter{{Action: strategies.Hold}, {Action: strategies.Hold}}, 0},
		{"zero size buy and sell", Blotter{{Action: strategies.Buy}, {Action: strategies.Sell}}, 0},
		{"mixed", Blotter{
			{Action: strategies.Buy, Size: 49.95},
			{Action: strategies.Hold},
			{Action: strategies.Buy, Size: 0},
			{Action: strategies.Sell, Size: 12.92},
		}, 2},
		{"permissive short buy", Blotter{{Action: strategies.Buy, Size: -3.5}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.blotter.Trades())
		})
	}
}
