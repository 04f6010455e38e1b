package backtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   float64
	}{
		{1.234, 2, 1.23},
		{1.236, 2, 1.24},
		{-1.236, 2, -1.24},
		// exact binary ties go to even
		{78.125, 2, 78.12},
		{78.375, 2, 78.38},
		// 10509.93 * 0.5 sits just above the tie
		{10509.93 * 0.5, 2, 5254.97},
		{0.02216, 4, 0.0222},
		{0, 2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round(tt.in, tt.places), "round(%v, %d)", tt.in, tt.places)
	}

	assert.True(t, math.IsInf(round2(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(round4(math.NaN())))
}
