package indicators

import (
	"testing"
	"time"

	"github.com/rustyeddy/crossvote/market"
	"github.com/stretchr/testify/assert"
)

func createTestBars() []market.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := [][4]float64{
		// open, high, low, close
		{100, 105, 99, 102},
		{102, 107, 101, 105},
		{105, 108, 104, 106},
		{106, 110, 105, 108},
		{108, 112, 107, 110},
		{110, 113, 109, 111},
	}
	bars := make([]market.Bar, len(rows))
	for i, r := range rows {
		bars[i] = market.NewBar(start.AddDate(0, 0, i), r[0], r[1], r[2], r[3], r[3])
	}
	return bars
}

func TestWindowAverage(t *testing.T) {
	bars := createTestBars()

	// typical prices: 101.5, 103.75, 105.75, 107.25, 109.25, 110.75
	tests := []struct {
		idx, n int
		want   float64
	}{
		{1, 1, 101.5},
		{2, 2, (101.5 + 103.75) / 2},
		{5, 3, (105.75 + 107.25 + 109.25) / 3},
		{6, 6, (101.5 + 103.75 + 105.75 + 107.25 + 109.25 + 110.75) / 6},
	}
	for _, tt := range tests {
		got, err := WindowAverage(bars, tt.idx, tt.n)
		assert.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "idx=%d n=%d", tt.idx, tt.n)
	}
}

func TestWindowAverageExcludesCurrentBar(t *testing.T) {
	bars := createTestBars()
	bars[3].High = 1e6

	got, err := WindowAverage(bars, 3, 2)
	assert.NoError(t, err)
	assert.InDelta(t, (103.75+105.75)/2, got, 1e-9)
}

func TestWindowAverageErrors(t *testing.T) {
	bars := createTestBars()

	_, err := WindowAverage(bars, 2, 3)
	assert.ErrorIs(t, err, ErrInsufficientHistory)

	_, err = WindowAverage(bars, 3, 0)
	assert.Error(t, err)

	_, err = WindowAverage(bars, 7, 1)
	assert.Error(t, err)
}
