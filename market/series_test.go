package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	require.NoError(t, err)
	return d
}

// weekdays Mon 2024-01-01 .. Fri 2024-01-12
func weekdaySeries(t *testing.T) *PriceSeries {
	t.Helper()
	var bars []Bar
	for d := day(t, "2024-01-01"); !d.After(day(t, "2024-01-12")); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		p := float64(100 + d.Day())
		bars = append(bars, NewBar(d, p, p+1, p-1, p, p))
	}
	ps, err := NewPriceSeries("IVV", bars)
	require.NoError(t, err)
	return ps
}

func TestNewPriceSeriesEmpty(t *testing.T) {
	_, err := NewPriceSeries("IVV", nil)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestNewPriceSeriesDuplicatesKeepFirst(t *testing.T) {
	d := day(t, "2024-03-01")
	ps, err := NewPriceSeries("IVV", []Bar{
		NewBar(d, 1, 1, 1, 1, 1),
		NewBar(d.Add(5*time.Hour), 2, 2, 2, 2, 2),
		NewBar(d.AddDate(0, 0, 1), 3, 3, 3, 3, 3),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, 1, ps.Duplicates)
	assert.Equal(t, 1.0, ps.At(0).Open)
	assert.Equal(t, 3.0, ps.Last().Open)
}

func TestBarTypical(t *testing.T) {
	b := NewBar(time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC), 10, 14, 8, 12, 11)
	assert.Equal(t, 11.0, b.Typical())
	assert.Equal(t, int64(1704067200), b.Epoch)
	assert.Equal(t, b.Epoch, b.Date.Unix())
}

func TestResolve(t *testing.T) {
	ps := weekdaySeries(t)

	tests := []struct {
		name    string
		date    string
		dir     Direction
		want    string
		wantErr bool
	}{
		{"exact forward", "2024-01-03", Forward, "2024-01-03", false},
		{"exact backward", "2024-01-03", Backward, "2024-01-03", false},
		{"saturday forward", "2024-01-06", Forward, "2024-01-08", false},
		{"sunday backward", "2024-01-07", Backward, "2024-01-05", false},
		{"before range forward", "2023-12-20", Forward, "2024-01-01", false},
		{"after range backward", "2024-02-20", Backward, "2024-01-12", false},
		{"after range forward", "2024-01-13", Forward, "", true},
		{"before range backward", "2023-12-31", Backward, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ps.Resolve(day(t, tt.date), tt.dir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDateOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ps.At(idx).Date.Format(DateLayout))
		})
	}
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	ps := weekdaySeries(t)
	idx, err := ps.Resolve(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC), Forward)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	got, ok := ps.IndexOf(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay(" 2015-04-03 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 4, 3, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("04/03/2015")
	assert.Error(t, err)
}
