package market

import (
	"errors"
	"fmt"
	"io"
	"time"
)

var (
	ErrEmptySeries    = errors.New("price series is empty")
	ErrDateOutOfRange = errors.New("date out of range")
)

// Direction selects which way Resolve walks when a day has no bar.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// PriceSeries is an ordered run of daily bars for one symbol, indexed by
// day key. Bars are expected ascending by Epoch; that is not checked.
type PriceSeries struct {
	Symbol string
	Source string
	Bars   []Bar

	// Duplicates counts bars dropped because their day key was already
	// present. The first bar for a day wins.
	Duplicates int

	index map[int64]int
}

// NewPriceSeries builds the day index over bars.
func NewPriceSeries(symbol string, bars []Bar) (*PriceSeries, error) {
	if len(bars) == 0 {
		return nil, ErrEmptySeries
	}

	ps := &PriceSeries{
		Symbol: symbol,
		Bars:   make([]Bar, 0, len(bars)),
		index:  make(map[int64]int, len(bars)),
	}
	for _, b := range bars {
		if _, ok := ps.index[b.Epoch]; ok {
			ps.Duplicates++
			continue
		}
		ps.index[b.Epoch] = len(ps.Bars)
		ps.Bars = append(ps.Bars, b)
	}
	return ps, nil
}

func (ps *PriceSeries) Len() int {
	return len(ps.Bars)
}

func (ps *PriceSeries) At(idx int) Bar {
	return ps.Bars[idx]
}

func (ps *PriceSeries) First() Bar {
	return ps.Bars[0]
}

func (ps *PriceSeries) Last() Bar {
	return ps.Bars[len(ps.Bars)-1]
}

// IndexOf returns the index of the bar on day t.
func (ps *PriceSeries) IndexOf(t time.Time) (int, bool) {
	idx, ok := ps.index[DayEpoch(t)]
	return idx, ok
}

// Resolve finds the bar for day t, stepping one calendar day at a time in
// dir until a bar is found. The walk is bounded by the first and last day of
// the series: a forward walk starting before the first day lands on the
// first bar, and a walk that would leave the series fails with
// ErrDateOutOfRange.
func (ps *PriceSeries) Resolve(t time.Time, dir Direction) (int, error) {
	if len(ps.Bars) == 0 {
		return 0, ErrEmptySeries
	}
	if dir != Forward && dir != Backward {
		return 0, fmt.Errorf("invalid direction %d", dir)
	}

	first, last := ps.First().Epoch, ps.Last().Epoch
	key := DayEpoch(t)
	if dir == Forward && key < first {
		key = first
	}
	if dir == Backward && key > last {
		key = last
	}

	step := int64(dir) * SecondsPerDay
	for ; key >= first && key <= last; key += step {
		if idx, ok := ps.index[key]; ok {
			return idx, nil
		}
	}

	return 0, fmt.Errorf("%w: no bar %s of %s within %s..%s", ErrDateOutOfRange,
		dir, Day(t).Format(DateLayout),
		ps.First().Date.Format(DateLayout), ps.Last().Date.Format(DateLayout))
}

// PrintInfo writes a short summary of the series.
func (ps *PriceSeries) PrintInfo(w io.Writer) {
	fmt.Fprintln(w, "---- PriceSeries ----")
	fmt.Fprintf(w, "Symbol:     %s\n", ps.Symbol)
	fmt.Fprintf(w, "Source:     %s\n", ps.Source)
	fmt.Fprintf(w, "Bars:       %d\n", ps.Len())
	if ps.Len() > 0 {
		fmt.Fprintf(w, "Range:      %s → %s\n",
			ps.First().Date.Format(DateLayout),
			ps.Last().Date.Format(DateLayout))
	}
	fmt.Fprintf(w, "Duplicates: %d\n", ps.Duplicates)
	fmt.Fprintln(w, "---------------------")
}
