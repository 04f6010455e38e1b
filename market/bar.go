package market

import "time"

// Bar is one daily price bar. Epoch is the UTC-midnight unix second of the
// bar's calendar day and is the bar's identity inside a PriceSeries.
type Bar struct {
	Date  time.Time
	Epoch int64
	Open  float64
	High  float64
	Low   float64
	Close float64
	VWAP  float64
}

// NewBar keys a bar by its calendar day.
func NewBar(day time.Time, open, high, low, close, vwap float64) Bar {
	d := Day(day)
	return Bar{
		Date:  d,
		Epoch: d.Unix(),
		Open:  open,
		High:  high,
		Low:   low,
		Close: close,
		VWAP:  vwap,
	}
}

// Typical returns (High+Low+Open+Close)/4.
func (b Bar) Typical() float64 {
	return (b.High + b.Low + b.Open + b.Close) / 4
}
