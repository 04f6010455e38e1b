package fixtures

import (
	"math"
	"time"

	"github.com/rustyeddy/crossvote/market"
)

// golden is forty weekdays of a drifting sine wave, 2024-01-01 to 2024-02-23.
var golden = []struct {
	date                       string
	open, high, low, close, vw float64
}{
	{"2024-01-01", 100.00, 101.50, 98.80, 100.40, 100.23},
	{"2024-01-02", 103.52, 105.02, 102.32, 103.74, 103.69},
	{"2024-01-03", 105.53, 107.03, 104.33, 105.36, 105.57},
	{"2024-01-04", 105.22, 106.72, 104.02, 104.82, 105.19},
	{"2024-01-05", 102.87, 104.37, 101.67, 102.61, 102.88},
	{"2024-01-08", 99.75, 101.25, 98.55, 99.86, 99.89},
	{"2024-01-09", 97.44, 98.94, 96.24, 97.83, 97.67},
	{"2024-01-10", 97.19, 98.69, 95.99, 97.49, 97.39},
	{"2024-01-11", 99.24, 100.74, 98.04, 99.19, 99.32},
	{"2024-01-12", 102.78, 104.28, 101.58, 102.42, 102.76},
	{"2024-01-15", 106.28, 107.78, 105.08, 105.95, 106.27},
	{"2024-01-16", 108.24, 109.74, 107.04, 108.24, 108.34},
	{"2024-01-17", 107.87, 109.37, 106.67, 108.21, 108.08},
	{"2024-01-18", 105.50, 107.00, 104.30, 105.86, 105.72},
	{"2024-01-19", 102.37, 103.87, 101.17, 102.42, 102.49},
	{"2024-01-22", 100.10, 101.60, 98.90, 99.80, 100.10},
	{"2024-01-23", 99.90, 101.40, 98.70, 99.52, 99.87},
	{"2024-01-24", 102.01, 103.51, 100.81, 101.90, 102.07},
	{"2024-01-25", 105.57, 107.07, 104.37, 105.83, 105.76},
	{"2024-01-26", 109.05, 110.55, 107.85, 109.44, 109.28},
	{"2024-01-29", 110.95, 112.45, 109.75, 111.12, 111.11},
	{"2024-01-30", 110.53, 112.03, 109.33, 110.31, 110.56},
	{"2024-01-31", 108.12, 109.62, 106.92, 107.72, 108.09},
	{"2024-02-01", 104.99, 106.49, 103.79, 104.78, 105.02},
	{"2024-02-02", 102.76, 104.26, 101.56, 102.93, 102.92},
	{"2024-02-05", 102.62, 104.12, 101.42, 103.02, 102.85},
	{"2024-02-06", 104.78, 106.28, 103.58, 105.03, 104.96},
	{"2024-02-07", 108.35, 109.85, 107.15, 108.24, 108.41},
	{"2024-02-08", 111.81, 113.31, 110.61, 111.42, 111.78},
	{"2024-02-09", 113.66, 115.16, 112.46, 113.36, 113.66},
	{"2024-02-12", 113.18, 114.68, 111.98, 113.24, 113.30},
	{"2024-02-13", 110.74, 112.24, 109.54, 111.10, 110.96},
	{"2024-02-14", 107.61, 109.11, 106.41, 107.95, 107.82},
	{"2024-02-15", 105.42, 106.92, 104.22, 105.42, 105.52},
	{"2024-02-16", 105.34, 106.84, 104.14, 105.00, 105.33},
	{"2024-02-19", 107.54, 109.04, 106.34, 107.18, 107.52},
	{"2024-02-20", 111.14, 112.64, 109.94, 111.08, 111.22},
	{"2024-02-21", 114.57, 116.07, 113.37, 114.88, 114.77},
	{"2024-02-22", 116.37, 117.87, 115.17, 116.76, 116.60},
	{"2024-02-23", 115.84, 117.34, 114.64, 115.94, 115.97},
}

// Golden returns the golden bars.
func Golden() []market.Bar {
	bars := make([]market.Bar, len(golden))
	for i, g := range golden {
		d, err := market.ParseDay(g.date)
		if err != nil {
			panic(err)
		}
		bars[i] = market.NewBar(d, g.open, g.high, g.low, g.close, g.vw)
	}
	return bars
}

// GoldenSeries wraps Golden in a PriceSeries for symbol IVV.
func GoldenSeries() *market.PriceSeries {
	ps, err := market.NewPriceSeries("IVV", Golden())
	if err != nil {
		panic(err)
	}
	return ps
}

// Curve builds n consecutive daily bars starting 2024-01-01 where open, high,
// low, close and VWAP all equal f(i).
func Curve(n int, f func(i int) float64) []market.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, n)
	for i := range bars {
		p := f(i)
		bars[i] = market.NewBar(start.AddDate(0, 0, i), p, p, p, p, p)
	}
	return bars
}

// Concave rises every day at a slowing pace: 100 + 10*sqrt(i).
func Concave(i int) float64 { return 100 + 10*math.Sqrt(float64(i)) }

// Convex rises every day at a growing pace: 100 + 0.1*i*i.
func Convex(i int) float64 { return 100 + 0.1*float64(i)*float64(i) }

// Linear rises by one every day.
func Linear(i int) float64 { return 100 + float64(i) }

// Flat is constant at 100.
func Flat(int) float64 { return 100 }
