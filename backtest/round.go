package backtest

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// round rounds the exact binary value of x to places decimals, ties to
// even, so 5254.965000000000146 rounds up.
func round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', 30, 64))
	if err != nil {
		return x
	}
	f, _ := d.RoundBank(places).Float64()
	return f
}

func round2(x float64) float64 { return round(x, 2) }

func round4(x float64) float64 { return round(x, 4) }
