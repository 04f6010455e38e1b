// Package analytics compares a portfolio's daily changes with its
// benchmark's.
package analytics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrTooFewObservations = errors.New("need at least 2 observations")
	ErrZeroVariance       = errors.New("benchmark changes have zero variance")
	ErrLengthMismatch     = errors.New("series lengths differ")
)

// Summary is the one-row performance report of a run. Deviations, variances
// and covariance are sample statistics. Alpha and Beta are the intercept and
// slope of the least-squares line portfolio = Beta*benchmark + Alpha.
type Summary struct {
	R            float64 `json:"r" yaml:"r"`
	RSquared     float64 `json:"r_squared" yaml:"r_squared"`
	StdBenchmark float64 `json:"std_benchmark" yaml:"std_benchmark"`
	StdPortfolio float64 `json:"std_portfolio" yaml:"std_portfolio"`
	VarBenchmark float64 `json:"var_benchmark" yaml:"var_benchmark"`
	VarPortfolio float64 `json:"var_portfolio" yaml:"var_portfolio"`
	Covariance   float64 `json:"covariance" yaml:"covariance"`
	Alpha        float64 `json:"alpha" yaml:"alpha"`
	Beta         float64 `json:"beta" yaml:"beta"`
	Observations int     `json:"observations" yaml:"observations"`
}

// Analyze summarises paired benchmark and portfolio changes. When the
// portfolio never moves the correlation is undefined and R is reported as 0.
func Analyze(benchmark, portfolio []float64) (Summary, error) {
	if len(benchmark) != len(portfolio) {
		return Summary{}, fmt.Errorf("%w: benchmark %d, portfolio %d",
			ErrLengthMismatch, len(benchmark), len(portfolio))
	}
	if len(benchmark) < 2 {
		return Summary{}, fmt.Errorf("%w, got %d", ErrTooFewObservations, len(benchmark))
	}

	varB := stat.Variance(benchmark, nil)
	if constant(benchmark) || varB == 0 {
		return Summary{}, ErrZeroVariance
	}
	varP := stat.Variance(portfolio, nil)

	s := Summary{
		StdBenchmark: stat.StdDev(benchmark, nil),
		StdPortfolio: stat.StdDev(portfolio, nil),
		VarBenchmark: varB,
		VarPortfolio: varP,
		Covariance:   stat.Covariance(benchmark, portfolio, nil),
		Observations: len(benchmark),
	}
	s.Alpha, s.Beta = stat.LinearRegression(benchmark, portfolio, nil, false)

	if !constant(portfolio) && varP > 0 {
		s.R = stat.Correlation(benchmark, portfolio, nil)
	}
	s.RSquared = s.R * s.R
	return s, nil
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
