package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Covariance calculates the covariance between two datasets
func Covariance(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// Returns converts a price series to simple percentage returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i] × 100
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1] * 100
		}
	}

	return returns
}

// MeanReturns calculates the per-asset mean over a panel of return series.
// Each row of the panel is one asset's return history.
func MeanReturns(panel [][]float64) []float64 {
	means := make([]float64, len(panel))
	for i, series := range panel {
		means[i] = Mean(series)
	}
	return means
}

// CovarianceMatrix calculates the sample covariance matrix of a panel of
// return series. Each row of the panel is one asset's return history; all
// rows must have the same length.
func CovarianceMatrix(panel [][]float64) [][]float64 {
	n := len(panel)
	cov := make([][]float64, n)
	for i := range cov {
		cov[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c := Covariance(panel[i], panel[j])
			cov[i][j] = c
			cov[j][i] = c
		}
	}
	return cov
}
