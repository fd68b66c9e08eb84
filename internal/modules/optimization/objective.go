package optimization

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// objective evaluates batches of candidate weight vectors against the
// market statistics of one run. Lower objective values are better.
type objective struct {
	mu     *mat.VecDense // mean returns, length D
	sigma  *mat.Dense
	method Method
	rfr    float64
}

func newObjective(meanReturn []float64, sigma *mat.Dense, method Method, riskFreeRate float64) *objective {
	return &objective{
		mu:     mat.NewVecDense(len(meanReturn), meanReturn),
		sigma:  sigma,
		method: method,
		rfr:    riskFreeRate,
	}
}

// evaluate maps an N×D weight matrix to N objective values. Unrecognized
// methods fall back to the balanced (negative Sharpe) objective.
func (o *objective) evaluate(weights *mat.Dense) []float64 {
	switch o.method {
	case MethodConservative:
		return o.variance(weights)
	case MethodCautious:
		return o.negSortinoRatio(weights)
	default:
		return o.negSharpeRatio(weights)
	}
}

// variance computes diag(W Σ Wᵗ) row-wise. Non-negative for a PSD Σ.
func (o *objective) variance(weights *mat.Dense) []float64 {
	n, d := weights.Dims()

	var ws mat.Dense
	ws.Mul(weights, o.sigma)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var v float64
		for j := 0; j < d; j++ {
			v += ws.At(i, j) * weights.At(i, j)
		}
		out[i] = v
	}
	return out
}

// negSharpeRatio computes -(W·μ - rfr) / sqrt(diag(W Σ Wᵗ)). A zero-risk
// row divides by zero and the resulting Inf/NaN propagates.
func (o *objective) negSharpeRatio(weights *mat.Dense) []float64 {
	n, _ := weights.Dims()

	variances := o.variance(weights)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		ret := mat.Dot(weights.RowView(i), o.mu)
		risk := math.Sqrt(variances[i])
		out[i] = -(ret - o.rfr) / risk
	}
	return out
}

// negSortinoRatio computes the downside-deviation variant over a
// single-point return estimate: the deviation collapses to
// |min(ret-rfr, 0)|, zero deviations are replaced by +Inf before the
// division. The objective is therefore -0 whenever ret ≥ rfr and exactly
// 1.0 whenever ret < rfr, independent of the shortfall's magnitude.
func (o *objective) negSortinoRatio(weights *mat.Dense) []float64 {
	n, _ := weights.Dims()

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		ret := mat.Dot(weights.RowView(i), o.mu)
		downside := math.Min(ret-o.rfr, 0)
		deviation := math.Abs(downside)
		if deviation == 0 {
			deviation = math.Inf(1)
		}
		out[i] = -(ret - o.rfr) / deviation
	}
	return out
}

// fitnessOf maps an objective value to a positive, larger-is-better
// selection fitness. Both branches meet at f=0 with fitness 1.
func fitnessOf(f float64) float64 {
	if f >= 0 {
		return 1 / (f + 1)
	}
	return 1 + math.Abs(f)
}

func fitnessSlice(objVals []float64) []float64 {
	out := make([]float64, len(objVals))
	for i, f := range objVals {
		out[i] = fitnessOf(f)
	}
	return out
}
