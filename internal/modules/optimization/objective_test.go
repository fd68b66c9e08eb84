package optimization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func newTestObjective(mu []float64, cov [][]float64, method Method, rfr float64) *objective {
	n := len(mu)
	sigma := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sigma.Set(i, j, cov[i][j])
		}
	}
	return newObjective(mu, sigma, method, rfr)
}

func TestFitnessTransform(t *testing.T) {
	assert.Equal(t, 1.0, fitnessOf(0))
	assert.InDelta(t, 1.0/6.0, fitnessOf(5), 1e-12)
	assert.Equal(t, 4.0, fitnessOf(-3))
}

func TestVarianceNonNegative(t *testing.T) {
	obj := newTestObjective(
		[]float64{0.1, 0.05, 0.02},
		[][]float64{
			{0.04, 0.01, 0.00},
			{0.01, 0.02, 0.005},
			{0.00, 0.005, 0.01},
		},
		MethodConservative,
		0,
	)

	weights := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0.2, 0.3, 0.5,
		0.6, 0.1, 0.3,
	})

	for _, v := range obj.evaluate(weights) {
		assert.GreaterOrEqual(t, v, -1e-9)
	}
}

func TestNegSharpeKnownValue(t *testing.T) {
	obj := newTestObjective(
		[]float64{0.10, 0.05},
		[][]float64{{0.04, 0}, {0, 0.01}},
		MethodBalanced,
		0,
	)

	// All-in on asset 0: ret 0.10, risk 0.20, Sharpe 0.5.
	vals := obj.evaluate(mat.NewDense(1, 2, []float64{1, 0}))
	assert.InDelta(t, -0.5, vals[0], 1e-12)
}

func TestNegSharpeZeroRiskPropagates(t *testing.T) {
	obj := newTestObjective(
		[]float64{0.10},
		[][]float64{{0}},
		MethodBalanced,
		0,
	)

	// Zero-variance row divides by zero; the Inf is not guarded.
	vals := obj.evaluate(mat.NewDense(1, 1, []float64{1}))
	assert.True(t, math.IsInf(vals[0], -1))
}

func TestNegSortinoAboveRiskFreeIsZero(t *testing.T) {
	obj := newTestObjective([]float64{0.05}, [][]float64{{0.01}}, MethodCautious, 0.01)

	vals := obj.evaluate(mat.NewDense(1, 1, []float64{1}))
	assert.InDelta(t, 0, vals[0], 1e-12)

	// Magnitude of the excess return does not matter.
	obj = newTestObjective([]float64{50.0}, [][]float64{{0.01}}, MethodCautious, 0.01)
	vals = obj.evaluate(mat.NewDense(1, 1, []float64{1}))
	assert.InDelta(t, 0, vals[0], 1e-12)
}

func TestNegSortinoBelowRiskFreeIsOne(t *testing.T) {
	// The single-point downside deviation equals the shortfall itself, so
	// the objective is exactly 1 regardless of how deep the shortfall is.
	for _, meanReturn := range []float64{-0.02, -100} {
		obj := newTestObjective([]float64{meanReturn}, [][]float64{{0.01}}, MethodCautious, 0.01)
		vals := obj.evaluate(mat.NewDense(1, 1, []float64{1}))
		assert.Equal(t, 1.0, vals[0])
	}
}

func TestUnknownMethodFallsBackToBalanced(t *testing.T) {
	mu := []float64{0.10, 0.05}
	cov := [][]float64{{0.04, 0.01}, {0.01, 0.01}}
	weights := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.3, 0.7})

	balanced := newTestObjective(mu, cov, MethodBalanced, 0.01).evaluate(weights)
	unknown := newTestObjective(mu, cov, Method("typo"), 0.01).evaluate(weights)

	assert.Equal(t, balanced, unknown)
}
