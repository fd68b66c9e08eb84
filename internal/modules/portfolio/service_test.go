package portfolio

import (
	"context"
	"math/rand"
	"testing"

	"github.com/bkd-quant/abc-portfolio/internal/modules/optimization"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(seed int64) *Service {
	cfg := optimization.DefaultConfig()
	cfg.ColonySize = 10
	cfg.EvaluationBudget = 1000

	opt := optimization.NewABCOptimizer(cfg, rand.New(rand.NewSource(seed)), zerolog.Nop())
	return NewService(opt, zerolog.Nop())
}

func TestConstruct(t *testing.T) {
	svc := newTestService(1)

	// Steady riser, choppy riser, decliner.
	prices := [][]float64{
		{100, 101, 102, 103, 104, 105, 106, 107},
		{100, 104, 99, 105, 100, 106, 101, 107},
		{100, 99, 98, 97, 96, 95, 94, 93},
	}
	symbols := []string{"AAA", "BBB", "CCC"}

	allocation, err := svc.Construct(context.Background(), symbols, prices, optimization.MethodConservative, 0, 2)
	require.NoError(t, err)

	require.Len(t, allocation.Weights, 2)
	var sum float64
	for _, w := range allocation.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, allocation.Evaluations, 0)
}

func TestConstructValidation(t *testing.T) {
	svc := newTestService(2)
	ctx := context.Background()

	_, err := svc.Construct(ctx, []string{"AAA"}, [][]float64{{100, 101}, {100, 99}}, optimization.MethodBalanced, 0, 1)
	assert.Error(t, err)

	_, err = svc.Construct(ctx, []string{"AAA"}, [][]float64{{100}}, optimization.MethodBalanced, 0, 1)
	assert.Error(t, err)

	_, err = svc.Construct(ctx, []string{"AAA", "BBB"}, [][]float64{{100, 101, 102}, {100, 99}}, optimization.MethodBalanced, 0, 1)
	assert.Error(t, err)
}
