package optimization

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// ABCOptimizer computes portfolio weights with artificial bee colony
// optimization: repeated employed/onlooker exploitation over a population
// of candidate allocations, with scout-bee restarts for exhausted sources,
// until the evaluation budget runs out.
type ABCOptimizer struct {
	cfg Config
	rng *rand.Rand
	log zerolog.Logger
}

// NewABCOptimizer creates an optimizer with the given hyperparameters. A
// nil rng selects a time-seeded source; tests pass a fixed seed for
// deterministic runs.
func NewABCOptimizer(cfg Config, rng *rand.Rand, log zerolog.Logger) *ABCOptimizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ABCOptimizer{
		cfg: cfg,
		rng: rng,
		log: log.With().Str("component", "abc_optimizer").Logger(),
	}
}

// Fit runs one full optimization over the given market statistics and
// returns the best-ever allocation. Each call constructs a fresh
// population and runs to budget exhaustion; there is no early stop beyond
// context cancellation, which is checked between outer iterations.
//
// The loop keeps iterating while the evaluation counter is ≤ the budget,
// so a run exceeds the nominal budget by up to one full iteration.
func (o *ABCOptimizer) Fit(
	ctx context.Context,
	meanReturn []float64,
	covMatrix [][]float64,
	method Method,
	riskFreeRate float64,
) (*Result, error) {
	n := len(meanReturn)
	if n == 0 {
		return nil, fmt.Errorf("no assets provided")
	}
	if len(covMatrix) != n {
		return nil, fmt.Errorf("covariance matrix size %d doesn't match assets count %d", len(covMatrix), n)
	}
	for i := range covMatrix {
		if len(covMatrix[i]) != n {
			return nil, fmt.Errorf("covariance matrix row %d has size %d, expected %d", i, len(covMatrix[i]), n)
		}
	}
	if o.cfg.ColonySize <= 0 {
		return nil, fmt.Errorf("colony size must be positive, got %d", o.cfg.ColonySize)
	}

	sigma := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sigma.Set(i, j, covMatrix[i][j])
		}
	}

	obj := newObjective(meanReturn, sigma, method, riskFreeRate)
	c := newColony(o.cfg, obj, n, o.rng)

	convergence := []float64{c.populationMin()}
	c.memorizeBestSource()

	for c.evaluations <= o.cfg.EvaluationBudget {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		c.sendEmployedBees()
		objVals := c.evaluate(c.solution)
		c.applyEmployedGreedy(objVals, fitnessSlice(objVals))

		c.calculateProbabilities()
		c.sendOnlookerBees()
		objVals = c.evaluate(c.solution)
		c.applyOnlookerGreedy(objVals, fitnessSlice(objVals))

		c.memorizeBestSource()
		c.sendScoutBees()

		convergence = append(convergence, c.populationMin())
	}

	o.log.Debug().
		Str("method", string(method)).
		Int("evaluations", c.evaluations).
		Int("scout_bees", c.scoutEvents).
		Float64("objective", c.bestObjective).
		Msg("Optimization run complete")

	return &Result{
		Weights:     append([]float64{}, c.bestWeights...),
		Objective:   c.bestObjective,
		Convergence: convergence,
		ScoutEvents: c.scoutEvents,
		Evaluations: c.evaluations,
	}, nil
}
