package portfolio

import (
	"context"
	"fmt"

	"github.com/bkd-quant/abc-portfolio/internal/modules/optimization"
	"github.com/bkd-quant/abc-portfolio/pkg/formulas"
	"github.com/rs/zerolog"
)

// Service turns raw price histories into a concentrated allocation: it
// reduces prices to return statistics, runs the bee-colony optimizer over
// the full universe, and keeps the top-weighted assets.
type Service struct {
	optimizer *optimization.ABCOptimizer
	log       zerolog.Logger
}

// NewService creates a new portfolio service.
func NewService(optimizer *optimization.ABCOptimizer, log zerolog.Logger) *Service {
	return &Service{
		optimizer: optimizer,
		log:       log.With().Str("component", "portfolio").Logger(),
	}
}

// Allocation is a constructed portfolio.
type Allocation struct {
	Weights     map[string]float64 // selected assets, renormalized to sum 1
	Objective   float64            // best objective value of the run
	ScoutEvents int
	Evaluations int
}

// Construct builds a portfolio from per-asset price series. Each row of
// prices is one asset's history, aligned with symbols; all series must
// have the same length. topK bounds how many assets the final allocation
// holds.
func (s *Service) Construct(
	ctx context.Context,
	symbols []string,
	prices [][]float64,
	method optimization.Method,
	riskFreeRate float64,
	topK int,
) (*Allocation, error) {
	if len(symbols) != len(prices) {
		return nil, fmt.Errorf("symbols count %d doesn't match price series count %d", len(symbols), len(prices))
	}

	panel := make([][]float64, len(prices))
	for i, series := range prices {
		panel[i] = formulas.Returns(series)
		if len(panel[i]) == 0 {
			return nil, fmt.Errorf("insufficient price history for %s", symbols[i])
		}
		if len(panel[i]) != len(panel[0]) {
			return nil, fmt.Errorf("price series for %s has %d returns, expected %d", symbols[i], len(panel[i]), len(panel[0]))
		}
	}

	meanReturn := formulas.MeanReturns(panel)
	cov := formulas.CovarianceMatrix(panel)

	result, err := s.optimizer.Fit(ctx, meanReturn, cov, method, riskFreeRate)
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}

	weights, err := SelectTop(symbols, result.Weights, topK)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("method", string(method)).
		Int("universe", len(symbols)).
		Int("selected", len(weights)).
		Int("scout_bees", result.ScoutEvents).
		Float64("objective", result.Objective).
		Msg("Constructed portfolio")

	return &Allocation{
		Weights:     weights,
		Objective:   result.Objective,
		ScoutEvents: result.ScoutEvents,
		Evaluations: result.Evaluations,
	}, nil
}
