package portfolio

import (
	"fmt"
	"sort"
)

// SelectTop keeps the k highest-weighted assets from a raw optimizer
// weight vector and renormalizes the kept sub-vector to sum to 1. The
// optimizer itself never truncates; this is the consumer side of that
// contract. If k exceeds the asset count the whole vector is kept.
func SelectTop(symbols []string, weights []float64, k int) (map[string]float64, error) {
	if len(symbols) != len(weights) {
		return nil, fmt.Errorf("symbols count %d doesn't match weights count %d", len(symbols), len(weights))
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no assets provided")
	}
	if k <= 0 {
		return nil, fmt.Errorf("selection size must be positive, got %d", k)
	}
	if k > len(symbols) {
		k = len(symbols)
	}

	indices := make([]int, len(weights))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return weights[indices[a]] > weights[indices[b]]
	})
	indices = indices[:k]

	var sum float64
	for _, i := range indices {
		sum += weights[i]
	}

	selected := make(map[string]float64, k)
	for _, i := range indices {
		selected[symbols[i]] = weights[i] / sum
	}
	return selected, nil
}
