package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTopKeepsHighestWeights(t *testing.T) {
	symbols := []string{"AAA", "BBB", "CCC", "DDD"}
	weights := []float64{0.1, 0.4, 0.2, 0.3}

	selected, err := SelectTop(symbols, weights, 2)
	require.NoError(t, err)

	require.Len(t, selected, 2)
	assert.Contains(t, selected, "BBB")
	assert.Contains(t, selected, "DDD")

	// Kept sub-vector is renormalized: 0.4/0.7 and 0.3/0.7.
	assert.InDelta(t, 0.4/0.7, selected["BBB"], 1e-9)
	assert.InDelta(t, 0.3/0.7, selected["DDD"], 1e-9)

	var sum float64
	for _, w := range selected {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSelectTopOversizedKeepsAll(t *testing.T) {
	selected, err := SelectTop([]string{"AAA", "BBB"}, []float64{0.6, 0.4}, 10)
	require.NoError(t, err)

	assert.Len(t, selected, 2)
	assert.InDelta(t, 0.6, selected["AAA"], 1e-9)
}

func TestSelectTopErrors(t *testing.T) {
	_, err := SelectTop([]string{"AAA"}, []float64{0.5, 0.5}, 1)
	assert.Error(t, err)

	_, err = SelectTop(nil, nil, 1)
	assert.Error(t, err)

	_, err = SelectTop([]string{"AAA"}, []float64{1}, 0)
	assert.Error(t, err)
}
