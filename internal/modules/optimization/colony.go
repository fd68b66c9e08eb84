package optimization

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// colony owns the mutable state of one optimization run: the food-source
// matrix, its objective/fitness/trial arrays, the candidate buffer the bee
// phases write into, and the global-best record. It is exclusively owned
// by a single Fit call and never shared.
type colony struct {
	cfg Config
	obj *objective
	rng *rand.Rand

	dims     int
	foods    *mat.Dense // P×D current food sources
	solution *mat.Dense // P×D candidate buffer
	f        []float64  // objective value per source
	fitness  []float64  // selection fitness per source
	trial    []int      // cycles without improvement per source
	prob     []float64  // onlooker selection probability per source
	tmpID    []int      // originating source per onlooker candidate slot

	evaluations int
	scoutEvents int

	bestObjective float64
	bestWeights   []float64
}

// newColony draws the initial population uniformly in [lb, ub], normalizes
// each row onto the simplex, and evaluates the full batch (P evaluations).
// The global best is seeded from the first source; the loop's initial
// memorizeBestSource scan settles it on the batch minimum.
func newColony(cfg Config, obj *objective, dims int, rng *rand.Rand) *colony {
	p := cfg.ColonySize
	c := &colony{
		cfg:      cfg,
		obj:      obj,
		rng:      rng,
		dims:     dims,
		foods:    mat.NewDense(p, dims, nil),
		solution: mat.NewDense(p, dims, nil),
		trial:    make([]int, p),
		prob:     make([]float64, p),
		tmpID:    make([]int, p),
	}

	for i := 0; i < p; i++ {
		row := c.foods.RawRowView(i)
		for d := 0; d < dims; d++ {
			row[d] = c.uniform(cfg.LowerBound, cfg.UpperBound)
		}
		normalizeRow(row)
	}
	c.solution.Copy(c.foods)

	c.f = c.evaluate(c.foods)
	c.fitness = fitnessSlice(c.f)

	c.bestObjective = c.f[0]
	c.bestWeights = append([]float64{}, c.foods.RawRowView(0)...)

	return c
}

// evaluate runs the batch objective and charges the evaluation counter by
// the batch size.
func (c *colony) evaluate(weights *mat.Dense) []float64 {
	vals := c.obj.evaluate(weights)
	c.evaluations += len(vals)
	return vals
}

// sendEmployedBees writes one candidate per source into the solution
// buffer. All candidates are derived from the current foods matrix; no
// in-progress mutation is visible to later sources.
func (c *colony) sendEmployedBees() {
	for i := 0; i < c.cfg.ColonySize; i++ {
		c.mutateInto(i, i)
	}
}

// calculateProbabilities recomputes the onlooker acceptance probabilities
// with a 0.1 floor for every source.
func (c *colony) calculateProbabilities() {
	maxFit := c.fitness[0]
	for _, fit := range c.fitness[1:] {
		if fit > maxFit {
			maxFit = fit
		}
	}
	for i, fit := range c.fitness {
		c.prob[i] = 0.9*fit/maxFit + 0.1
	}
}

// sendOnlookerBees sweeps the sources with wrap-around, accepting each
// with its selection probability, until exactly P candidates have been
// generated. tmpID records which source produced each candidate slot.
func (c *colony) sendOnlookerBees() {
	i, t := 0, 0
	for t < c.cfg.ColonySize {
		if c.rng.Float64() < c.prob[i] {
			c.mutateInto(t, i)
			c.tmpID[t] = i
			t++
		}
		i++
		if i >= c.cfg.ColonySize {
			i = 0
		}
	}
}

// mutateInto generates a neighbor-perturbation candidate of source into
// the given solution slot: an MR-masked dimension subset (possibly empty),
// a random neighbor j ≠ source, and a single r ~ U(-1,1) shared across the
// selected dimensions. Perturbed dimensions are clipped to [lb, ub] and
// the whole row is renormalized onto the simplex.
func (c *colony) mutateInto(slot, source int) {
	dst := c.solution.RawRowView(slot)
	src := c.foods.RawRowView(source)
	copy(dst, src)

	neighbour := c.rng.Intn(c.cfg.ColonySize)
	for neighbour == source {
		neighbour = c.rng.Intn(c.cfg.ColonySize)
	}
	nbr := c.foods.RawRowView(neighbour)

	r := -1 + 2*c.rng.Float64()

	for d := 0; d < c.dims; d++ {
		if c.rng.Float64() < c.cfg.ModificationRate {
			v := src[d] + r*(src[d]-nbr[d])
			dst[d] = clip(v, c.cfg.LowerBound, c.cfg.UpperBound)
		}
	}
	normalizeRow(dst)
}

// applyEmployedGreedy replaces each source whose candidate is strictly
// fitter, resetting its trial counter; all other sources age by one.
func (c *colony) applyEmployedGreedy(objVals, fitVals []float64) {
	for i := range objVals {
		if fitVals[i] > c.fitness[i] {
			copy(c.foods.RawRowView(i), c.solution.RawRowView(i))
			c.f[i] = objVals[i]
			c.fitness[i] = fitVals[i]
			c.trial[i] = 0
		} else {
			c.trial[i]++
		}
	}
}

// applyOnlookerGreedy compares each candidate slot against its originating
// source recorded in tmpID, not against the slot index.
func (c *colony) applyOnlookerGreedy(objVals, fitVals []float64) {
	for t := range objVals {
		i := c.tmpID[t]
		if fitVals[t] > c.fitness[i] {
			copy(c.foods.RawRowView(i), c.solution.RawRowView(t))
			c.f[i] = objVals[t]
			c.fitness[i] = fitVals[t]
			c.trial[i] = 0
		} else {
			c.trial[i]++
		}
	}
}

// memorizeBestSource scans the population minimum and tightens the global
// best record. The record never regresses even when individual sources do.
func (c *colony) memorizeBestSource() {
	index := 0
	for i, v := range c.f {
		if v < c.f[index] {
			index = i
		}
	}
	if c.f[index] < c.bestObjective {
		c.bestObjective = c.f[index]
		c.bestWeights = append(c.bestWeights[:0], c.foods.RawRowView(index)...)
	}
}

// sendScoutBees replaces the single most-exhausted source, if it has
// reached the trial limit, with a fresh uniform draw. The draw is written
// as-is: the scout path skips the simplex normalization every other
// mutation path applies. At most one replacement per outer iteration.
func (c *colony) sendScoutBees() {
	index := 0
	for i, tr := range c.trial {
		if tr > c.trial[index] {
			index = i
		}
	}
	if c.trial[index] >= c.cfg.Limit {
		c.createNew(index)
	}
}

// createNew redraws one source uniformly in [lb, ub] and evaluates it as a
// single-row batch (one evaluation).
func (c *colony) createNew(index int) {
	row := c.foods.RawRowView(index)
	for d := 0; d < c.dims; d++ {
		row[d] = c.uniform(c.cfg.LowerBound, c.cfg.UpperBound)
	}
	copy(c.solution.RawRowView(index), row)

	vals := c.evaluate(mat.NewDense(1, c.dims, append([]float64{}, row...)))
	c.f[index] = vals[0]
	c.fitness[index] = fitnessOf(vals[0])
	c.trial[index] = 0
	c.scoutEvents++
}

// populationMin returns the current minimum objective value.
func (c *colony) populationMin() float64 {
	minVal := c.f[0]
	for _, v := range c.f[1:] {
		if v < minVal {
			minVal = v
		}
	}
	return minVal
}

func (c *colony) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*c.rng.Float64()
}

func normalizeRow(row []float64) {
	var sum float64
	for _, v := range row {
		sum += v
	}
	for d := range row {
		row[d] /= sum
	}
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
