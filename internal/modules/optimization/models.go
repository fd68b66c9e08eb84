package optimization

// Method selects the objective the colony minimizes.
type Method string

const (
	// MethodBalanced minimizes the negative Sharpe ratio ("dengeli").
	MethodBalanced Method = "dengeli"
	// MethodConservative minimizes portfolio variance ("garantici").
	MethodConservative Method = "garantici"
	// MethodCautious minimizes the negative Sortino ratio ("temkinli").
	MethodCautious Method = "temkinli"
)

// Config holds the colony hyperparameters. They are fixed for the life of
// a run.
type Config struct {
	LowerBound       float64 // lower bound for weights
	UpperBound       float64 // upper bound for weights
	EvaluationBudget int     // total objective evaluations per run
	Limit            int     // trial-exhaustion threshold for scout bees
	ColonySize       int     // number of food sources
	ModificationRate float64 // per-dimension mutation probability
}

// DefaultConfig returns the standard hyperparameters.
func DefaultConfig() Config {
	return Config{
		LowerBound:       0,
		UpperBound:       1,
		EvaluationBudget: 200000,
		Limit:            20,
		ColonySize:       50,
		ModificationRate: 0.1,
	}
}

// Result is the outcome of one optimization run.
type Result struct {
	Weights     []float64 // best-ever weight vector
	Objective   float64   // best-ever objective value
	Convergence []float64 // population minimum per outer iteration, first entry is the initial population
	ScoutEvents int       // number of scout-bee replacements
	Evaluations int       // total objective evaluations consumed
}
