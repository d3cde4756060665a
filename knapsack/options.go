package knapsack

// Options configures the penalty balance of both knapsack builders.
//
// Fields:
//   - Alpha — scale of the profit objective (negated, since a QUBO is
//     minimized). Must be > 0.
//   - Beta  — scale of the capacity penalty term. Must be > 0.
//
// The caller owns the Alpha/Beta contract: non-positive values leave the
// penalty balance undefined and are not checked here. As a rule of thumb,
// pick Beta·(violation of one weight unit)² large against Alpha·max(profit)
// so that no profit gain can pay for a constraint violation.
type Options struct {
	Alpha float64
	Beta  float64
}

// DefaultOptions returns the neutral scaling Alpha=1, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 1, Beta: 1}
}
