package knapsack

import (
	"math/bits"

	"github.com/katalvlaran/quboin/qubo"
)

// Build constructs the direct-penalty QUBO for the 0/1 knapsack instance
//
//	H = −Alpha·Σᵢ profits[i]·xᵢ + Beta·(Σᵢ weights[i]·xᵢ − capacity)²
//
// Variables are qubo.X(0)..qubo.X(n−1), one per item. The expansion yields
// n diagonal terms −Alpha·pᵢ + Beta·wᵢ² − 2·Beta·C·wᵢ and cross terms
// 2·Beta·wᵢ·wⱼ for every i < j; overlapping contributions accumulate.
//
// The penalty is zero only when the load equals the capacity exactly —
// a deliberate simplification (see the package doc). Use BuildAux for the
// strict ≤ constraint.
//
// Preconditions (enforced by Load, not here): len(weights) == len(profits),
// all weights ≥ 1, capacity ≥ 0, Alpha > 0, Beta > 0. Build is a pure
// function of its inputs.
//
// Complexity: O(n²) time and coefficients.
func Build(weights []int, profits []float64, capacity int, opts Options) qubo.QUBO {
	q := qubo.New()

	terms := make([]qubo.Term, len(weights))
	for i, w := range weights {
		terms[i] = qubo.Term{Var: qubo.X(i), Coeff: float64(w)}
	}
	// Beta·(Σ wᵢxᵢ − C)²; the constant Beta·C² offset is dropped.
	q.AddSquaredForm(terms, -float64(capacity), opts.Beta)

	for i, p := range profits {
		q.Add(qubo.X(i), qubo.X(i), -opts.Alpha*p)
	}

	return q
}

// BuildAux constructs the exact slack-bit QUBO for the 0/1 knapsack
// instance
//
//	H = −Alpha·Σᵢ profits[i]·xᵢ + Beta·(Σᵢ weights[i]·xᵢ + Σₖ w'ₖ·sₖ − capacity)²
//
// with slack weights w'ₖ = SlackWeights(capacity), so that the slack sum
// ranges over every integer in [0, capacity]. The penalty vanishes exactly
// on the capacity-feasible selections: the slack bits absorb the unused
// capacity.
//
// Variables are qubo.X(0)..qubo.X(n−1) and qubo.S(0)..qubo.S(m−1); the
// expansion covers x–x, x–s and s–s pairs, with every squared slack term
// folded into its diagonal (s² = s for binary s).
//
// Same preconditions and purity guarantees as Build.
//
// Complexity: O((n+m)²) with m = ⌈log₂(capacity+1)⌉.
func BuildAux(weights []int, profits []float64, capacity int, opts Options) qubo.QUBO {
	q := qubo.New()

	slack := SlackWeights(capacity)
	terms := make([]qubo.Term, 0, len(weights)+len(slack))
	for i, w := range weights {
		terms = append(terms, qubo.Term{Var: qubo.X(i), Coeff: float64(w)})
	}
	for k, w := range slack {
		terms = append(terms, qubo.Term{Var: qubo.S(k), Coeff: float64(w)})
	}
	q.AddSquaredForm(terms, -float64(capacity), opts.Beta)

	for i, p := range profits {
		q.Add(qubo.X(i), qubo.X(i), -opts.Alpha*p)
	}

	return q
}

// SlackWeights returns the binary decomposition used by BuildAux: powers
// of two 1, 2, …, 2^(m−1) with m = ⌊log₂(capacity)⌋, closed by the
// remainder capacity − (2^m − 1).
//
// Covering invariant: subset sums of the powers reach every integer in
// [0, 2^m − 1], and the remainder r satisfies 1 ≤ r ≤ 2^m, so adding it
// extends the reachable range gaplessly to [0, capacity]. capacity ≤ 0
// needs no slack and returns nil.
func SlackWeights(capacity int) []int {
	if capacity <= 0 {
		return nil
	}

	m := bits.Len(uint(capacity)) - 1 // ⌊log₂(capacity)⌋
	weights := make([]int, 0, m+1)
	for k := 0; k < m; k++ {
		weights = append(weights, 1<<k)
	}

	return append(weights, capacity-((1<<m)-1))
}
