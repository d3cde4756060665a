// Package knapsack formulates the 0/1 knapsack problem as a QUBO:
// maximize total profit of the selected items subject to a capacity bound,
// rewritten as an unconstrained quadratic minimization over binary
// variables via penalty methods.
//
// 🚀 Two encodings:
//
//   - Build — direct quadratic penalty. One binary variable per item:
//
//     H = −α·Σᵢ pᵢ·xᵢ + β·(Σᵢ wᵢ·xᵢ − C)²
//
//     The squared term is minimized when the load hits the capacity
//     *exactly*, so this is a soft target at C, not a strict ≤ bound —
//     the subset-sum simplification. Fewest variables; best when the
//     optimum sits near the capacity.
//
//   - BuildAux — exact encoding with auxiliary slack bits s0..s_{m−1}
//     whose weights w'ₖ (powers of two plus an adjusted final term) let
//     Σ w'ₖ·sₖ reach every integer in [0, C]:
//
//     H = −α·Σᵢ pᵢ·xᵢ + β·(Σᵢ wᵢ·xᵢ + Σₖ w'ₖ·sₖ − C)²
//
//     For every selection with total weight ≤ C some slack assignment
//     zeroes the penalty, and no over-capacity selection can — the ≤
//     constraint is captured exactly at the cost of ⌈log₂(C+1)⌉ extra
//     bits.
//
// ⚙️ Usage:
//
//	capacity, weights, profits, err := knapsack.Load("c.txt", "w.txt", "p.txt")
//	if err != nil {
//	  // ErrEmptyInput, ErrLengthMismatch, ErrInvalidWeight, …
//	}
//	opts := knapsack.DefaultOptions() // Alpha=1, Beta=1
//	opts.Beta = 10
//	q := knapsack.BuildAux(weights, profits, capacity, opts)
//
// Validation lives once, at the edge: Load fails fast with a sentinel
// error, and the builders assume its invariants already hold (equal-length
// positive sequences, capacity ≥ 0). The builders themselves are pure,
// deterministic, and safe to call concurrently.
//
// Performance:
//
//   - Build:    O(n²) time, O(n²) coefficients
//   - BuildAux: O((n+m)²) with m = ⌈log₂(C+1)⌉ slack bits
package knapsack
