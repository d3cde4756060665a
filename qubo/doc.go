// Package qubo defines the sparse QUBO model shared by all quboin builders,
// plus the algebra needed to assemble one from penalty terms.
//
// 🚀 What is a QUBO?
//
//	Quadratic Unconstrained Binary Optimization: minimize
//
//	    H(x) = Σᵢ Qᵢᵢ·xᵢ + Σ_{i<j} Qᵢⱼ·xᵢ·xⱼ,   xᵢ ∈ {0,1}
//
//	The model is a sparse map from an unordered pair of variables to its
//	coefficient; a self-pair (v,v) is the linear/diagonal term of v.
//
// ✨ Key features:
//   - Accumulate-on-insert: repeated contributions to the same pair are
//     summed, never overwritten
//   - Deterministic variable naming: X(0)="x0"…, S(0)="s0"… for slack bits
//   - AddSquaredForm: expands scale·(Σ cᵢ·vᵢ + shift)² with the binary
//     identity b² = b folded into the diagonal
//   - Linear/Quadratic split for direct hand-off to any BQM adapter
//   - Evaluate for brute-force energy checks on small models
//
// ⚙️ Usage:
//
//	q := qubo.New()
//	q.Add(qubo.X(0), qubo.X(0), -3)          // linear term
//	q.Add(qubo.X(0), qubo.X(1), 12)          // quadratic term
//	offset := q.AddSquaredForm([]qubo.Term{
//	  {Var: qubo.X(0), Coeff: 2},
//	  {Var: qubo.X(1), Coeff: 3},
//	}, -5, 10)                               // += 10·(2x0 + 3x1 − 5)²
//	energy := q.Evaluate(qubo.Assignment{qubo.X(0): 1, qubo.X(1): 1})
//
// Performance:
//
//   - Add/Get:        O(1) amortized
//   - AddSquaredForm: O(t²) for t terms
//   - Evaluate:       O(|Q|)
//
// All operations are deterministic; models built from identical inputs are
// equal as maps.
package qubo
