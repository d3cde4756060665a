package qubo

// AddSquaredForm expands scale·(Σᵢ cᵢ·vᵢ + shift)² into the model and
// returns the constant part that cannot live in a pair-keyed map.
//
// Expansion over binary variables:
//
//	scale·(Σ cᵢvᵢ + shift)² =
//	    Σᵢ scale·(cᵢ² + 2·shift·cᵢ)·vᵢ          (diagonal; vᵢ² = vᵢ)
//	  + Σ_{i<j} 2·scale·cᵢcⱼ·vᵢvⱼ               (cross terms)
//	  + scale·shift²                             (constant, returned)
//
// Binary idempotence is the load-bearing step: every squared single
// variable collapses into that variable's linear coefficient, so the map
// never holds a "self-quadratic" term distinct from the diagonal. A
// variable appearing in several terms is handled by the same rule — its
// cross term targets the self-pair and accumulates onto the diagonal.
//
// The returned offset shifts every assignment's energy equally and is
// irrelevant to minimization; callers may discard it.
//
// Complexity: O(t²) for t terms.
func (q QUBO) AddSquaredForm(terms []Term, shift, scale float64) float64 {
	for i, ti := range terms {
		// cᵢ²·vᵢ² → cᵢ²·vᵢ, plus the 2·shift·cᵢ·vᵢ mixed term.
		q.Add(ti.Var, ti.Var, scale*(ti.Coeff*ti.Coeff+2*shift*ti.Coeff))
		for _, tj := range terms[i+1:] {
			q.Add(ti.Var, tj.Var, 2*scale*ti.Coeff*tj.Coeff)
		}
	}

	return scale * shift * shift
}
