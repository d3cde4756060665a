package qubo

import "sort"

// QUBO is a sparse quadratic model over binary variables: a map from an
// unordered variable pair to its real coefficient. A self-pair is the
// linear (diagonal) term of that variable.
//
// Insertion semantics are accumulate-by-addition: contributions from
// different penalty terms targeting the same pair are summed, never
// overwritten. The zero value is not usable; construct with New.
type QUBO map[Pair]float64

// New returns an empty QUBO model.
func New() QUBO {
	return make(QUBO)
}

// Add accumulates coeff onto the unordered pair (u,v).
// Add(v, v, c) contributes to the linear term of v.
func (q QUBO) Add(u, v Var, coeff float64) {
	q[NewPair(u, v)] += coeff
}

// Get returns the coefficient stored for the unordered pair (u,v),
// or 0 if the pair is absent.
func (q QUBO) Get(u, v Var) float64 {
	return q[NewPair(u, v)]
}

// Variables returns every variable appearing in the model, sorted and
// deduplicated. Complexity: O(|Q|·log|Q|).
func (q QUBO) Variables() []Var {
	seen := make(map[Var]struct{}, len(q))
	for p := range q {
		seen[p.U] = struct{}{}
		seen[p.V] = struct{}{}
	}
	vars := make([]Var, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	return vars
}

// Linear returns the diagonal terms as a variable→coefficient map.
// Together with Quadratic it matches the (linear, quadratic) split that
// binary-quadratic-model adapters expect.
func (q QUBO) Linear() map[Var]float64 {
	out := make(map[Var]float64)
	for p, c := range q {
		if p.Diagonal() {
			out[p.U] = c
		}
	}

	return out
}

// Quadratic returns the off-diagonal terms as a pair→coefficient map.
func (q QUBO) Quadratic() map[Pair]float64 {
	out := make(map[Pair]float64)
	for p, c := range q {
		if !p.Diagonal() {
			out[p] = c
		}
	}

	return out
}

// Evaluate computes the model energy Σ Q(u,v)·a(u)·a(v) at the given
// assignment. Absent variables count as 0; any non-zero value counts as 1.
//
// Constant offsets dropped during construction (see AddSquaredForm) are
// not part of the returned energy; they shift every assignment equally
// and never change the minimizer.
func (q QUBO) Evaluate(a Assignment) float64 {
	var energy float64
	for p, c := range q {
		if a[p.U] != 0 && a[p.V] != 0 {
			energy += c
		}
	}

	return energy
}

// Clone returns a deep copy of the model.
func (q QUBO) Clone() QUBO {
	out := make(QUBO, len(q))
	for p, c := range q {
		out[p] = c
	}

	return out
}
