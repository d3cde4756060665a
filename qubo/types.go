package qubo

import "strconv"

// Var identifies a binary variable within a QUBO model.
//
// Names are deterministic and index-derived so that repeated builds of the
// same instance produce identical models. Builders use X(i) for decision
// variables and S(k) for auxiliary slack bits.
type Var string

// X returns the i-th decision variable: X(0) == "x0", X(1) == "x1", …
func X(i int) Var {
	return Var("x" + strconv.Itoa(i))
}

// S returns the k-th auxiliary slack variable: S(0) == "s0", S(1) == "s1", …
func S(k int) Var {
	return Var("s" + strconv.Itoa(k))
}

// Pair is an unordered pair of variables keying one QUBO coefficient.
// A self-pair (U == V) holds the linear/diagonal term of that variable.
//
// Always construct pairs via NewPair so that (a,b) and (b,a) key the same
// coefficient.
type Pair struct {
	// U is the lexicographically smaller endpoint.
	U Var

	// V is the lexicographically larger endpoint.
	V Var
}

// NewPair returns the normalized unordered pair of u and v.
func NewPair(u, v Var) Pair {
	if v < u {
		u, v = v, u
	}

	return Pair{U: u, V: v}
}

// Diagonal reports whether p is a self-pair, i.e. a linear term.
func (p Pair) Diagonal() bool {
	return p.U == p.V
}

// Term is one weighted binary variable inside a linear form Σ cᵢ·vᵢ.
type Term struct {
	// Var is the binary variable.
	Var Var

	// Coeff is its weight in the form.
	Coeff float64
}

// Assignment maps variables to binary values. Any non-zero value counts
// as 1; variables absent from the map count as 0.
type Assignment map[Var]int
