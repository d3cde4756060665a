package qubo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/quboin/qubo"
)

// TestAddSquaredForm_MatchesBruteForce cross-checks the expansion of
// 10·(2x0 + 3x1 − 5)² against direct arithmetic over all four assignments.
// The stored model plus the returned constant offset must reproduce the
// squared form exactly.
func TestAddSquaredForm_MatchesBruteForce(t *testing.T) {
	q := qubo.New()
	terms := []qubo.Term{
		{Var: qubo.X(0), Coeff: 2},
		{Var: qubo.X(1), Coeff: 3},
	}
	offset := q.AddSquaredForm(terms, -5, 10)
	assert.Equal(t, 250.0, offset, "offset must be scale·shift²")

	for a0 := 0; a0 <= 1; a0++ {
		for a1 := 0; a1 <= 1; a1++ {
			form := 2*float64(a0) + 3*float64(a1) - 5
			want := 10 * form * form
			got := q.Evaluate(qubo.Assignment{"x0": a0, "x1": a1}) + offset
			assert.InDelta(t, want, got, 1e-12, "assignment (%d,%d)", a0, a1)
		}
	}
}

// TestAddSquaredForm_IdempotenceFold verifies that the squared single
// variable collapses into the diagonal: (2x)² must become 4x, never a
// separate self-quadratic term.
func TestAddSquaredForm_IdempotenceFold(t *testing.T) {
	q := qubo.New()
	offset := q.AddSquaredForm([]qubo.Term{{Var: qubo.X(0), Coeff: 2}}, 0, 1)

	assert.Equal(t, 0.0, offset)
	assert.Len(t, q, 1)
	assert.Equal(t, 4.0, q.Get(qubo.X(0), qubo.X(0)))
}

// TestAddSquaredForm_DuplicateVariable verifies that a variable listed
// twice in the form folds onto its diagonal: (1x + 2x)² = (3x)² = 9x.
func TestAddSquaredForm_DuplicateVariable(t *testing.T) {
	q := qubo.New()
	q.AddSquaredForm([]qubo.Term{
		{Var: qubo.X(0), Coeff: 1},
		{Var: qubo.X(0), Coeff: 2},
	}, 0, 1)

	assert.Len(t, q, 1)
	assert.Equal(t, 9.0, q.Get(qubo.X(0), qubo.X(0)))
}

// TestAddSquaredForm_AccumulatesOntoExisting verifies that the expansion
// merges into coefficients already present in the model.
func TestAddSquaredForm_AccumulatesOntoExisting(t *testing.T) {
	q := qubo.New()
	q.Add(qubo.X(0), qubo.X(0), -7) // a pre-existing objective term

	q.AddSquaredForm([]qubo.Term{{Var: qubo.X(0), Coeff: 1}}, -1, 1)
	// (x − 1)² contributes 1 − 2 = −1 to the diagonal.
	assert.Equal(t, -8.0, q.Get(qubo.X(0), qubo.X(0)))
}

// TestAddSquaredForm_MixedDecisionAndSlack covers the x/s variable mix the
// knapsack slack encoding relies on.
func TestAddSquaredForm_MixedDecisionAndSlack(t *testing.T) {
	q := qubo.New()
	terms := []qubo.Term{
		{Var: qubo.X(0), Coeff: 2},
		{Var: qubo.S(0), Coeff: 1},
	}
	offset := q.AddSquaredForm(terms, -2, 1)

	for a0 := 0; a0 <= 1; a0++ {
		for s0 := 0; s0 <= 1; s0++ {
			form := 2*float64(a0) + float64(s0) - 2
			got := q.Evaluate(qubo.Assignment{"x0": a0, "s0": s0}) + offset
			assert.InDelta(t, form*form, got, 1e-12)
		}
	}
}
