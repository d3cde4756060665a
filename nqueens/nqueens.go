package nqueens

import (
	"errors"

	"github.com/lvlath/go/core"

	"github.com/katalvlaran/quboin/qubo"
)

var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("nqueens: graph must not be nil")
	// ErrBadQueenCount indicates n < 1.
	ErrBadQueenCount = errors.New("nqueens: number of queens must be positive")
)

// Options configures the single penalty scale of the model.
type Options struct {
	// Alpha scales both the exactly-n and the conflict penalties.
	Alpha float64
}

// DefaultOptions returns Alpha=1.
func DefaultOptions() Options {
	return Options{Alpha: 1}
}

// Build constructs the n-queens QUBO over a conflict graph. Vertices are
// enumerated in sorted-ID order as qubo.X(0)..qubo.X(count−1).
//
// Returns ErrNilGraph or ErrBadQueenCount on bad parameters; graph query
// errors propagate unchanged.
//
// Complexity: O(|V|²) coefficients.
func Build(g *core.Graph, n int, opts Options) (qubo.QUBO, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if n < 1 {
		return nil, ErrBadQueenCount
	}

	q := qubo.New()
	ids := g.Vertices()
	count := len(ids)
	index := make(map[string]int, count)
	for i, id := range ids {
		index[id] = i
	}

	// Exactly-n penalty: α·(Σx − n)² minus its constant.
	for i := 0; i < count; i++ {
		q.Add(qubo.X(i), qubo.X(i), opts.Alpha*(1-2*float64(n)))
		for j := i + 1; j < count; j++ {
			q.Add(qubo.X(i), qubo.X(j), 2*opts.Alpha)
		}
	}

	// Conflict penalty on each attacking pair.
	for i, id := range ids {
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if j := index[nb]; j > i {
				q.Add(qubo.X(i), qubo.X(j), opts.Alpha)
			}
		}
	}

	return q, nil
}
