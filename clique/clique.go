package clique

import (
	"errors"

	"github.com/lvlath/go/core"

	"github.com/katalvlaran/quboin/qubo"
)

var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("clique: graph must not be nil")
	// ErrBadCliqueSize indicates k outside [1, |V|].
	ErrBadCliqueSize = errors.New("clique: clique size must be within [1, vertex count]")
)

// Options configures the clique penalties.
type Options struct {
	// Alpha penalizes selections whose size differs from k.
	Alpha float64
	// Beta rewards each selected edge; keep Alpha > Beta·k.
	Beta float64
}

// DefaultOptions returns the neutral scaling Alpha=1, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 1, Beta: 1}
}

// BuildK constructs the k-clique QUBO for an undirected graph. Vertices
// are enumerated in sorted-ID order as qubo.X(0)..qubo.X(n−1).
//
// Returns ErrNilGraph or ErrBadCliqueSize on bad parameters; graph query
// errors propagate unchanged.
//
// Complexity: O(n²) coefficients.
func BuildK(g *core.Graph, k int, opts Options) (qubo.QUBO, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if k < 1 || k > n {
		return nil, ErrBadCliqueSize
	}

	q := qubo.New()
	ids := g.Vertices()
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Size penalty: α·(Σx − k)² minus its constant.
	for i := 0; i < n; i++ {
		q.Add(qubo.X(i), qubo.X(i), opts.Alpha*(1-2*float64(k)))
		for j := i + 1; j < n; j++ {
			q.Add(qubo.X(i), qubo.X(j), 2*opts.Alpha)
		}
	}

	// Structure reward: selected edges lower the energy.
	for i, id := range ids {
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if j := index[nb]; j > i {
				q.Add(qubo.X(i), qubo.X(j), -opts.Beta)
			}
		}
	}

	return q, nil
}
