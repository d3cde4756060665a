package vertexcover

import (
	"errors"

	"github.com/lvlath/go/core"

	"github.com/katalvlaran/quboin/qubo"
)

// ErrNilGraph indicates a nil graph was supplied.
var ErrNilGraph = errors.New("vertexcover: graph must not be nil")

// Options configures the cover penalties. Keep Beta < Alpha so that
// shrinking the cover never pays for uncovering an edge.
type Options struct {
	// Alpha penalizes uncovered edges.
	Alpha float64
	// Beta is the per-vertex cost of the cover.
	Beta float64
}

// DefaultOptions returns Alpha=2, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 2, Beta: 1}
}

// Build constructs the minimum vertex cover QUBO for an undirected graph.
// Vertices are enumerated in sorted-ID order as qubo.X(0)..qubo.X(n−1).
//
// Returns ErrNilGraph on a nil graph; graph query errors propagate
// unchanged.
//
// Complexity: O(|V| + |E|) coefficients.
func Build(g *core.Graph, opts Options) (qubo.QUBO, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	q := qubo.New()
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	for i, id := range ids {
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		q.Add(qubo.X(i), qubo.X(i), opts.Beta-opts.Alpha*float64(len(neighbors)))
		for _, nb := range neighbors {
			if j := index[nb]; j > i {
				q.Add(qubo.X(i), qubo.X(j), opts.Alpha)
			}
		}
	}

	return q, nil
}
