package coloring

import (
	"errors"

	"github.com/lvlath/go/core"

	"github.com/katalvlaran/quboin/qubo"
)

var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("coloring: graph must not be nil")
	// ErrBadColorCount indicates numColors < 1.
	ErrBadColorCount = errors.New("coloring: number of colors must be positive")
)

// Options configures the two coloring penalties. There is usually no
// reason to pick Alpha different from Beta.
type Options struct {
	// Alpha penalizes a vertex selecting zero or several colors.
	Alpha float64
	// Beta penalizes neighboring vertices sharing a color.
	Beta float64
}

// DefaultOptions returns the neutral scaling Alpha=1, Beta=1.
func DefaultOptions() Options {
	return Options{Alpha: 1, Beta: 1}
}

// Build constructs the k-coloring QUBO for an undirected graph.
//
// Deterministic: vertices are enumerated in sorted-ID order, and the slot
// for vertex index v and color c is qubo.X(v·numColors + c).
//
// Returns ErrNilGraph or ErrBadColorCount on bad parameters; graph query
// errors propagate unchanged.
func Build(g *core.Graph, numColors int, opts Options) (qubo.QUBO, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if numColors < 1 {
		return nil, ErrBadColorCount
	}

	q := qubo.New()
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	for idx, id := range ids {
		base := idx * numColors

		// Exactly-one-color penalty for this vertex.
		for c := 0; c < numColors; c++ {
			pos := base + c
			q.Add(qubo.X(pos), qubo.X(pos), -opts.Alpha)
			for d := c + 1; d < numColors; d++ {
				q.Add(qubo.X(pos), qubo.X(base+d), 2*opts.Alpha)
			}
		}

		// Same-color penalty across each edge, emitted once per edge.
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			nbIdx := index[nb]
			if nbIdx <= idx {
				continue
			}
			for c := 0; c < numColors; c++ {
				q.Add(qubo.X(base+c), qubo.X(nbIdx*numColors+c), opts.Beta)
			}
		}
	}

	return q, nil
}
