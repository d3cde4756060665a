package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lvlath/go/core"
)

// ErrMalformedEdge indicates an "e" line without exactly two endpoints.
var ErrMalformedEdge = errors.New("dimacs: malformed edge line")

// ReadGraph parses a DIMACS edge-list file into an undirected core.Graph.
//
// Lines starting with "c" (comments) and blank lines are skipped; each
// "e u v" line adds the undirected edge u–v (vertices are created on
// first sight); every other line kind is ignored. Missing files surface
// the os error unchanged; a bad edge line wraps ErrMalformedEdge.
func ReadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := core.NewGraph()
	if err != nil {
		return nil, fmt.Errorf("dimacs: creating graph: %w", err)
	}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		parts := strings.Fields(line)
		if parts[0] != "e" {
			continue
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, line)
		}
		if g.HasEdge(parts[1], parts[2]) {
			// Duplicate edge lines occur in the wild; keep the graph simple.
			continue
		}
		if _, err = g.AddEdge(parts[1], parts[2], 0); err != nil {
			return nil, fmt.Errorf("dimacs: adding edge %q: %w", line, err)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: reading %s: %w", path, err)
	}

	return g, nil
}
