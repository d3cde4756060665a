// Package coloring formulates graph k-coloring as a QUBO: can the vertices
// of an undirected graph be colored with numColors colors so that no edge
// joins two same-colored vertices?
//
// Model: one binary variable per (vertex, color) slot. Two penalties:
//
//   - Alpha — each vertex picks exactly one color. Expanding
//     α·(Σ_c x_{v,c} − 1)² gives diagonal −α and intra-vertex cross +2α
//     (the constant α per vertex is dropped).
//   - Beta  — adjacent vertices must differ: +β on every same-color pair
//     across an edge.
//
// A proper coloring exists iff the minimum energy equals −α·|V|.
//
// Vertices are indexed in sorted-ID order; the slot for vertex index v and
// color c is qubo.X(v·numColors + c).
//
// Complexity: O(|V|·k² + |E|·k) coefficients.
package coloring
