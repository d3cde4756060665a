// Package vertexcover formulates minimum vertex cover as a QUBO: select
// the fewest vertices of an undirected graph so that every edge touches a
// selected vertex.
//
// One binary variable per vertex (sorted-ID order, qubo.X(index)). The
// energy reduces to β·|S| − α·covered(S): diagonal β − α·deg(v), plus +α
// per edge. With Alpha > Beta every cover beats every non-cover, and
// among covers the smallest wins.
package vertexcover
