// Package nqueens formulates the n-queens puzzle as a QUBO over a conflict
// graph: board squares are vertices, and an edge joins every pair of
// squares that share a row, column or diagonal.
//
// One binary variable per square (sorted-ID order, qubo.X(index)). A
// single penalty scale drives both constraints: α·(Σx − n)² keeps exactly
// n queens on the board (diagonal α·(1−2n), cross +2α, constant α·n²
// dropped), and each conflict edge adds +α so attacking pairs are never
// selected together. A valid placement reaches the ground energy −α·n².
//
// The package places no board semantics on the graph — any conflict graph
// works, which makes "select exactly n pairwise non-adjacent vertices"
// the general model.
package nqueens
