// Package clique formulates the k-clique decision problem as a QUBO:
// does an undirected graph contain a complete subgraph on k vertices?
//
// One binary variable per vertex (sorted-ID order, qubo.X(index)). The
// size penalty α·(Σx − k)² keeps exactly k selections (diagonal α·(1−2k),
// cross +2α, constant α·k² dropped); each present edge then rewards joint
// selection with −β, so a k-clique reaches the ground energy
// −α·k² − β·k(k−1)/2.
//
// Pick Alpha > Beta·k so that no edge reward can pay for breaking the
// size constraint.
package clique
