// Package quboin turns classic combinatorial problems into QUBO models —
// Quadratic Unconstrained Binary Optimization forms ready for quantum
// annealers or any classical binary-quadratic-model sampler.
//
// 🚀 What is quboin?
//
//	A small, pure-Go library of QUBO formulations:
//		• Knapsack: direct quadratic penalty & exact slack-bit encodings
//		• Graph coloring: k-color feasibility models
//		• k-Clique: clique-of-size-k detection models
//		• Min vertex cover: covering-vs-size trade-off models
//		• N-Queens: exactly-n independent selections on conflict graphs
//		• DIMACS: edge-list reader for graph instances
//
// ✨ Why choose quboin?
//
//   - Solver-agnostic – output is a plain sparse map (variable pair → coefficient)
//   - Deterministic – identical inputs always yield identical models
//   - Pure functions – no globals, no hidden state, safe under concurrency
//   - Built on lvlath – graph problems consume core.Graph directly
//
// Under the hood, everything is organized per problem:
//
//	qubo/        — the sparse QUBO model type & squared-form expansion
//	knapsack/    — 0/1 knapsack builders + dataset loader
//	coloring/    — graph k-coloring builder
//	clique/      — k-clique builder
//	vertexcover/ — minimum vertex cover builder
//	nqueens/     — n-queens (conflict graph) builder
//	dimacs/      — DIMACS edge-list graph reader
//
// Quick sketch:
//
//	q := knapsack.Build(weights, profits, capacity, knapsack.DefaultOptions())
//	// feed q.Linear() / q.Quadratic() to your favourite BQM adapter
//
// Dive into each package's doc.go for the exact Hamiltonians, penalty
// trade-offs and complexity notes.
//
//	go get github.com/katalvlaran/quboin
package quboin
