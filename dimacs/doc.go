// Package dimacs reads undirected graphs from DIMACS edge-list files,
// the de-facto exchange format of clique and coloring benchmarks.
//
// Only two line kinds matter: comments starting with "c" are skipped, and
// "e u v" lines add an undirected edge between vertices u and v. Problem
// lines ("p …") and anything else are ignored. Vertex labels are kept as
// strings, ready for the core.Graph consumers in this module.
package dimacs
