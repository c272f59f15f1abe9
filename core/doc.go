// Package core defines the Graph type consumed by the pathfind algorithms.
//
// A Graph is a weighted digraph stored as an adjacency map
// (vertex ID → neighbor ID → weight). Construction is mutable; traversal
// treats the graph as read-only, so any number of concurrent shortest-path
// computations may share one Graph as long as nobody mutates it mid-run.
// Mutating accessors take a write lock, read accessors a read lock.
//
// Determinism: Vertices and Neighbors return their results sorted by
// vertex ID, so every iteration over the graph is reproducible. Algorithms
// in this module rely on that ordering for pinned tie-breaking.
//
// Weights are int64 and may be any value at construction time; algorithms
// that require non-negative weights (dijkstra) reject negative edges at
// the point the edge is examined, not here.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
package core
