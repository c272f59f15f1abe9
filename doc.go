// Package pathfind is a single-source shortest-path toolkit for weighted
// graphs with non-negative edge weights.
//
// 🚀 What is pathfind?
//
//	A small, focused library that brings together:
//		• Core primitives: a weighted digraph with deterministic accessors
//		• Shortest paths: Dijkstra with swappable frontier strategies
//		• Path recovery: predecessor-chain reconstruction with defensive checks
//
// ✨ Why choose pathfind?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – ties always break by vertex ID, results are reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – functional options for frontier choice, distance caps,
//     impassable edges and cancellation
//
// Everything is organized under two subpackages:
//
//	core/     — the Graph type and its read-only accessors
//	dijkstra/ — the relaxation engine, frontier strategies and path recovery
//
// Quick ASCII example:
//
//	    (s)──1──(a)──2──(c)
//	      \       \       \
//	       5       1       1
//	        \       \       \
//	        (b)──2──(d)──2──(e)
//
//	shortest s→e is s→a→c→e with total cost 4.
//
// Dive into the package docs for full examples and the option reference.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
