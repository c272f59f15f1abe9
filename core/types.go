// This file declares Graph, Edge, GraphOption, sentinel errors,
// and the NewGraph / FromMap constructors.

package core

import (
	"errors"
	"sync"
)

// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
var ErrVertexNotFound = errors.New("core: vertex not found")

// Edge is an outgoing adjacency entry: the neighbor vertex and the
// weight of the edge leading to it.
type Edge struct {
	// To is the neighbor vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge mirror every edge in both directions.
// By default edges are directed (from → to only).
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// Graph is an in-memory weighted graph backed by an adjacency map.
//
// The zero value is not usable; construct via NewGraph or FromMap.
// All mutations are protected by an internal RWMutex, so concurrent
// readers never observe a partially added edge.
type Graph struct {
	mu         sync.RWMutex
	undirected bool

	// adjacency[(from)ID][(to)ID] = weight
	adjacency map[string]map[string]int64
}

// NewGraph creates an empty Graph. Directed by default; pass
// WithUndirected() to mirror edges on insertion.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromMap builds a directed Graph from a nested adjacency map
// (vertex → neighbor → weight). The input is copied, never aliased, so
// later mutation of adj cannot affect the Graph. Neighbor IDs that only
// appear as map values become vertices with no outgoing edges.
// Complexity: O(V + E).
func FromMap(adj map[string]map[string]int64, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	for from, row := range adj {
		g.AddVertex(from)
		for to, w := range row {
			g.AddEdge(from, to, w)
		}
	}

	return g
}
