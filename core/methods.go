// This file provides the mutating builders (AddVertex, AddEdge) and the
// deterministic read-only accessors used by the algorithm packages.

package core

import (
	"fmt"
	"sort"
)

// AddVertex ensures a vertex with the given ID exists. Adding an existing
// vertex is a no-op, so vertex IDs are always unique within a Graph.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// AddEdge records an edge from → to with the given weight, creating
// missing endpoints on the fly. Re-adding an edge overwrites its weight.
// On an undirected Graph the reverse edge is recorded as well.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adjacency[from][to] = weight
	if g.undirected {
		g.adjacency[to][from] = weight
	}
}

// ensureVertex allocates the adjacency row for id. Caller holds mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]int64)
	}
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the outgoing edges of id, sorted by neighbor ID.
// Returns ErrVertexNotFound if id is not a member of the Graph.
// The result is a fresh slice; callers may retain or modify it freely.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	edges := make([]Edge, 0, len(row))
	for to, w := range row {
		edges = append(edges, Edge{To: to, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored directed adjacency entries.
// On an undirected Graph each logical edge contributes two entries.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, row := range g.adjacency {
		n += len(row)
	}

	return n
}
