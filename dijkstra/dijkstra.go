// This file implements the relaxation engine: the public ShortestPaths /
// ShortestPath operations and the per-invocation runner behind them.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// ShortestPaths computes shortest distances from source to every vertex
// of g, together with the predecessor table for path reconstruction.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Inf if unreachable).
//   - prev: map from vertex ID to its predecessor on one shortest path.
//     The source and unreached vertices have no entry.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound,
//     ErrNegativeWeight, or a context error on cancellation.
//
// Complexity: O((V + E) log V) with BinaryHeap, O(V² + E) with LinearScan.
func ShortestPaths(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	r, err := newRunner(g, source, "", opts)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath computes one shortest path from source to target,
// stopping the search as soon as target's distance is finalized.
// The target is finalized the moment it is popped from the frontier;
// its own outgoing edges are never relaxed.
//
// Returns the forward-ordered vertex sequence (source first, target
// last) and the path's total cost. If source equals target the result
// is ([source], 0) without running the search.
//
// Errors: all of ShortestPaths' errors, plus ErrVertexNotFound for an
// unknown target and ErrUnreachable when the frontier is exhausted
// before reaching target.
//
// Complexity: as ShortestPaths, but typically less — the search stops
// at target discovery.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, int64, error) {
	r, err := newRunner(g, source, target, opts)
	if err != nil {
		return nil, 0, err
	}

	// An empty target would otherwise read as "no target" to the runner.
	if target == "" {
		return nil, 0, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	// Zero-cost trivial path; no loop iterations needed.
	if source == target {
		return []string{source}, 0, nil
	}

	if err = r.process(); err != nil {
		return nil, 0, err
	}

	cost := r.dist[target]
	if cost == Inf {
		return nil, 0, fmt.Errorf("%w: %q → %q", ErrUnreachable, source, target)
	}

	path, err := ReconstructPath(r.prev, source, target)
	if err != nil {
		return nil, 0, err
	}

	return path, cost, nil
}

// runner holds the mutable state for a single shortest-path execution.
// Every invocation gets a fresh runner; nothing here outlives the call
// except the dist/prev maps handed back as results.
type runner struct {
	g       *core.Graph       // The input graph; read-only for the whole run.
	opts    Options           // Resolved configuration.
	source  string            // Start vertex.
	target  string            // Stop-at vertex; empty means full run.
	dist    map[string]int64  // Vertex ID → current best distance from source.
	prev    map[string]string // Vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Vertex ID → distance finalized.
	front   frontier          // Pending vertices, minimum first.
}

// newRunner validates inputs in a fixed order (empty source, nil graph,
// source membership, then target membership) and initializes the
// distance table, predecessor table, visited set and frontier.
func newRunner(g *core.Graph, source, target string, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if target != "" && !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	vertices := g.Vertices()
	n := len(vertices)
	r := &runner{
		g:       g,
		opts:    cfg,
		source:  source,
		target:  target,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		front:   newFrontier(cfg.Frontier, n),
	}

	// Every vertex starts at +infinity; only the source is known.
	for _, v := range vertices {
		r.dist[v] = Inf
	}
	r.dist[source] = 0
	r.front.Push(source, 0)

	return r, nil
}

// process is the core loop: pop the nearest pending vertex, finalize it,
// and relax its outgoing edges. Stops when the frontier is exhausted,
// the target is finalized, or remaining distances exceed MaxDistance.
func (r *runner) process() error {
	for r.front.Len() > 0 {
		// Cancellation check once per pop — the loop boundary is the
		// engine's only suspension point.
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		u, d, ok := r.front.PopMin()
		if !ok {
			break
		}

		// Lazy deletion: a popped entry is valid only while its recorded
		// distance still matches the distance table. Stale duplicates
		// (heap strategy) and re-pops of finalized vertices are skipped.
		if r.visited[u] || d != r.dist[u] {
			continue
		}

		// Beyond the exploration cap nothing closer can ever surface;
		// the frontier is ordered, so stop outright.
		if d > r.opts.MaxDistance {
			break
		}

		r.visited[u] = true

		// Target discovered: its distance is final, stop before relaxing
		// its outgoing edges.
		if r.target != "" && u == r.target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing edge u → v and records strict
// improvements to v's tentative distance. Negative weights abort the
// run here — validation is lazy, at the point the edge is examined.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range neighbors {
		v, w := e.To, e.Weight

		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		// Impassable edge under the configured threshold.
		if w >= r.opts.InfEdgeThreshold {
			continue
		}

		// Finalized vertices cannot improve.
		if r.visited[v] {
			continue
		}

		// A sum past the representable range can never improve a finite
		// distance; skip instead of overflowing into a negative alt.
		if w > math.MaxInt64-du {
			continue
		}

		alt := du + w
		if alt > r.opts.MaxDistance {
			continue
		}

		// Strict improvement only; equal-cost alternatives never
		// overwrite an established predecessor.
		if alt >= r.dist[v] {
			continue
		}

		r.dist[v] = alt
		r.prev[v] = u
		r.front.Push(v, alt)
	}

	return nil
}
