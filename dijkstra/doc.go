// Package dijkstra computes single-source shortest paths on weighted
// graphs with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths(g, source) returns the full distance and predecessor
//     tables from source to every vertex of g.
//   - ShortestPath(g, source, target) stops as soon as target is
//     finalized and returns the reconstructed vertex sequence plus its
//     total cost.
//   - The next vertex to finalize is chosen by a frontier strategy;
//     two interchangeable implementations are provided.
//
// Frontier strategies (WithFrontier):
//
//   - BinaryHeap (default): a container/heap min-heap keyed by
//     (distance, vertex ID) with lazy deletion — improving a vertex
//     pushes a fresh entry, and stale entries are discarded at pop time
//     when their recorded distance no longer matches the distance table.
//     O((V + E) log V) total.
//   - LinearScan: rescans the pending vertices on every pop. O(V²)
//     total, competitive on small or dense graphs and free of heap
//     bookkeeping.
//
// Both strategies produce identical distance tables for any valid
// input. Ties between equal-distance vertices always break toward the
// lowest vertex ID, so results are deterministic and comparable across
// strategies.
//
// Semantics worth knowing:
//
//   - Negative weights are rejected lazily, at the moment the offending
//     edge is examined during relaxation. A negative edge that the
//     search never reaches is never reported.
//   - With a target, the search stops at the moment the target is
//     popped from the frontier, before relaxing the target's own
//     outgoing edges.
//   - A target that the frontier exhausts without reaching yields
//     ErrUnreachable rather than an infinite cost; callers wanting the
//     full table should use ShortestPaths instead.
//   - Source equal to target short-circuits to ([source], 0).
//   - Distances only ever decrease during a run, and only strict
//     improvements overwrite a predecessor (ties never do).
//
// Options:
//
//   - WithFrontier(Strategy):     frontier selection policy.
//   - WithContext(ctx):           cancellation, checked between pops.
//   - WithMaxDistance(x):         vertices farther than x are not explored.
//   - WithInfEdgeThreshold(t):    edges with weight ≥ t are impassable.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNilGraph        - nil *core.Graph.
//   - ErrEmptySource     - empty source vertex ID.
//   - ErrVertexNotFound  - source or target absent from the graph.
//   - ErrNegativeWeight  - a negative edge weight was examined.
//   - ErrUnreachable     - target not reachable from source.
//   - ErrBrokenPath      - predecessor chain failed to reach the source
//     (defensive; indicates an engine bug, not bad input).
//
// Concurrency:
//
//	Each invocation owns its distance/predecessor/visited state and the
//	frontier; nothing is shared across calls. The graph is only read,
//	so any number of invocations may run concurrently over one Graph as
//	long as nobody mutates it mid-run.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with BinaryHeap, O(V² + E) with LinearScan.
//   - Space: O(V + E) with BinaryHeap (lazy duplicates), O(V) with LinearScan.
package dijkstra
