// This file declares the sentinel errors, the frontier Strategy
// enumeration, and the functional options accepted by ShortestPaths
// and ShortestPath.

package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Inf is the distance reported for vertices the search never reached.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by the shortest-path operations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates that the source or target vertex does
	// not exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was
	// encountered during relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that the requested target cannot be
	// reached from the source.
	ErrUnreachable = errors.New("dijkstra: target not reachable from source")

	// ErrBrokenPath indicates that a predecessor chain did not terminate
	// at the source during path reconstruction. This signals corrupted
	// distance/predecessor state, not invalid caller input.
	ErrBrokenPath = errors.New("dijkstra: predecessor chain does not reach source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero
	// or negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Strategy selects the frontier implementation used to pick the next
// unvisited vertex with minimal tentative distance.
type Strategy int

const (
	// BinaryHeap uses a container/heap min-heap with lazy deletion.
	// Pops cost O(log V); stale duplicate entries are skipped at pop time.
	BinaryHeap Strategy = iota

	// LinearScan rescans the pending vertices on every pop. Pops cost
	// O(V); no duplicates ever exist, updates overwrite in place.
	LinearScan
)

// Options configures a single shortest-path invocation.
//
// Frontier         – which Strategy picks the next vertex (default BinaryHeap).
// Ctx              – cancellation context, checked once per frontier pop.
// MaxDistance      – vertices farther than this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no walls).
type Options struct {
	Frontier         Strategy        // Frontier selection policy
	Ctx              context.Context // Cancellation and deadlines
	MaxDistance      int64           // Maximum distance to explore
	InfEdgeThreshold int64           // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithFrontier selects the frontier strategy. Both strategies return
// identical distance tables; they differ only in asymptotic cost.
func WithFrontier(s Strategy) Option {
	return func(o *Options) {
		o.Frontier = s
	}
}

// WithContext sets a custom context for cancellation. The engine checks
// it between frontier pops, the natural suspension point of the loop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance would exceed this value are not explored and keep
// distance Inf. Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight). Edges with
// weight ≥ threshold are skipped entirely. Zero or negative values
// panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the baseline configuration:
//   - Frontier:         BinaryHeap.
//   - Ctx:              context.Background() (no cancellation).
//   - MaxDistance:      math.MaxInt64 (explore everything reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Frontier:         BinaryHeap,
		Ctx:              context.Background(),
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
