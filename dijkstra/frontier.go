// This file implements the two frontier strategies behind the Strategy
// enumeration: a rescanning linear frontier and a lazy-deletion binary
// min-heap. Both break distance ties toward the lowest vertex ID.

package dijkstra

import "container/heap"

// frontier yields the pending vertex with the smallest tentative
// distance. Push records (or improves) a vertex's tentative distance;
// PopMin removes and returns the minimum entry, ok=false when empty.
//
// Implementations may return stale entries from PopMin (the heap does);
// the engine validates each popped entry against the distance table.
type frontier interface {
	Push(id string, dist int64)
	PopMin() (id string, dist int64, ok bool)
	Len() int
}

// newFrontier constructs the frontier for the given strategy.
// Unknown values fall back to BinaryHeap.
func newFrontier(s Strategy, capacity int) frontier {
	if s == LinearScan {
		return make(linearFrontier, capacity)
	}

	return &heapFrontier{entries: make(entryHeap, 0, capacity)}
}

// linearFrontier stores pending vertices in a plain map and rescans it
// on every pop. Push overwrites in place, so no stale entries exist and
// each vertex appears at most once (an eager decrease-key).
type linearFrontier map[string]int64

func (f linearFrontier) Push(id string, dist int64) {
	f[id] = dist
}

// PopMin scans all pending entries and removes the one with the
// smallest (dist, id) pair. The ID comparison pins the tie-break for
// equal distances, keeping results deterministic.
func (f linearFrontier) PopMin() (string, int64, bool) {
	if len(f) == 0 {
		return "", 0, false
	}
	var (
		bestID   string
		bestDist int64
		found    bool
	)
	for id, d := range f {
		if !found || d < bestDist || (d == bestDist && id < bestID) {
			bestID, bestDist, found = id, d, true
		}
	}
	delete(f, bestID)

	return bestID, bestDist, true
}

func (f linearFrontier) Len() int { return len(f) }

// heapFrontier is a binary min-heap frontier ordered by (dist, id)
// ascending. Improving a vertex pushes a duplicate entry; the outdated
// one surfaces later and is discarded by the engine when its dist no
// longer matches the distance table ("lazy deletion"). This trades
// O(E) extra entries for not needing a decrease-key operation.
type heapFrontier struct {
	entries entryHeap
}

func (f *heapFrontier) Push(id string, dist int64) {
	heap.Push(&f.entries, heapEntry{id: id, dist: dist})
}

func (f *heapFrontier) PopMin() (string, int64, bool) {
	if f.entries.Len() == 0 {
		return "", 0, false
	}
	item := heap.Pop(&f.entries).(heapEntry)

	return item.id, item.dist, true
}

func (f *heapFrontier) Len() int { return f.entries.Len() }

// heapEntry pairs a vertex with the distance it was pushed at.
type heapEntry struct {
	id   string
	dist int64
}

// entryHeap implements heap.Interface over heapEntry values.
type entryHeap []heapEntry

func (h entryHeap) Len() int { return len(h) }

// Less orders by distance, then by vertex ID so that equal-distance
// entries pop in the same order as the linear strategy yields them.
func (h entryHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].id < h[j].id
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by container/heap only.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }

// Pop removes and returns the last element; called by container/heap only.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
