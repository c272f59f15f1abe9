// This file implements predecessor-chain path reconstruction.

package dijkstra

import "fmt"

// ReconstructPath walks backward from target through the predecessor
// table until it reaches source, then returns the forward-ordered
// vertex sequence (source first, target last).
//
// The walk is pure over its inputs: reconstructing twice from the same
// table yields the same sequence. Returns ErrBrokenPath if the chain
// stops short of source or loops — either indicates corrupted tables,
// not bad caller input.
//
// Complexity: O(path length).
func ReconstructPath(prev map[string]string, source, target string) ([]string, error) {
	path := []string{target}

	// A well-formed chain visits each vertex at most once, so more than
	// len(prev)+1 hops means a cycle.
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: chain from %q stops at %q", ErrBrokenPath, target, cur)
		}
		cur = p
		path = append(path, cur)
		if len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: predecessor cycle reached from %q", ErrBrokenPath, target)
		}
	}

	// Reverse in place: the walk produced target → source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
