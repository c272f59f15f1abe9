package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/pathfind/core"
)

// TestConcurrentReads verifies that a fully built Graph can be read from
// many goroutines at once, the sharing model the algorithm packages rely on.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), int64(i))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id := fmt.Sprintf("v%d", i)
				if !g.HasVertex(id) {
					t.Errorf("vertex %s missing", id)
					return
				}
				if _, err := g.Neighbors(id); err != nil {
					t.Errorf("Neighbors(%s): %v", id, err)
					return
				}
			}
			_ = g.Vertices()
		}()
	}
	wg.Wait()
}
