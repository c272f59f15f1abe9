package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Empty(t, g.Vertices())
	require.False(t, g.HasVertex("A"))
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("A")
	g.AddVertex("A")

	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex("A"))
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 3)

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.Equal(t, 1, g.EdgeCount())

	// B got created as a key with no outgoing edges.
	edges, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestAddEdge_OverwriteWeight(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 3)
	g.AddEdge("A", "B", 7)

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{To: "B", Weight: 7}}, edges)
}

func TestAddEdge_Undirected_Mirrors(t *testing.T) {
	g := core.NewGraph(core.WithUndirected())
	g.AddEdge("A", "B", 4)

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{To: "A", Weight: 4}}, fromB)
	require.Equal(t, 2, g.EdgeCount())
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"d", "b", "e", "a", "c"} {
		g.AddVertex(id)
	}

	require.Equal(t, []string{"a", "b", "c", "d", "e"}, g.Vertices())
}

func TestNeighbors_SortedByID(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("s", "b", 5)
	g.AddEdge("s", "a", 1)
	g.AddEdge("s", "c", 2)

	edges, err := g.Neighbors("s")
	require.NoError(t, err)
	require.Equal(t, []core.Edge{
		{To: "a", Weight: 1},
		{To: "b", Weight: 5},
		{To: "c", Weight: 2},
	}, edges)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrVertexNotFound))
}

func TestFromMap_CopiesInput(t *testing.T) {
	adj := map[string]map[string]int64{
		"s": {"a": 1, "b": 5},
		"a": {"b": 2},
	}
	g := core.FromMap(adj)

	// Mutating the source map must not leak into the Graph.
	adj["s"]["a"] = 99
	edges, err := g.Neighbors("s")
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{To: "a", Weight: 1}, {To: "b", Weight: 5}}, edges)
}

func TestFromMap_ValueOnlyNeighborsBecomeVertices(t *testing.T) {
	g := core.FromMap(map[string]map[string]int64{
		"a": {"b": 4, "c": 2},
	})

	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestFromMap_NegativeWeightAccepted(t *testing.T) {
	// Construction never validates weights; traversal does.
	g := core.FromMap(map[string]map[string]int64{"a": {"b": -1}})

	edges, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Equal(t, int64(-1), edges[0].Weight)
}
