package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// buildDemoTree creates: horizontal[ vertical[ tabs(a, b), tabs(c) ], tabs(d) ]
func buildDemoTree(t *testing.T) (*tiling.Tree, map[string]tiling.TileID) {
	t.Helper()
	tree := tiling.NewTree()
	arena := tree.Arena()

	a := arena.InsertPane(newStubPanel("a"))
	b := arena.InsertPane(newStubPanel("b"))
	c := arena.InsertPane(newStubPanel("c"))
	d := arena.InsertPane(newStubPanel("d"))

	leftTop := arena.InsertContainer(tiling.KindTabs, a, b)
	leftBottom := arena.InsertContainer(tiling.KindTabs, c)
	left := arena.InsertContainer(tiling.KindVertical, leftTop, leftBottom)
	right := arena.InsertContainer(tiling.KindTabs, d)
	root := arena.InsertContainer(tiling.KindHorizontal, left, right)
	tree.SetRoot(root)

	return tree, map[string]tiling.TileID{
		"a": a, "b": b, "c": c, "d": d,
		"leftTop": leftTop, "leftBottom": leftBottom,
		"left": left, "right": right, "root": root,
	}
}

func TestTree_Walk_DepthFirstInChildOrder(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)

	// Act
	var visited []tiling.TileID
	tree.Walk(func(id tiling.TileID, _ *tiling.Tile, _ int) bool {
		visited = append(visited, id)
		return true
	})

	// Assert
	want := []tiling.TileID{
		ids["root"], ids["left"], ids["leftTop"], ids["a"], ids["b"],
		ids["leftBottom"], ids["c"], ids["right"], ids["d"],
	}
	assert.Equal(t, want, visited)
}

func TestTree_Walk_StopDescent(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)

	// Act
	var visited []tiling.TileID
	tree.Walk(func(id tiling.TileID, _ *tiling.Tile, _ int) bool {
		visited = append(visited, id)
		return id != ids["left"]
	})

	// Assert
	assert.Equal(t, []tiling.TileID{ids["root"], ids["left"], ids["right"], ids["d"]}, visited)
}

func TestTree_FirstTabs_BreadthFirst(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)

	// Act
	first, ok := tree.FirstTabs()

	// Assert
	require.True(t, ok)
	// The right tabs container sits one level above leftTop and leftBottom.
	assert.Equal(t, ids["right"], first)
}

func TestTree_FirstTabs_EmptyTree(t *testing.T) {
	// Arrange
	tree := tiling.NewTree()

	// Act
	_, ok := tree.FirstTabs()

	// Assert
	assert.False(t, ok)
}

func TestTree_AllTabs_FindsEveryContainer(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)

	// Act
	tabs := tree.AllTabs()

	// Assert
	assert.ElementsMatch(t, []tiling.TileID{ids["leftTop"], ids["leftBottom"], ids["right"]}, tabs)
}

func TestTree_FindPanel(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)

	// Act
	found, ok := tree.FindPanel("panel-c")
	_, missing := tree.FindPanel("panel-z")

	// Assert
	require.True(t, ok)
	assert.Equal(t, ids["c"], found)
	assert.False(t, missing)
}

func TestTree_PanelIDs(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)

	// Act
	mapping := tree.PanelIDs()

	// Assert
	require.Len(t, mapping, 4)
	assert.Equal(t, ids["a"], mapping["panel-a"])
	assert.Equal(t, ids["d"], mapping["panel-d"])
}
