package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

func removePane(t *testing.T, tree *tiling.Tree, parent, pane tiling.TileID) {
	t.Helper()
	pt, ok := tree.Arena().Get(parent)
	require.True(t, ok)
	require.True(t, pt.RemoveChild(pane))
	_, ok = tree.Arena().Remove(pane)
	require.True(t, ok)
}

func TestSimplify_PrunesEmptyTabs(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)
	removePane(t, tree, ids["leftBottom"], ids["c"])

	// Act
	tree.Simplify(ids["leftBottom"], tiling.DefaultSimplifyOptions())

	// Assert
	assert.False(t, tree.Arena().Contains(ids["leftBottom"]))
	left, _ := tree.Arena().Get(ids["left"])
	assert.Equal(t, []tiling.TileID{ids["leftTop"]}, left.Children())
}

func TestSimplify_EmptyPruneCascadesUpward(t *testing.T) {
	// Arrange: a vertical split holding a single tabs container with one pane.
	tree := tiling.NewTree()
	arena := tree.Arena()
	pane := arena.InsertPane(newStubPanel("only"))
	tabs := arena.InsertContainer(tiling.KindTabs, pane)
	split := arena.InsertContainer(tiling.KindVertical, tabs)
	root := arena.InsertContainer(tiling.KindHorizontal, split)
	tree.SetRoot(root)

	removePane(t, tree, tabs, pane)

	// Act
	tree.Simplify(tabs, tiling.DefaultSimplifyOptions())

	// Assert: tabs, split, and root all emptied in turn.
	assert.False(t, tree.Arena().Contains(tabs))
	assert.False(t, tree.Arena().Contains(split))
	assert.False(t, tree.Arena().Contains(root))
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Arena().Len())
}

func TestSimplify_EmptyPruneDisabled_KeepsContainer(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)
	removePane(t, tree, ids["leftBottom"], ids["c"])

	// Act
	tree.Simplify(ids["leftBottom"], tiling.SimplifyOptions{})

	// Assert
	assert.True(t, tree.Arena().Contains(ids["leftBottom"]))
	lb, _ := tree.Arena().Get(ids["leftBottom"])
	assert.Equal(t, 0, lb.ChildCount())
}

func TestSimplify_SingleChildTabs_KeptByDefault(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)
	leftTop, _ := tree.Arena().Get(ids["leftTop"])
	leftTop.SetActive(ids["a"])
	removePane(t, tree, ids["leftTop"], ids["a"])

	// Act
	tree.Simplify(ids["leftTop"], tiling.DefaultSimplifyOptions())

	// Assert: the tabs container survives with its selection repaired to the
	// remaining child.
	require.True(t, tree.Arena().Contains(ids["leftTop"]))
	assert.Equal(t, ids["b"], leftTop.Active())
}

func TestSimplify_SingleChildTabs_LiftedWhenEnabled(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)
	removePane(t, tree, ids["leftTop"], ids["a"])

	opts := tiling.DefaultSimplifyOptions()
	opts.PruneSingleChildTabs = true

	// Act
	tree.Simplify(ids["leftTop"], opts)

	// Assert: the pane replaces the tabs container in the vertical split.
	assert.False(t, tree.Arena().Contains(ids["leftTop"]))
	left, _ := tree.Arena().Get(ids["left"])
	assert.Equal(t, []tiling.TileID{ids["b"], ids["leftBottom"]}, left.Children())
}

func TestSimplify_SingleChildRoot_ChildBecomesRoot(t *testing.T) {
	// Arrange
	tree := tiling.NewTree()
	arena := tree.Arena()
	pane := arena.InsertPane(newStubPanel("only"))
	tabs := arena.InsertContainer(tiling.KindTabs, pane)
	root := arena.InsertContainer(tiling.KindHorizontal, tabs)
	tree.SetRoot(root)

	opts := tiling.DefaultSimplifyOptions()
	opts.PruneSingleChildContainers = true

	// Act
	tree.Simplify(root, opts)

	// Assert
	assert.Equal(t, tabs, tree.Root())
	assert.False(t, tree.Arena().Contains(root))
}

func TestSimplify_RepairsStaleActiveSelection(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)
	leftTop, _ := tree.Arena().Get(ids["leftTop"])
	leftTop.SetActive(tiling.TileID(999))

	// Act
	tree.Simplify(ids["leftTop"], tiling.DefaultSimplifyOptions())

	// Assert
	assert.Equal(t, ids["a"], leftTop.Active())
}

func TestSimplify_AllPanesMustHaveTabs_WrapsBarePanes(t *testing.T) {
	// Arrange: a horizontal split with a bare pane child.
	tree := tiling.NewTree()
	arena := tree.Arena()
	bare := arena.InsertPane(newStubPanel("bare"))
	tabbed := arena.InsertPane(newStubPanel("tabbed"))
	tabs := arena.InsertContainer(tiling.KindTabs, tabbed)
	root := arena.InsertContainer(tiling.KindHorizontal, bare, tabs)
	tree.SetRoot(root)

	opts := tiling.DefaultSimplifyOptions()
	opts.AllPanesMustHaveTabs = true

	// Act
	tree.Simplify(root, opts)

	// Assert: the bare pane now sits inside a fresh tabs wrapper.
	rootTile, _ := arena.Get(root)
	children := rootTile.Children()
	require.Len(t, children, 2)
	wrapper, ok := arena.Get(children[0])
	require.True(t, ok)
	assert.True(t, wrapper.IsTabs())
	assert.Equal(t, []tiling.TileID{bare}, wrapper.Children())
	assert.Equal(t, bare, wrapper.Active())
	assert.Equal(t, tabs, children[1])
}

func TestSimplify_StartAtPane_NoOp(t *testing.T) {
	// Arrange
	tree, ids := buildDemoTree(t)
	before := tree.Arena().Len()

	// Act
	tree.Simplify(ids["a"], tiling.DefaultSimplifyOptions())

	// Assert
	assert.Equal(t, before, tree.Arena().Len())
}
