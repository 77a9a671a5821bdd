package tiling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

type stubPanel struct {
	id     entity.PanelID
	title  string
	pinned bool
}

func (p *stubPanel) ID() entity.PanelID { return p.id }
func (p *stubPanel) Title() string      { return p.title }
func (p *stubPanel) Pinned() bool       { return p.pinned }

func newStubPanel(title string) *stubPanel {
	return &stubPanel{id: entity.PanelID("panel-" + title), title: title}
}

func TestArena_InsertPane_AllocatesMonotonicHandles(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()

	// Act
	first := arena.InsertPane(newStubPanel("a"))
	second := arena.InsertPane(newStubPanel("b"))

	// Assert
	assert.NotEqual(t, tiling.NilTile, first)
	assert.Greater(t, second, first)
}

func TestArena_Remove_NeverReusesHandles(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	first := arena.InsertPane(newStubPanel("a"))

	// Act
	_, removed := arena.Remove(first)
	second := arena.InsertPane(newStubPanel("b"))

	// Assert
	require.True(t, removed)
	assert.False(t, arena.Contains(first))
	assert.Greater(t, second, first)
}

func TestArena_Remove_UnknownHandle(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()

	// Act
	tile, ok := arena.Remove(tiling.TileID(42))

	// Assert
	assert.False(t, ok)
	assert.Nil(t, tile)
}

func TestArena_Remove_DoesNotCascade(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	pane := arena.InsertPane(newStubPanel("a"))
	tabs := arena.InsertContainer(tiling.KindTabs, pane)

	// Act
	arena.Remove(tabs)

	// Assert
	assert.True(t, arena.Contains(pane))
	assert.Equal(t, 1, arena.Len())
}

func TestArena_FindParent_ReturnsContainer(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	pane := arena.InsertPane(newStubPanel("a"))
	tabs := arena.InsertContainer(tiling.KindTabs, pane)

	// Act
	parent, ok := arena.FindParent(pane)

	// Assert
	require.True(t, ok)
	assert.Equal(t, tabs, parent)
}

func TestArena_FindParent_RootHasNone(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	pane := arena.InsertPane(newStubPanel("a"))
	tabs := arena.InsertContainer(tiling.KindTabs, pane)

	// Act
	parent, ok := arena.FindParent(tabs)

	// Assert
	assert.False(t, ok)
	assert.Equal(t, tiling.NilTile, parent)
}

func TestArena_IDs_SortedAscending(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	for i := 0; i < 5; i++ {
		arena.InsertPane(newStubPanel("p"))
	}

	// Act
	ids := arena.IDs()

	// Assert
	require.Len(t, ids, 5)
	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1])
	}
}

func TestArena_InsertContainer_RejectsPaneKind(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()

	// Act / Assert
	assert.Panics(t, func() {
		arena.InsertContainer(tiling.KindPane)
	})
}

func TestTile_RemoveChild_ClearsActiveSelection(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	a := arena.InsertPane(newStubPanel("a"))
	b := arena.InsertPane(newStubPanel("b"))
	tabsID := arena.InsertContainer(tiling.KindTabs, a, b)
	tabs, _ := arena.Get(tabsID)
	tabs.SetActive(a)

	// Act
	removed := tabs.RemoveChild(a)

	// Assert
	require.True(t, removed)
	assert.Equal(t, tiling.NilTile, tabs.Active())
	assert.Equal(t, 1, tabs.ChildCount())
}

func TestTile_Shares_DefaultToUnit(t *testing.T) {
	// Arrange
	arena := tiling.NewArena()
	a := arena.InsertPane(newStubPanel("a"))
	b := arena.InsertPane(newStubPanel("b"))
	splitID := arena.InsertContainer(tiling.KindHorizontal, a, b)
	split, _ := arena.Get(splitID)

	// Act
	split.SetShare(a, 3)

	// Assert
	assert.Equal(t, 3.0, split.Share(a))
	assert.Equal(t, 1.0, split.Share(b))
	assert.Equal(t, 4.0, split.ShareSum())
}
