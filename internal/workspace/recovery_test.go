package workspace

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

type fakePanel struct {
	id    entity.PanelID
	title string
}

func (p *fakePanel) ID() entity.PanelID { return p.id }
func (p *fakePanel) Title() string      { return p.title }
func (p *fakePanel) Pinned() bool       { return false }

// The dock recovery branch only triggers when a target container vanishes
// between resolution and attachment, which the public surface re-validates
// away. Exercising it directly pins down the rollback contract: the pane
// tile is withdrawn and the floating record is reconstructed, open, with its
// prior geometry.
func TestDockRecord_StaleTarget_RollsBackToFloating(t *testing.T) {
	// Arrange
	m := New(Options{Simplify: tiling.DefaultSimplifyOptions(), Logger: zerolog.Nop()})
	anchor := m.NewPane(&fakePanel{id: "panel-anchor", title: "Anchor"})
	m.SetRoot(m.NewTabs(anchor))
	tilesBefore := m.Tree().Arena().Len()

	rect := entity.Rect{X: 40, Y: 50, W: 300, H: 200}
	rec := &FloatingRecord{
		Panel: &fakePanel{id: "panel-x", title: "X"},
		Open:  true,
		Rect:  &rect,
	}

	// Act
	err := m.dockRecord(rec, tiling.TileID(999))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructural)
	assert.NotErrorIs(t, err, ErrRecovery)

	restored, ok := m.registry.Get("panel-x")
	require.True(t, ok, "panel must never be lost")
	assert.True(t, restored.Open)
	require.NotNil(t, restored.Rect)
	assert.Equal(t, rect, *restored.Rect)

	assert.Equal(t, tilesBefore, m.Tree().Arena().Len(), "in-flight pane tile withdrawn")
	assert.Empty(t, m.Validate())
}

func TestDockRecord_StaleTargetWithoutGeometry_AssignsDefault(t *testing.T) {
	// Arrange
	m := New(Options{Simplify: tiling.DefaultSimplifyOptions(), Logger: zerolog.Nop()})
	rec := &FloatingRecord{
		Panel: &fakePanel{id: "panel-y", title: "Y"},
	}

	// Act
	err := m.dockRecord(rec, tiling.NilTile)

	// Assert
	require.Error(t, err)
	restored, ok := m.registry.Get("panel-y")
	require.True(t, ok)
	assert.True(t, restored.Open)
	require.NotNil(t, restored.Rect)
	assert.Equal(t, entity.Rect{X: 100, Y: 100, W: 200, H: 200}, *restored.Rect)
}

func TestDockRecord_PaneTargetIsInvalid(t *testing.T) {
	// Arrange: a pane handle is live but not a tabs container.
	m := New(Options{Simplify: tiling.DefaultSimplifyOptions(), Logger: zerolog.Nop()})
	pane := m.NewPane(&fakePanel{id: "panel-anchor", title: "Anchor"})
	m.SetRoot(m.NewTabs(pane))

	rec := &FloatingRecord{Panel: &fakePanel{id: "panel-z", title: "Z"}, Open: true}

	// Act
	err := m.dockRecord(rec, pane)

	// Assert
	assert.ErrorIs(t, err, ErrStructural)
	assert.True(t, m.registry.Has("panel-z"))
}
