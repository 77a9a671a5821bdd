package workspace

import (
	"fmt"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// handleUndock moves a docked pane to FloatingOpen: the tile leaves the
// tree, a floating record with a default geometry takes ownership, and the
// emptied parent is simplified.
func (m *Manager) handleUndock(tile tiling.TileID) error {
	return m.detachPane(tile, true)
}

// handleCloseDocked moves a docked pane to FloatingClosed. Identical
// mechanics to undock, but the record starts hidden and without geometry;
// the remembered parent still enables smart redocking on reopen.
func (m *Manager) handleCloseDocked(tile tiling.TileID) error {
	return m.detachPane(tile, false)
}

// detachPane removes the pane at tile from the tree and hands its panel to
// the registry. Between the arena removal and the registry insert the panel
// is in flight; both steps complete within this call, so the state is never
// observable.
func (m *Manager) detachPane(tile tiling.TileID, open bool) error {
	t, ok := m.tree.Arena().Get(tile)
	if !ok {
		return fmt.Errorf("%w: %s", ErrStructural, tile)
	}
	if !t.IsPane() || t.Panel() == nil {
		return fmt.Errorf("%w: %s is not a pane", ErrStructural, tile)
	}
	panel := t.Panel()
	if panel.Pinned() {
		return fmt.Errorf("%w: panel %q is pinned", ErrPermission, panel.Title())
	}

	parent, ok := m.tree.Arena().FindParent(tile)
	if !ok {
		if m.tree.Root() == tile {
			return fmt.Errorf("%w: cannot detach the root tile %s", ErrStructural, tile)
		}
		return fmt.Errorf("%w: no parent for %s", ErrStructural, tile)
	}
	pt, ok := m.tree.Arena().Get(parent)
	if !ok || !pt.IsContainer() {
		return fmt.Errorf("%w: parent %s is not a container", ErrStructural, parent)
	}

	pt.RemoveChild(tile)
	m.tree.Arena().Remove(tile)

	rec := &FloatingRecord{Panel: panel, Open: open, LastParent: parent}
	if open {
		r := m.defaultRectFor(panel)
		rec.Rect = &r
	}
	m.registry.Add(rec)

	m.tree.Simplify(parent, m.opts.Simplify)

	m.logger.Info().
		Str("panel", string(panel.ID())).
		Str("title", panel.Title()).
		Bool("open", open).
		Stringer("last_parent", parent).
		Msg("panel detached")
	return nil
}

// handleDock moves a FloatingOpen panel back into the tree at the resolved
// dock target.
func (m *Manager) handleDock(id entity.PanelID) error {
	rec, ok := m.registry.Remove(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	target := m.resolveDockTarget(rec.LastParent)
	return m.dockRecord(rec, target)
}

// handleDockToTarget docks with an advisory target hint. The hint is used
// only when it still names a live tabs container; otherwise resolution falls
// back to the same order as a plain dock. The hint is never a correctness
// requirement.
func (m *Manager) handleDockToTarget(id entity.PanelID, hint tiling.TileID) error {
	rec, ok := m.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}

	target := tiling.NilTile
	if hint != tiling.NilTile {
		for _, id := range m.tree.AllTabs() {
			if id == hint {
				target = hint
				break
			}
		}
		if target == tiling.NilTile {
			m.logger.Debug().Stringer("hint", hint).Msg("ignoring stale dock target hint")
		}
	}
	m.registry.Remove(id)
	if target == tiling.NilTile {
		target = m.resolveDockTarget(rec.LastParent)
	}
	return m.dockRecord(rec, target)
}

// resolveDockTarget picks the tabs container a panel re-enters the tree
// through. The tie-break order is load-bearing: the remembered parent first
// (preserving the user's prior arrangement), then the first tabs container
// found by traversal, and only then a synthesized new root.
func (m *Manager) resolveDockTarget(lastParent tiling.TileID) tiling.TileID {
	if lastParent != tiling.NilTile {
		if t, ok := m.tree.Arena().Get(lastParent); ok && t.IsTabs() {
			return lastParent
		}
	}
	if id, ok := m.tree.FirstTabs(); ok {
		return id
	}
	return m.synthesizeRoot()
}

// synthesizeRoot creates a fresh tabs container and makes it the tree root.
// A pre-existing root with no tabs container anywhere (for example a lone
// linear split) is discarded from the tree; any panels embedded in it move
// to the registry as closed records so nothing is lost.
func (m *Manager) synthesizeRoot() tiling.TileID {
	if !m.tree.IsEmpty() {
		m.logger.Warn().
			Stringer("old_root", m.tree.Root()).
			Msg("no tabs container anywhere, replacing root")
		m.sweepSubtree(m.tree.Root())
	}
	root := m.tree.Arena().InsertContainer(tiling.KindTabs)
	m.tree.SetRoot(root)
	m.logger.Info().Stringer("root", root).Msg("synthesized tabs root")
	return root
}

// sweepSubtree removes a discarded subtree from the arena, converting every
// embedded pane into a closed floating record.
func (m *Manager) sweepSubtree(id tiling.TileID) {
	t, ok := m.tree.Arena().Get(id)
	if !ok {
		return
	}
	for _, c := range t.Children() {
		m.sweepSubtree(c)
	}
	m.tree.Arena().Remove(id)
	if t.IsPane() && t.Panel() != nil {
		m.registry.Add(&FloatingRecord{Panel: t.Panel(), Open: false})
	}
}

// dockRecord inserts a fresh pane tile for the record's panel and appends it
// to the target tabs container, activating it. If the target turns out to
// be invalid the pane is pulled back out and the floating record is
// reconstructed with its prior geometry: the panel must never be lost, and a
// failed dock leaves it floating where the user can retry.
func (m *Manager) dockRecord(rec *FloatingRecord, target tiling.TileID) error {
	pane := m.tree.Arena().InsertPane(rec.Panel)

	t, ok := m.tree.Arena().Get(target)
	if !ok || !t.IsTabs() {
		return m.recoverDock(rec, pane, target)
	}

	t.AddChild(pane)
	t.SetActive(pane)

	m.logger.Info().
		Str("panel", string(rec.Panel.ID())).
		Str("title", rec.Panel.Title()).
		Stringer("target", target).
		Msg("panel docked")
	return nil
}

func (m *Manager) recoverDock(rec *FloatingRecord, pane, target tiling.TileID) error {
	removed, ok := m.tree.Arena().Remove(pane)
	if !ok || removed.Panel() == nil {
		// Unreachable as long as dockRecord inserted the pane above, but a
		// lost panel is the one failure that may never pass silently.
		return fmt.Errorf("%w: panel %s lost during dock", ErrRecovery, rec.Panel.ID())
	}
	if rec.Rect == nil {
		r := m.defaultRectFor(rec.Panel)
		rec.Rect = &r
	}
	rec.Open = true
	m.registry.Add(rec)

	m.logger.Warn().
		Str("panel", string(rec.Panel.ID())).
		Stringer("target", target).
		Msg("dock target invalid, panel restored to floating")
	return fmt.Errorf("%w: dock target %s is not a tabs container", ErrStructural, target)
}

// handleCloseFloating hides a visible floating panel. Geometry and the
// remembered parent are retained for reopening. Closing an already-closed
// panel is a successful no-op.
func (m *Manager) handleCloseFloating(id entity.PanelID) error {
	rec, ok := m.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	if !rec.Open {
		m.logger.Debug().Str("panel", string(id)).Msg("panel already closed")
		return nil
	}
	rec.Open = false
	m.logger.Info().Str("panel", string(id)).Msg("floating panel closed")
	return nil
}

// handleReopen makes a hidden panel visible again. When the remembered
// parent still names a live tabs container the panel redocks there,
// including the dock recovery branch; otherwise it reopens as a floating
// window, getting a default geometry if none was stored. Reopening an
// already-open panel is a successful no-op.
func (m *Manager) handleReopen(id entity.PanelID) error {
	rec, ok := m.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	if rec.Open {
		m.logger.Debug().Str("panel", string(id)).Msg("panel already open")
		return nil
	}

	if rec.LastParent != tiling.NilTile {
		if t, ok := m.tree.Arena().Get(rec.LastParent); ok && t.IsTabs() {
			m.registry.Remove(id)
			return m.dockRecord(rec, rec.LastParent)
		}
	}

	rec.Open = true
	if rec.Rect == nil {
		r := m.defaultRectFor(rec.Panel)
		rec.Rect = &r
	}
	m.logger.Info().Str("panel", string(id)).Msg("panel reopened floating")
	return nil
}

// handleActivateTab selects a tab within its parent tabs container.
func (m *Manager) handleActivateTab(tile tiling.TileID) error {
	parent, ok := m.tree.Arena().FindParent(tile)
	if !ok {
		return fmt.Errorf("%w: no parent for %s", ErrStructural, tile)
	}
	pt, ok := m.tree.Arena().Get(parent)
	if !ok || !pt.IsTabs() {
		return fmt.Errorf("%w: parent %s is not a tabs container", ErrStructural, parent)
	}
	if !pt.HasChild(tile) {
		return fmt.Errorf("%w: %s not a child of %s", ErrStructural, tile, parent)
	}
	pt.SetActive(tile)
	return nil
}
