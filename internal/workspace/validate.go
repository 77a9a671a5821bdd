package workspace

import (
	"fmt"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// Validate runs the diagnostic invariant pass over the tree and registry and
// returns one error per violation. A healthy workspace returns nil. The pass
// never mutates state; it exists to surface handler bugs early, not to
// repair them.
func (m *Manager) Validate() []error {
	var errs []error
	errs = append(errs, m.checkShape()...)
	errs = append(errs, m.checkTiles()...)
	errs = append(errs, m.checkExclusivity()...)
	return errs
}

// checkShape verifies the tree is a tree: the root resolves, every child
// reference resolves, no tile has two parents, no reference cycles exist,
// and every live tile is reachable from the root.
func (m *Manager) checkShape() []error {
	var errs []error
	arena := m.tree.Arena()
	root := m.tree.Root()

	if root == tiling.NilTile {
		if arena.Len() > 0 {
			errs = append(errs, fmt.Errorf("tree has no root but arena holds %d tiles", arena.Len()))
		}
		return errs
	}
	if !arena.Contains(root) {
		return append(errs, fmt.Errorf("root %s does not resolve to a live tile", root))
	}

	parents := make(map[tiling.TileID]tiling.TileID)
	for _, id := range arena.IDs() {
		t, _ := arena.Get(id)
		for _, c := range t.Children() {
			if !arena.Contains(c) {
				errs = append(errs, fmt.Errorf("container %s references dead child %s", id, c))
				continue
			}
			if prev, dup := parents[c]; dup {
				errs = append(errs, fmt.Errorf("tile %s has two parents, %s and %s", c, prev, id))
				continue
			}
			parents[c] = id
		}
	}
	if p, ok := parents[root]; ok {
		errs = append(errs, fmt.Errorf("root %s is a child of %s", root, p))
	}

	reachable := make(map[tiling.TileID]bool)
	var visit func(id tiling.TileID)
	visit = func(id tiling.TileID) {
		if reachable[id] {
			errs = append(errs, fmt.Errorf("cycle through tile %s", id))
			return
		}
		reachable[id] = true
		if t, ok := arena.Get(id); ok {
			for _, c := range t.Children() {
				visit(c)
			}
		}
	}
	visit(root)

	for _, id := range arena.IDs() {
		if !reachable[id] {
			errs = append(errs, fmt.Errorf("tile %s is unreachable from root %s", id, root))
		}
	}
	return errs
}

// checkTiles verifies per-tile consistency: panes own a panel, containers
// do not, and a tabs container's active handle names one of its children.
func (m *Manager) checkTiles() []error {
	var errs []error
	arena := m.tree.Arena()
	for _, id := range arena.IDs() {
		t, _ := arena.Get(id)
		switch {
		case t.IsPane():
			if t.Panel() == nil {
				errs = append(errs, fmt.Errorf("pane %s owns no panel", id))
			}
		case t.IsTabs():
			active := t.Active()
			if t.ChildCount() == 0 {
				if active != tiling.NilTile {
					errs = append(errs, fmt.Errorf("empty tabs %s has active %s", id, active))
				}
				continue
			}
			if active == tiling.NilTile {
				errs = append(errs, fmt.Errorf("tabs %s has children but no active tab", id))
			} else if !t.HasChild(active) {
				errs = append(errs, fmt.Errorf("tabs %s active %s is not among its children", id, active))
			}
		}
	}
	return errs
}

// checkExclusivity verifies every panel identity has exactly one home:
// docked in the tree or recorded in the floating registry, never both and
// never twice.
func (m *Manager) checkExclusivity() []error {
	var errs []error
	seen := make(map[entity.PanelID]string)

	m.tree.Walk(func(id tiling.TileID, t *tiling.Tile, _ int) bool {
		if !t.IsPane() || t.Panel() == nil {
			return true
		}
		pid := t.Panel().ID()
		if where, dup := seen[pid]; dup {
			errs = append(errs, fmt.Errorf("panel %s docked at %s already present %s", pid, id, where))
		} else {
			seen[pid] = fmt.Sprintf("at tile %s", id)
		}
		return true
	})

	for _, pid := range m.registry.PanelIDs() {
		if where, dup := seen[pid]; dup {
			errs = append(errs, fmt.Errorf("panel %s floating and also %s", pid, where))
		} else {
			seen[pid] = "in the floating registry"
		}
	}
	return errs
}
