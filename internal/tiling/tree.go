package tiling

import (
	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
)

// Tree wraps an arena with a designated root handle. An empty tree has no
// root (root == NilTile).
type Tree struct {
	arena *Arena
	root  TileID
}

// NewTree creates an empty tree with a fresh arena.
func NewTree() *Tree {
	return &Tree{arena: NewArena(), root: NilTile}
}

// Arena exposes the underlying tile store.
func (t *Tree) Arena() *Arena { return t.arena }

// Root returns the root handle, or NilTile when the tree is empty.
func (t *Tree) Root() TileID { return t.root }

// SetRoot designates a new root handle. NilTile empties the tree.
func (t *Tree) SetRoot(id TileID) { t.root = id }

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.root == NilTile || !t.arena.Contains(t.root)
}

// Walk traverses the tree depth-first in child order, the order the
// rendering layer draws nested tiles in. fn returning false stops descent
// into that subtree.
func (t *Tree) Walk(fn func(id TileID, tile *Tile, depth int) bool) {
	if t.IsEmpty() {
		return
	}
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(id TileID, depth int, fn func(TileID, *Tile, int) bool) {
	tile, ok := t.arena.Get(id)
	if !ok {
		return
	}
	if !fn(id, tile, depth) {
		return
	}
	for _, c := range tile.Children() {
		t.walk(c, depth+1, fn)
	}
}

// FirstTabs returns the first tabs container found by breadth-first
// traversal from the root. This is the fallback dock target when a panel's
// remembered parent is gone.
func (t *Tree) FirstTabs() (TileID, bool) {
	if t.IsEmpty() {
		return NilTile, false
	}
	queue := []TileID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		tile, ok := t.arena.Get(id)
		if !ok {
			continue
		}
		if tile.IsTabs() {
			return id, true
		}
		queue = append(queue, tile.Children()...)
	}
	return NilTile, false
}

// AllTabs returns every tabs container reachable from the root, in
// breadth-first order.
func (t *Tree) AllTabs() []TileID {
	var tabs []TileID
	if t.IsEmpty() {
		return tabs
	}
	queue := []TileID{t.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		tile, ok := t.arena.Get(id)
		if !ok {
			continue
		}
		if tile.IsTabs() {
			tabs = append(tabs, id)
		}
		queue = append(queue, tile.Children()...)
	}
	return tabs
}

// FindPanel returns the pane tile embedding the given panel identity, or
// (NilTile, false) if the panel is not in the tree.
func (t *Tree) FindPanel(id entity.PanelID) (TileID, bool) {
	found := NilTile
	t.Walk(func(tid TileID, tile *Tile, _ int) bool {
		if tile.IsPane() && tile.Panel() != nil && tile.Panel().ID() == id {
			found = tid
			return false
		}
		return true
	})
	return found, found != NilTile
}

// PanelIDs returns the identity of every panel embedded in the tree.
func (t *Tree) PanelIDs() map[entity.PanelID]TileID {
	ids := make(map[entity.PanelID]TileID)
	t.Walk(func(tid TileID, tile *Tile, _ int) bool {
		if tile.IsPane() && tile.Panel() != nil {
			ids[tile.Panel().ID()] = tid
		}
		return true
	})
	return ids
}
