package tiling

import (
	"fmt"
	"sort"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
)

// Arena is the flat owning store of tiles. Every tile in a tree lives here;
// containers refer to their children by TileID only. Handles come from a
// monotonic counter and are never reused.
//
// The arena is exclusively owned by one session and mutated from a single
// goroutine, so it carries no locking.
type Arena struct {
	tiles map[TileID]*Tile
	next  TileID
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{tiles: make(map[TileID]*Tile), next: 1}
}

func (a *Arena) alloc() TileID {
	id := a.next
	a.next++
	return id
}

// InsertPane creates a fresh pane tile owning the given panel content and
// returns its handle.
func (a *Arena) InsertPane(p entity.Panel) TileID {
	id := a.alloc()
	a.tiles[id] = newPane(p)
	return id
}

// InsertContainer creates a fresh container tile of the given kind with the
// given ordered children and returns its handle. It does not verify that the
// children exist; callers wire children they just created.
func (a *Arena) InsertContainer(kind Kind, children ...TileID) TileID {
	if !kind.IsContainer() {
		panic(fmt.Sprintf("tiling: InsertContainer called with %v", kind))
	}
	id := a.alloc()
	a.tiles[id] = newContainer(kind, children)
	return id
}

// Get returns the tile for a handle.
func (a *Arena) Get(id TileID) (*Tile, bool) {
	t, ok := a.tiles[id]
	return t, ok
}

// Contains reports whether a handle resolves to a live tile.
func (a *Arena) Contains(id TileID) bool {
	_, ok := a.tiles[id]
	return ok
}

// Remove detaches the tile from the arena and returns it. Descendants are
// not removed; the caller decides cascade policy. The core only ever removes
// leaf pane tiles directly and lets simplification collect emptied
// containers.
func (a *Arena) Remove(id TileID) (*Tile, bool) {
	t, ok := a.tiles[id]
	if !ok {
		return nil, false
	}
	delete(a.tiles, id)
	return t, true
}

// Len returns the number of live tiles.
func (a *Arena) Len() int { return len(a.tiles) }

// IDs returns all live handles in ascending order. Sorting keeps traversal
// order deterministic; map iteration order is not.
func (a *Arena) IDs() []TileID {
	ids := make([]TileID, 0, len(a.tiles))
	for id := range a.tiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FindParent returns the container whose children list holds child, or
// (NilTile, false) when child is the root or absent. Tiles carry no parent
// back-reference, so this is a linear scan over the arena; tree sizes are
// tens of tiles, which keeps the scan cheap. A reverse index would be a pure
// optimization with no behavioral change.
func (a *Arena) FindParent(child TileID) (TileID, bool) {
	for _, id := range a.IDs() {
		t := a.tiles[id]
		if t.IsContainer() && t.HasChild(child) {
			return id, true
		}
	}
	return NilTile, false
}
