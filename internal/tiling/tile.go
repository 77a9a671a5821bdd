// Package tiling implements the tile arena and docking tree: a flat owning
// store of pane and container tiles keyed by opaque handles, plus the
// simplification pass that prunes degenerate containers after structural
// edits. The arena owns every tile by value; containers reference children
// by handle only, so shared ownership and reference cycles are impossible by
// construction.
package tiling

import (
	"errors"
	"fmt"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
)

// ErrTileNotFound is returned when a tile handle does not resolve.
var ErrTileNotFound = errors.New("tile not found")

// ErrNotAContainer is returned when a pane tile is used where a container is required.
var ErrNotAContainer = errors.New("tile is not a container")

// ErrNotAPane is returned when a container tile is used where a pane is required.
var ErrNotAPane = errors.New("tile is not a pane")

// ErrChildNotFound is returned when a child handle is not present in the
// container it was claimed to belong to.
var ErrChildNotFound = errors.New("child not found in container")

// TileID is an opaque, arena-local tile handle. Handles are allocated from a
// monotonic counter and never recycled, so two live tiles can never share one.
type TileID uint64

// NilTile is the zero handle; it never resolves to a tile.
const NilTile TileID = 0

func (id TileID) String() string {
	if id == NilTile {
		return "tile:nil"
	}
	return fmt.Sprintf("tile:%d", uint64(id))
}

// Kind discriminates the tile variants.
type Kind int

const (
	// KindPane is a leaf tile holding one panel's content.
	KindPane Kind = iota
	// KindTabs is a container showing one child at a time.
	KindTabs
	// KindHorizontal is a linear split laying children out left to right.
	KindHorizontal
	// KindVertical is a linear split laying children out top to bottom.
	KindVertical
)

func (k Kind) String() string {
	switch k {
	case KindPane:
		return "pane"
	case KindTabs:
		return "tabs"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsLinear reports whether the kind is a horizontal or vertical split.
func (k Kind) IsLinear() bool {
	return k == KindHorizontal || k == KindVertical
}

// IsContainer reports whether the kind holds children.
func (k Kind) IsContainer() bool {
	return k != KindPane
}

// Tile is a node in the docking tree: either a pane owning one panel's
// content, or a container holding an ordered list of child handles.
// Linear containers additionally carry a relative size share per child;
// tabs containers carry an active-child selection.
type Tile struct {
	kind     Kind
	panel    entity.Panel
	children []TileID
	shares   map[TileID]float64
	active   TileID
}

func newPane(p entity.Panel) *Tile {
	return &Tile{kind: KindPane, panel: p}
}

func newContainer(kind Kind, children []TileID) *Tile {
	t := &Tile{kind: kind, children: append([]TileID(nil), children...)}
	if kind.IsLinear() {
		t.shares = make(map[TileID]float64, len(children))
		for _, c := range children {
			t.shares[c] = 1
		}
	}
	return t
}

// Kind returns the tile variant.
func (t *Tile) Kind() Kind { return t.kind }

// IsPane reports whether the tile is a leaf pane.
func (t *Tile) IsPane() bool { return t.kind == KindPane }

// IsContainer reports whether the tile holds children.
func (t *Tile) IsContainer() bool { return t.kind.IsContainer() }

// IsTabs reports whether the tile is a tabs container.
func (t *Tile) IsTabs() bool { return t.kind == KindTabs }

// Panel returns the panel content of a pane tile, or nil for containers.
func (t *Tile) Panel() entity.Panel { return t.panel }

// Children returns the ordered child handles. The returned slice is a copy;
// mutate through AddChild/RemoveChild so shares and selection stay coherent.
func (t *Tile) Children() []TileID {
	return append([]TileID(nil), t.children...)
}

// ChildCount returns the number of children.
func (t *Tile) ChildCount() int { return len(t.children) }

// HasChild reports whether id is among the tile's children.
func (t *Tile) HasChild(id TileID) bool {
	for _, c := range t.children {
		if c == id {
			return true
		}
	}
	return false
}

// AddChild appends a child handle. Linear containers give new children a
// unit share.
func (t *Tile) AddChild(id TileID) {
	t.children = append(t.children, id)
	if t.shares != nil {
		t.shares[id] = 1
	}
}

// RemoveChild removes a child handle, reporting whether it was present.
// Removing a tabs container's active child clears the selection; the
// simplification pass repairs it afterwards.
func (t *Tile) RemoveChild(id TileID) bool {
	for i, c := range t.children {
		if c == id {
			t.children = append(t.children[:i], t.children[i+1:]...)
			if t.shares != nil {
				delete(t.shares, id)
			}
			if t.active == id {
				t.active = NilTile
			}
			return true
		}
	}
	return false
}

// ReplaceChild swaps old for new in place, preserving order and share.
func (t *Tile) ReplaceChild(old, new TileID) bool {
	for i, c := range t.children {
		if c == old {
			t.children[i] = new
			if t.shares != nil {
				t.shares[new] = t.shares[old]
				delete(t.shares, old)
			}
			if t.active == old {
				t.active = new
			}
			return true
		}
	}
	return false
}

// Active returns a tabs container's active child, or NilTile when no
// selection is set.
func (t *Tile) Active() TileID { return t.active }

// SetActive sets a tabs container's active child. The caller is responsible
// for ensuring membership; ActivateTab handling enforces it.
func (t *Tile) SetActive(id TileID) { t.active = id }

// Share returns the relative size weight of a child in a linear container.
// Children default to a unit share.
func (t *Tile) Share(id TileID) float64 {
	if t.shares == nil {
		return 1
	}
	if s, ok := t.shares[id]; ok {
		return s
	}
	return 1
}

// SetShare sets the relative size weight of a child in a linear container.
func (t *Tile) SetShare(id TileID, share float64) {
	if t.shares == nil || share <= 0 {
		return
	}
	t.shares[id] = share
}

// ShareSum returns the total of all child shares, used to normalize
// per-child allocations at render time.
func (t *Tile) ShareSum() float64 {
	var sum float64
	for _, c := range t.children {
		sum += t.Share(c)
	}
	return sum
}
