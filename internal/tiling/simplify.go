package tiling

// SimplifyOptions is the policy bundle controlling which degenerate
// containers the simplification pass removes. Each toggle is independent so
// a host application can keep, say, single-child tabs for stable tab bars
// while still collecting empty containers.
type SimplifyOptions struct {
	PruneEmptyTabs             bool
	PruneEmptyContainers       bool
	PruneSingleChildTabs       bool
	PruneSingleChildContainers bool
	AllPanesMustHaveTabs       bool
}

// DefaultSimplifyOptions prunes empty tabs and empty linear containers and
// leaves single-child containers alone, keeping tab bars stable when a
// container is down to its last pane.
func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{
		PruneEmptyTabs:       true,
		PruneEmptyContainers: true,
	}
}

func (o SimplifyOptions) pruneEmpty(kind Kind) bool {
	if kind == KindTabs {
		return o.PruneEmptyTabs
	}
	return o.PruneEmptyContainers
}

func (o SimplifyOptions) pruneSingle(kind Kind) bool {
	if kind == KindTabs {
		return o.PruneSingleChildTabs
	}
	return o.PruneSingleChildContainers
}

// Simplify prunes degenerate containers starting at the given container and
// walking toward the root. It must run after every structural removal so the
// tree never accumulates dangling empty containers. Pruning a container
// removes it from its own parent's children; the walk continues upward only
// as long as each removal leaves the parent itself degenerate under the
// policy.
func (t *Tree) Simplify(start TileID, opts SimplifyOptions) {
	id := start
	for id != NilTile {
		tile, ok := t.arena.Get(id)
		if !ok || !tile.IsContainer() {
			return
		}

		t.repairActive(tile)
		if opts.AllPanesMustHaveTabs && tile.Kind().IsLinear() {
			t.wrapPaneChildren(tile)
		}

		switch {
		case tile.ChildCount() == 0 && opts.pruneEmpty(tile.Kind()):
			id = t.pruneContainer(id)

		case tile.ChildCount() == 1 && opts.pruneSingle(tile.Kind()):
			child := tile.Children()[0]
			parent := t.liftOnlyChild(id, child)
			id = parent

		default:
			return
		}
	}
}

// repairActive restores invariant 4: a tabs container's selection must be one
// of its current children. A cleared or stale selection falls back to the
// first remaining child.
func (t *Tree) repairActive(tile *Tile) {
	if !tile.IsTabs() {
		return
	}
	if tile.Active() != NilTile && tile.HasChild(tile.Active()) {
		return
	}
	if tile.ChildCount() > 0 {
		tile.SetActive(tile.Children()[0])
	} else {
		tile.SetActive(NilTile)
	}
}

// pruneContainer removes an empty container from the arena and from its
// parent's children, returning the parent so the caller can keep walking
// upward. Pruning the root empties the tree.
func (t *Tree) pruneContainer(id TileID) TileID {
	parent, hasParent := t.arena.FindParent(id)
	t.arena.Remove(id)
	if hasParent {
		if pt, ok := t.arena.Get(parent); ok {
			pt.RemoveChild(id)
		}
		return parent
	}
	if t.root == id {
		t.root = NilTile
	}
	return NilTile
}

// liftOnlyChild replaces a single-child container with that child in the
// container's parent (or as the new root), returning the parent.
func (t *Tree) liftOnlyChild(id, child TileID) TileID {
	parent, hasParent := t.arena.FindParent(id)
	t.arena.Remove(id)
	if hasParent {
		if pt, ok := t.arena.Get(parent); ok {
			pt.ReplaceChild(id, child)
			t.repairActive(pt)
		}
		return parent
	}
	if t.root == id {
		t.root = child
	}
	return NilTile
}

// wrapPaneChildren enforces the all-panes-must-have-tabs policy: any pane
// sitting directly under a linear split gets wrapped in a fresh tabs
// container holding just that pane.
func (t *Tree) wrapPaneChildren(tile *Tile) {
	for _, child := range tile.Children() {
		ct, ok := t.arena.Get(child)
		if !ok || !ct.IsPane() {
			continue
		}
		wrapper := t.arena.InsertContainer(KindTabs, child)
		if wt, ok := t.arena.Get(wrapper); ok {
			wt.SetActive(child)
		}
		tile.ReplaceChild(child, wrapper)
	}
}
