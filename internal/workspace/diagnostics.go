package workspace

import (
	"fmt"
	"strings"

	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// DumpTree renders the docking tree and the floating registry as an indented
// text listing for logs and debugging.
func (m *Manager) DumpTree() string {
	var b strings.Builder

	if m.tree.IsEmpty() {
		b.WriteString("tree: <empty>\n")
	} else {
		b.WriteString("tree:\n")
		m.tree.Walk(func(id tiling.TileID, t *tiling.Tile, depth int) bool {
			indent := strings.Repeat("  ", depth+1)
			switch {
			case t.IsPane():
				title := "<no panel>"
				if t.Panel() != nil {
					title = t.Panel().Title()
				}
				fmt.Fprintf(&b, "%spane %s %q\n", indent, id, title)
			case t.IsTabs():
				fmt.Fprintf(&b, "%stabs %s (%d tabs, active %s)\n", indent, id, t.ChildCount(), t.Active())
			default:
				fmt.Fprintf(&b, "%s%s %s (%d children)\n", indent, t.Kind(), id, t.ChildCount())
			}
			return true
		})
	}

	fmt.Fprintf(&b, "floating: %d\n", m.registry.Len())
	for _, rec := range m.registry.Open() {
		fmt.Fprintf(&b, "  open   %q last_parent=%s rect=%s\n", rec.Panel.Title(), rec.LastParent, rectString(rec))
	}
	for _, rec := range m.registry.Closed() {
		fmt.Fprintf(&b, "  closed %q last_parent=%s\n", rec.Panel.Title(), rec.LastParent)
	}
	return b.String()
}

func rectString(rec *FloatingRecord) string {
	if rec.Rect == nil {
		return "<none>"
	}
	r := *rec.Rect
	return fmt.Sprintf("%dx%d@%d,%d", r.W, r.H, r.X, r.Y)
}
