package workspace

import (
	"fmt"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// EventKind enumerates the structural-change requests the rendering layer
// can emit. Button affordances map 1:1 onto these: dock icon → EventDock,
// undock icon → EventUndock, close icon → EventCloseDocked/EventCloseFloating,
// reopen menu entry → EventReopen, tab click → EventActivateTab.
type EventKind int

const (
	// EventUndock detaches a docked pane into a visible floating window.
	EventUndock EventKind = iota
	// EventDock re-embeds a floating panel into the tree.
	EventDock
	// EventCloseDocked detaches a docked pane into a hidden floating record.
	EventCloseDocked
	// EventCloseFloating hides a visible floating window.
	EventCloseFloating
	// EventReopen makes a hidden panel visible again, redocking it when its
	// remembered parent still exists.
	EventReopen
	// EventActivateTab selects a tab within its parent tabs container.
	EventActivateTab
	// EventDockToTarget docks with an advisory target hint.
	EventDockToTarget
)

func (k EventKind) String() string {
	switch k {
	case EventUndock:
		return "undock"
	case EventDock:
		return "dock"
	case EventCloseDocked:
		return "close_docked"
	case EventCloseFloating:
		return "close_floating"
	case EventReopen:
		return "reopen"
	case EventActivateTab:
		return "activate_tab"
	case EventDockToTarget:
		return "dock_to_target"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one structural-change request. Tile-addressed events (undock,
// close-docked, activate-tab) carry a tile handle; panel-addressed events
// (dock, close-floating, reopen) carry a panel identity. DockToTarget may
// additionally carry an advisory target and drop position.
type Event struct {
	Kind   EventKind
	Tile   tiling.TileID
	Panel  entity.PanelID
	Target tiling.TileID
	Pos    *entity.Point
}

// Undock requests detaching the pane at tile into a floating window.
func Undock(tile tiling.TileID) Event {
	return Event{Kind: EventUndock, Tile: tile}
}

// Dock requests re-embedding the floating panel into the tree.
func Dock(panel entity.PanelID) Event {
	return Event{Kind: EventDock, Panel: panel}
}

// CloseDocked requests closing the pane at tile into a hidden floating record.
func CloseDocked(tile tiling.TileID) Event {
	return Event{Kind: EventCloseDocked, Tile: tile}
}

// CloseFloating requests hiding the visible floating panel.
func CloseFloating(panel entity.PanelID) Event {
	return Event{Kind: EventCloseFloating, Panel: panel}
}

// Reopen requests making the hidden panel visible again.
func Reopen(panel entity.PanelID) Event {
	return Event{Kind: EventReopen, Panel: panel}
}

// ActivateTab requests selecting tile within its parent tabs container.
func ActivateTab(tile tiling.TileID) Event {
	return Event{Kind: EventActivateTab, Tile: tile}
}

// DockToTarget requests docking with an advisory target hint. A NilTile
// target or stale hint falls back to default target resolution.
func DockToTarget(panel entity.PanelID, target tiling.TileID, pos *entity.Point) Event {
	return Event{Kind: EventDockToTarget, Panel: panel, Target: target, Pos: pos}
}

// Queue is the ordered buffer of structural-change requests produced during
// the render pass and drained exactly once per tick. Render callbacks may
// only enqueue; mutating the tree mid-traversal would invalidate the very
// structures being iterated. Single producer, single consumer, one
// goroutine: no locking.
type Queue struct {
	events []Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a request. Order is preserved; the processor executes in
// enqueue order.
func (q *Queue) Enqueue(e Event) {
	q.events = append(q.events, e)
}

// Drain removes and returns all queued events in FIFO order.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.events) }
