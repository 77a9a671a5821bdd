package workspace

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// Options configures a workspace manager.
type Options struct {
	// Simplify is the pruning policy applied after every structural removal.
	Simplify tiling.SimplifyOptions
	// DefaultRect is assigned to a panel floating for the first time when it
	// does not provide its own via entity.FloatingRectProvider.
	DefaultRect entity.Rect
	// CascadeOffset shifts each successive default rect so fresh floating
	// windows do not stack exactly on top of each other.
	CascadeOffset int
	// Validate enables the diagnostic invariant pass after each drain.
	Validate bool
	// Logger receives handler outcomes. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Manager is the single owner of the docking tree, the floating registry,
// and the event queue. All mutation flows through ProcessEvents on one
// goroutine; the rendering layer reads the tree and registry and enqueues
// events, nothing more.
type Manager struct {
	tree     *tiling.Tree
	registry *Registry
	queue    *Queue
	opts     Options
	logger   zerolog.Logger

	floated int // counts default-rect assignments for cascading
}

// New creates a manager with an empty tree and registry.
func New(opts Options) *Manager {
	if opts.DefaultRect.Empty() {
		opts.DefaultRect = entity.Rect{X: 100, Y: 100, W: 200, H: 200}
	}
	return &Manager{
		tree:     tiling.NewTree(),
		registry: NewRegistry(),
		queue:    NewQueue(),
		opts:     opts,
		logger:   opts.Logger.With().Str("component", "workspace").Logger(),
	}
}

// Tree exposes the docking tree for traversal by the rendering layer.
// Callers must not mutate it directly; structural changes go through events.
func (m *Manager) Tree() *tiling.Tree { return m.tree }

// Registry exposes the floating registry for traversal by the rendering
// layer, under the same read-only contract as Tree.
func (m *Manager) Registry() *Registry { return m.registry }

// Enqueue adds a structural-change request for the next drain. Safe to call
// from render callbacks.
func (m *Manager) Enqueue(e Event) {
	m.queue.Enqueue(e)
}

// Pending returns the number of queued events.
func (m *Manager) Pending() int { return m.queue.Len() }

// NewPane inserts a fresh pane tile for the panel and returns its handle.
// Used when building an initial layout; runtime insertion happens through
// dock events.
func (m *Manager) NewPane(p entity.Panel) tiling.TileID {
	return m.tree.Arena().InsertPane(p)
}

// NewTabs inserts a tabs container with the given children. The first child
// becomes the active tab.
func (m *Manager) NewTabs(children ...tiling.TileID) tiling.TileID {
	id := m.tree.Arena().InsertContainer(tiling.KindTabs, children...)
	if t, ok := m.tree.Arena().Get(id); ok && len(children) > 0 {
		t.SetActive(children[0])
	}
	return id
}

// NewLinear inserts a horizontal or vertical split with the given children,
// each with a unit share.
func (m *Manager) NewLinear(kind tiling.Kind, children ...tiling.TileID) tiling.TileID {
	return m.tree.Arena().InsertContainer(kind, children...)
}

// SetRoot designates the tree root.
func (m *Manager) SetRoot(id tiling.TileID) {
	m.tree.SetRoot(id)
}

// SetFloatingRect records geometry feedback from the rendering layer after a
// floating window was drawn, moved, or resized.
func (m *Manager) SetFloatingRect(id entity.PanelID, rect entity.Rect) error {
	rec, ok := m.registry.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPanelNotFound, id)
	}
	if rect.Empty() {
		return fmt.Errorf("%w: degenerate rect for panel %s", ErrStructural, id)
	}
	r := rect
	rec.Rect = &r
	return nil
}

// ProcessEvents drains the queue and executes every request in enqueue
// order, each handler running to completion (success or recovered failure)
// before the next starts. Failures are logged and returned but never abort
// the remaining queue. When enabled, the diagnostic invariant pass runs
// after the drain.
func (m *Manager) ProcessEvents() []error {
	events := m.queue.Drain()
	if len(events) == 0 {
		return nil
	}
	m.logger.Debug().Int("count", len(events)).Msg("processing events")

	var errs []error
	for _, ev := range events {
		if err := m.dispatch(ev); err != nil {
			m.logger.Error().
				Stringer("event", ev.Kind).
				Err(err).
				Msg("event failed")
			errs = append(errs, fmt.Errorf("%s: %w", ev.Kind, err))
			continue
		}
		m.logger.Debug().Stringer("event", ev.Kind).Msg("event processed")
	}

	if m.opts.Validate {
		for _, err := range m.Validate() {
			m.logger.Warn().Err(err).Msg("invariant violation")
		}
	}
	return errs
}

func (m *Manager) dispatch(ev Event) error {
	switch ev.Kind {
	case EventUndock:
		return m.handleUndock(ev.Tile)
	case EventDock:
		return m.handleDock(ev.Panel)
	case EventCloseDocked:
		return m.handleCloseDocked(ev.Tile)
	case EventCloseFloating:
		return m.handleCloseFloating(ev.Panel)
	case EventReopen:
		return m.handleReopen(ev.Panel)
	case EventActivateTab:
		return m.handleActivateTab(ev.Tile)
	case EventDockToTarget:
		return m.handleDockToTarget(ev.Panel, ev.Target)
	default:
		return fmt.Errorf("%w: unknown event kind %d", ErrStructural, int(ev.Kind))
	}
}

// defaultRectFor resolves a panel's first floating geometry: the panel's own
// preference when it has one, otherwise the configured default cascaded by
// the number of panels already floated.
func (m *Manager) defaultRectFor(p entity.Panel) entity.Rect {
	if rp, ok := p.(entity.FloatingRectProvider); ok {
		if r := rp.DefaultFloatingRect(); !r.Empty() {
			return r
		}
	}
	off := m.opts.CascadeOffset * m.floated
	m.floated++
	return m.opts.DefaultRect.Offset(off, off)
}
