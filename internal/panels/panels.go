// Package panels provides the built-in panel catalog for the demo
// application: a closed set of named panels with canned content and
// per-panel default floating geometry.
package panels

import (
	"github.com/google/uuid"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
)

// Panel is the concrete panel content used by the demo. Identity is a
// random UUID minted at construction, stable for the panel's lifetime and
// independent of any tile handle it may occupy.
type Panel struct {
	id     entity.PanelID
	title  string
	pinned bool
	body   []string
}

var _ entity.Panel = (*Panel)(nil)
var _ entity.FloatingRectProvider = (*Panel)(nil)

// New creates a panel with the given title. Pinned panels refuse undock and
// close requests.
func New(title string, pinned bool, body ...string) *Panel {
	return &Panel{
		id:     entity.PanelID(uuid.NewString()),
		title:  title,
		pinned: pinned,
		body:   body,
	}
}

// ID returns the panel's stable identity.
func (p *Panel) ID() entity.PanelID { return p.id }

// Title returns the display title.
func (p *Panel) Title() string { return p.title }

// Pinned reports whether the panel refuses undock and close requests.
func (p *Panel) Pinned() bool { return p.pinned }

// Body returns the panel's content lines.
func (p *Panel) Body() []string {
	return append([]string(nil), p.body...)
}

// defaultRects positions well-known panels along the right edge when they
// first float. Panels without an entry fall back to the workspace's
// cascaded default.
var defaultRects = map[string]entity.Rect{
	"Settings":   {X: 750, Y: 50, W: 250, H: 300},
	"Properties": {X: 750, Y: 400, W: 250, H: 300},
}

// DefaultFloatingRect returns the panel's preferred first floating
// geometry, or the zero rect when it has no preference.
func (p *Panel) DefaultFloatingRect() entity.Rect {
	return defaultRects[p.title]
}

// Scene shows the main 3D view.
func Scene() *Panel {
	return New("Scene", false,
		"Shows the main 3D view.",
		"Camera: perspective, 60° fov",
	)
}

// Settings holds application settings.
func Settings() *Panel {
	return New("Settings", false,
		"Theme: dark",
		"Autosave: enabled",
	)
}

// Properties shows the selected object's properties.
func Properties() *Panel {
	return New("Properties", false,
		"Position: 0.0, 0.0, 0.0",
		"Rotation: 0.0, 0.0, 0.0",
	)
}

// Stats shows frame statistics.
func Stats() *Panel {
	return New("Stats", false,
		"Frames: 1234",
		"Vertices: 56789",
	)
}

// Presets lists loadable presets.
func Presets() *Panel {
	return New("Presets", false,
		"[ Load Preset A ]",
		"[ Load Preset B ]",
	)
}

// Dataset shows the loaded dataset.
func Dataset() *Panel {
	return New("Dataset", false,
		"Loaded dataset: example.zip",
		"Item count: 100",
	)
}

// Placeholder is a generic panel for tests and scratch layouts.
func Placeholder(title string) *Panel {
	return New(title, false, "Placeholder content for "+title)
}
