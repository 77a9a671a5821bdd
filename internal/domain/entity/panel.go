// Package entity contains domain entities representing core docking concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// PanelID uniquely identifies a logical panel. The identity is stable across
// any number of dock/undock cycles, unlike the tile handle a panel occupies
// while it is embedded in the tree.
type PanelID string

// Panel is the closed capability set the docking core needs from panel
// content. Anything beyond this (content rendering, styling, input) belongs
// to the surrounding UI layer, which knows the concrete panel types.
type Panel interface {
	// ID returns the stable panel identity.
	ID() PanelID
	// Title returns the human-readable name shown on tabs and window chrome.
	Title() string
	// Pinned reports whether the panel is permanently docked. A pinned panel
	// can never be undocked or closed.
	Pinned() bool
}

// FloatingRectProvider is optionally implemented by panels that carry their
// own preferred floating geometry. Panels without it get the configured
// default rect when they first float.
type FloatingRectProvider interface {
	DefaultFloatingRect() Rect
}
