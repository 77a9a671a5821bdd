package entity

// Point is a screen position in whatever units the rendering layer uses
// (pixels for a GUI toolkit, cells for a terminal).
type Point struct {
	X, Y int
}

// Rect represents a floating panel's screen position and size.
// The docking core only stores and echoes geometry; interpreting the units
// is the rendering layer's job.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Offset returns a copy of the rect shifted by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
