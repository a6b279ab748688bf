package sintax

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface submits the draw.
type Color struct {
	R, G, B, A float64
}

// Palette used by the decorative sections.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorDark  = Color{5.0 / 255, 5.0 / 255, 5.0 / 255, 1}    // #050505
	ColorLight = Color{240.0 / 255, 240.0 / 255, 240.0 / 255, 1} // #F0F0F0
)

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA returns the premultiplied 8-bit color for image.Fill and friends.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// EventType identifies a kind of engine callback.
type EventType uint8

const (
	EventFrame        EventType = iota // fires once per Update with the frame delta
	EventScroll                        // fires when the scroll offset or viewport changes
	EventResize                        // fires when the drawing surface changes size
	EventPointerMove                   // fires when the pointer moves inside the window
	EventPointerLeave                  // fires when the pointer leaves the window
	EventDraw                          // fires once per Draw before the node tree
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampProgress clamps p into [0, 1] and maps NaN to 0.
func clampProgress(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return clamp01(p)
}
