package sintax

// SentinelPosition represents "no active pointer". It is far enough outside
// any surface that every proximity effect evaluates to zero.
var SentinelPosition = Vec2{X: -1e9, Y: -1e9}

// PointerReader is the read-only view of the shared pointer position handed
// to renderers.
type PointerReader interface {
	Position() Vec2
	Active() bool
}

// PointerTracker holds the process-wide pointer position. It starts at
// SentinelPosition and is written only by the scene's input handling (or
// the terminal loop); renderers read it through PointerReader at the top of
// their frame.
type PointerTracker struct {
	pos    Vec2
	active bool
}

// NewPointerTracker returns a tracker parked at the sentinel.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{pos: SentinelPosition}
}

// Move records a pointer position in surface coordinates.
func (p *PointerTracker) Move(x, y float64) {
	p.pos = Vec2{X: x, Y: y}
	p.active = true
}

// Leave parks the pointer at the sentinel.
func (p *PointerTracker) Leave() {
	p.pos = SentinelPosition
	p.active = false
}

// Position returns the last known position, or SentinelPosition.
func (p *PointerTracker) Position() Vec2 { return p.pos }

// Active reports whether a pointer is currently over the surface.
func (p *PointerTracker) Active() bool { return p.active }
