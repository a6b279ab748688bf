package sintax

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenAlpha,
// TweenScale, TweenColor) and either call Update(dt) each frame or add it
// to a Timeline, which seeks it from the timeline clock.
//
// Start values are captured on the first advance, not at construction, so a
// group queued late in a timeline starts from whatever earlier steps left.
// If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	fields   [4]*float64
	from     [4]float64
	to       [4]float64
	hasFrom  bool
	started  bool
	duration float32
	fn       ease.TweenFunc
	target   *Node
	Done     bool
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{target: node, duration: max(duration, 0), fn: fn}
}

func (g *TweenGroup) field(ptr *float64, to float64) {
	g.fields[g.count] = ptr
	g.to[g.count] = to
	g.count++
}

// From sets explicit start values instead of capturing the current ones.
// Values beyond the group's field count are ignored.
func (g *TweenGroup) From(values ...float64) *TweenGroup {
	for i := 0; i < g.count && i < len(values); i++ {
		g.from[i] = values[i]
	}
	g.hasFrom = true
	return g
}

// start builds the gween tweens from the current (or explicit) start values.
func (g *TweenGroup) start() {
	g.started = true
	for i := 0; i < g.count; i++ {
		begin := g.from[i]
		if !g.hasFrom {
			begin = *g.fields[i]
		}
		g.tweens[i] = gween.New(float32(begin), float32(g.to[i]), g.duration, g.fn)
	}
}

// Duration returns the group length in seconds.
func (g *TweenGroup) Duration() float64 {
	return float64(g.duration)
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.target.writable() {
		g.Done = true
		return
	}
	if !g.started {
		g.start()
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if finished {
			*g.fields[i] = g.to[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// Apply seeks the group to progress p in [0, 1]. At p >= 1 the fields hold
// the exact target values. Timelines call this every frame.
func (g *TweenGroup) Apply(p float64) {
	if !g.target.writable() {
		g.Done = true
		return
	}
	if !g.started {
		g.start()
	}
	p = clampProgress(p)
	if p >= 1 || g.duration == 0 {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.to[i]
		}
		g.Done = true
		return
	}
	t := float32(p) * g.duration
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(t)
		*g.fields[i] = float64(val)
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	if node != nil {
		g.field(&node.X, toX)
		g.field(&node.Y, toY)
	}
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	if node != nil {
		g.field(&node.ScaleX, toSX)
		g.field(&node.ScaleY, toSY)
	}
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	if node != nil {
		g.field(&node.Color.R, to.R)
		g.field(&node.Color.G, to.G)
		g.field(&node.Color.B, to.B)
		g.field(&node.Color.A, to.A)
	}
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	if node != nil {
		g.field(&node.Alpha, to)
	}
	return g
}

// TweenReveal animates alpha and a horizontal slide together, the "snap in"
// used for status lines: alpha to 1 and X to toX.
func TweenReveal(node *Node, toX float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, duration, fn)
	if node != nil {
		g.field(&node.Alpha, 1)
		g.field(&node.X, toX)
	}
	return g
}

// Blink toggles a node between visible and hidden every Period seconds, a
// hard stepped yoyo used for the block cursor.
type Blink struct {
	Target  *Node
	Period  float64
	elapsed float64
}

// DefaultBlinkPeriod is the cursor half-cycle in seconds.
const DefaultBlinkPeriod = 0.53

// NewBlink creates a Blink for node. A non-positive period uses DefaultBlinkPeriod.
func NewBlink(node *Node, period float64) *Blink {
	if period <= 0 {
		period = DefaultBlinkPeriod
	}
	return &Blink{Target: node, Period: period}
}

// Update advances the blink clock and writes the node's alpha.
func (b *Blink) Update(dt float64) {
	if !b.Target.writable() {
		return
	}
	b.elapsed += dt
	if int(math.Floor(b.elapsed/b.Period))%2 == 0 {
		b.Target.Alpha = 1
	} else {
		b.Target.Alpha = 0
	}
}
