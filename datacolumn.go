package sintax

import (
	"math"
	"strings"
)

// Data column defaults.
const (
	DefaultDataLines    = 30
	DefaultDataWidth    = 8
	DefaultDataInterval = 3.0 // seconds
)

// DataColumn fills a text node with lines of random hex digits and
// refreshes them on a fixed interval, the ambient "scrolling data" beside
// the hero.
type DataColumn struct {
	Target   *Node
	Lines    int
	Width    int
	Interval float64
	Glyphs   Alphabet

	rng     RandomSource
	elapsed float64
	buf     strings.Builder
}

// NewDataColumn creates a column writing into target with the default
// shape and fills it immediately.
func NewDataColumn(target *Node, rng RandomSource) *DataColumn {
	d := &DataColumn{
		Target:   target,
		Lines:    DefaultDataLines,
		Width:    DefaultDataWidth,
		Interval: DefaultDataInterval,
		Glyphs:   HexGlyphs,
		rng:      orDefault(rng),
	}
	d.Refresh()
	return d
}

// Refresh rewrites the target with new random lines.
func (d *DataColumn) Refresh() {
	if !d.Target.writable() {
		return
	}
	d.buf.Reset()
	d.buf.Grow(d.Lines * (d.Width + 1))
	for i := 0; i < d.Lines; i++ {
		if i > 0 {
			d.buf.WriteByte('\n')
		}
		for j := 0; j < d.Width; j++ {
			d.buf.WriteRune(d.Glyphs.Pick(d.rng))
		}
	}
	d.Target.SetText(d.buf.String())
}

// Update advances the refresh clock by dt seconds.
func (d *DataColumn) Update(dt float64) {
	if d.Interval <= 0 {
		return
	}
	d.elapsed += dt
	if d.elapsed >= d.Interval {
		d.elapsed = math.Mod(d.elapsed, d.Interval)
		d.Refresh()
	}
}

// Attach drives the column from the scene's frame loop.
func (d *DataColumn) Attach(s *Scene) CallbackHandle {
	return s.OnFrame(d.Update)
}
