package sintax

import "math"

// Reactive grid defaults.
const (
	DefaultCellSize         = 20.0
	DefaultHoverRadius      = 150.0
	DefaultFadeSpeed        = 0.06
	DefaultGlitchChance     = 0.03
	DefaultMaxOpacity       = 0.7
	DefaultGlitchResetTicks = 30
	DefaultMatrixWeight     = 0.7

	// GlitchThreshold is the opacity at or below which a cell shows its
	// base glyph and does not glitch.
	GlitchThreshold = 0.05
	// DrawCutoff is the opacity at or below which a cell is not drawn.
	DrawCutoff = 0.01
)

// Off sets a GridConfig or PixelConfig weight to zero. A plain zero
// selects the default.
const Off = -1.0

// weightOr resolves a weight where zero means def and a negative value
// means zero.
func weightOr(v, def float64) float64 {
	switch {
	case v == 0:
		return def
	case v < 0:
		return 0
	}
	return v
}

// GridConfig tunes a ReactiveGrid. Zero fields use the defaults; set
// GlitchChance or MatrixWeight to Off for an actual zero.
type GridConfig struct {
	CellSize     float64 // surface units per cell, both axes
	HoverRadius  float64 // pointer influence radius in surface units
	FadeSpeed    float64 // fraction of the remaining opacity gap closed per frame
	GlitchChance float64 // per-frame glitch probability at opacity 1
	MaxOpacity   float64 // opacity directly under the pointer
	ResetTicks   int     // frames without a glitch before a cell shows its base glyph
	MatrixWeight float64 // share of glitches drawn from Matrix rather than Block
	Matrix       Alphabet
	Block        Alphabet

	Color      Color // glyph color before opacity
	Background Color // fill used to clear the grid each frame
	FontSize   float64
}

func (c GridConfig) withDefaults() GridConfig {
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.HoverRadius <= 0 {
		c.HoverRadius = DefaultHoverRadius
	}
	if c.FadeSpeed <= 0 {
		c.FadeSpeed = DefaultFadeSpeed
	}
	c.GlitchChance = weightOr(c.GlitchChance, DefaultGlitchChance)
	if c.MaxOpacity <= 0 {
		c.MaxOpacity = DefaultMaxOpacity
	}
	if c.ResetTicks <= 0 {
		c.ResetTicks = DefaultGlitchResetTicks
	}
	c.MatrixWeight = weightOr(c.MatrixWeight, DefaultMatrixWeight)
	if len(c.Matrix) == 0 {
		c.Matrix = MatrixGlyphs
	}
	if len(c.Block) == 0 {
		c.Block = BlockGlyphs
	}
	if c.Color == (Color{}) {
		c.Color = ColorLight
	}
	if c.Background == (Color{}) {
		c.Background = ColorDark
	}
	c.FadeSpeed = min(c.FadeSpeed, 1)
	c.MaxOpacity = min(c.MaxOpacity, 1)
	return c
}

// GridCell is one glyph slot of a ReactiveGrid.
type GridCell struct {
	Base        rune
	Current     rune
	Opacity     float64
	GlitchTimer int
}

// ReactiveGrid paints a grid of glyphs whose opacity follows the pointer
// with a trailing glow, and whose visible cells glitch at random.
type ReactiveGrid struct {
	cfg     GridConfig
	pointer PointerReader
	rng     RandomSource

	// Bounds places the grid on its surface. The pointer is read relative
	// to its origin; Resize sets its size.
	Bounds Rect

	cols, rows int
	cells      []GridCell
}

// NewReactiveGrid creates an empty grid reading pointer each frame. Call
// Resize before the first Step. A nil pointer never activates any cell.
func NewReactiveGrid(cfg GridConfig, pointer PointerReader, rng RandomSource) *ReactiveGrid {
	if pointer == nil {
		pointer = NewPointerTracker()
	}
	return &ReactiveGrid{cfg: cfg.withDefaults(), pointer: pointer, rng: orDefault(rng)}
}

// Config returns the effective settings.
func (g *ReactiveGrid) Config() GridConfig { return g.cfg }

// Cols returns the column count.
func (g *ReactiveGrid) Cols() int { return g.cols }

// Rows returns the row count.
func (g *ReactiveGrid) Rows() int { return g.rows }

// Cells returns the cell array in row-major order. It must not be
// retained across Resize.
func (g *ReactiveGrid) Cells() []GridCell { return g.cells }

// Cell returns the cell at (row, col), the same order as
// PixelRevealMatrix.Cell.
func (g *ReactiveGrid) Cell(row, col int) GridCell {
	return g.cells[row*g.cols+col]
}

// Resize rebuilds the cell array for a w x h container with fresh random
// base glyphs. A zero or negative size yields no cells.
func (g *ReactiveGrid) Resize(w, h int) {
	g.Bounds.Width, g.Bounds.Height = float64(max(w, 0)), float64(max(h, 0))
	if w <= 0 || h <= 0 {
		g.cols, g.rows = 0, 0
		g.cells = g.cells[:0]
		return
	}
	g.cols = int(math.Ceil(float64(w) / g.cfg.CellSize))
	g.rows = int(math.Ceil(float64(h) / g.cfg.CellSize))
	n := g.cols * g.rows
	if cap(g.cells) < n {
		g.cells = make([]GridCell, n)
	}
	g.cells = g.cells[:n]
	for i := range g.cells {
		b := g.glyph()
		g.cells[i] = GridCell{Base: b, Current: b}
	}
}

// glyph picks from Matrix with MatrixWeight probability, else from Block.
func (g *ReactiveGrid) glyph() rune {
	if g.rng.Float64() < g.cfg.MatrixWeight {
		return g.cfg.Matrix.Pick(g.rng)
	}
	return g.cfg.Block.Pick(g.rng)
}

// Step advances every cell by one frame. The pointer is read once.
func (g *ReactiveGrid) Step() {
	if len(g.cells) == 0 {
		return
	}
	p := g.pointer.Position()
	p = Vec2{X: p.X - g.Bounds.X, Y: p.Y - g.Bounds.Y}
	cs := g.cfg.CellSize
	radius := g.cfg.HoverRadius
	reach := Rect{
		X:      -radius,
		Y:      -radius,
		Width:  float64(g.cols)*cs + 2*radius,
		Height: float64(g.rows)*cs + 2*radius,
	}
	near := reach.Contains(p.X, p.Y)

	for row := 0; row < g.rows; row++ {
		cy := (float64(row) + 0.5) * cs
		for col := 0; col < g.cols; col++ {
			c := &g.cells[row*g.cols+col]

			target := 0.0
			if d := p.Dist(Vec2{X: (float64(col) + 0.5) * cs, Y: cy}); near && d < radius {
				target = max(0, 1-d/radius) * g.cfg.MaxOpacity
			}
			c.Opacity = clamp01(c.Opacity + (target-c.Opacity)*g.cfg.FadeSpeed)

			if c.Opacity <= GlitchThreshold {
				c.Current = c.Base
				c.GlitchTimer = 0
				continue
			}
			c.GlitchTimer++
			if g.rng.Float64() < g.cfg.GlitchChance*c.Opacity {
				c.Current = g.glyph()
				c.GlitchTimer = 0
			} else if c.GlitchTimer >= g.cfg.ResetTicks {
				c.Current = c.Base
				c.GlitchTimer = 0
			}
		}
	}
}

// Draw clears Bounds and redraws every cell above DrawCutoff that overlaps
// the surface. A grid scrolled fully off the surface draws nothing.
func (g *ReactiveGrid) Draw(s Surface) {
	w, h := s.Size()
	view := Rect{Width: float64(w), Height: float64(h)}
	if g.Bounds.Empty() || !g.Bounds.Intersects(view) {
		return
	}
	s.FillRect(g.Bounds, g.cfg.Background)
	style := TextStyle{Size: g.cfg.FontSize}
	cs := g.cfg.CellSize
	for i, c := range g.cells {
		if c.Opacity <= DrawCutoff {
			continue
		}
		col, row := i%g.cols, i/g.cols
		cell := Rect{X: g.Bounds.X + float64(col)*cs, Y: g.Bounds.Y + float64(row)*cs, Width: cs, Height: cs}
		if !cell.Intersects(view) {
			continue
		}
		style.Color = g.cfg.Color.WithAlpha(c.Opacity)
		s.DrawGlyph(cell.X, cell.Y, c.Current, style)
	}
}

// Frame runs Step then Draw.
func (g *ReactiveGrid) Frame(s Surface) {
	g.Step()
	g.Draw(s)
}

// Attach sizes the grid to the scene and registers its resize, frame and
// draw callbacks. The returned Subscriptions detach all three.
func (g *ReactiveGrid) Attach(s *Scene) *Subscriptions {
	subs := &Subscriptions{}
	subs.Add(s.OnResize(g.Resize))
	subs.Add(s.OnFrame(func(float64) { g.Step() }))
	subs.Add(s.OnDraw(g.Draw))
	return subs
}
