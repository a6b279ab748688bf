package sintax

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pixel reveal defaults.
const (
	DefaultFrontLoad = 0.85 // fraction at which every cell is light
	DefaultRowBias   = 0.6  // weight of row distance from the bottom
	DefaultScrubLag  = 0.0  // seconds; 0 follows the scroll fraction exactly

	// DefaultPixelStartLine and DefaultPixelEndLine bound the scrub range:
	// it starts when the region's top reaches 80% of the viewport and ends
	// when its bottom reaches 30%.
	DefaultPixelStartLine = 0.8
	DefaultPixelEndLine   = 0.3
)

// PixelConfig tunes a PixelRevealMatrix. Zero fields use the defaults,
// except ScrubLag where zero means no lag. A RowBias of Off orders cells by
// noise alone.
type PixelConfig struct {
	FrontLoad float64
	RowBias   float64
	ScrubLag  float64
	Dark      Color
	Light     Color
}

func (c PixelConfig) withDefaults() PixelConfig {
	if c.FrontLoad <= 0 {
		c.FrontLoad = DefaultFrontLoad
	}
	c.RowBias = weightOr(c.RowBias, DefaultRowBias)
	if c.Dark == (Color{}) {
		c.Dark = ColorDark
	}
	if c.Light == (Color{}) {
		c.Light = ColorLight
	}
	return c
}

// PixelCell is one cell of the matrix.
type PixelCell struct {
	Rank  int  // position in the reveal order
	Light bool // current color state
}

// PixelRevealMatrix reveals a rows x cols grid from dark to light in a
// precomputed, mostly bottom-up order. The fraction comes from scroll
// position, so lowering it darkens cells again.
type PixelRevealMatrix struct {
	rows, cols int
	cfg        PixelConfig
	cells      []PixelCell // row-major
	order      []int       // order[rank] = cell index

	fraction float64
	target   float64
	scrub    *gween.Tween
}

// NewPixelRevealMatrix computes the reveal order once: identity, uniform
// shuffle, then a stable sort by row distance from the bottom weighted by
// RowBias plus a random perturbation scaled by the row count. A zero-size
// grid has no cells. Panics on negative dimensions.
func NewPixelRevealMatrix(rows, cols int, cfg PixelConfig, rng RandomSource) *PixelRevealMatrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("sintax: invalid pixel matrix size %dx%d", rows, cols))
	}
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	cfg = cfg.withDefaults()
	rng = orDefault(rng)
	n := rows * cols

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	keys := make([]float64, n)
	for _, idx := range order {
		row := idx / cols
		keys[idx] = float64(rows-1-row)*cfg.RowBias + (rng.Float64()-0.5)*float64(rows)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	cells := make([]PixelCell, n)
	for rank, idx := range order {
		cells[idx].Rank = rank
	}
	return &PixelRevealMatrix{rows: rows, cols: cols, cfg: cfg, cells: cells, order: order}
}

// Rows returns the row count.
func (m *PixelRevealMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *PixelRevealMatrix) Cols() int { return m.cols }

// Len returns rows * cols.
func (m *PixelRevealMatrix) Len() int { return len(m.cells) }

// Cell returns the cell at (row, col).
func (m *PixelRevealMatrix) Cell(row, col int) PixelCell {
	return m.cells[row*m.cols+col]
}

// Order returns a copy of the reveal order: element r is the row-major
// index of the cell with rank r.
func (m *PixelRevealMatrix) Order() []int {
	return slices.Clone(m.order)
}

// Fraction returns the fraction currently displayed.
func (m *PixelRevealMatrix) Fraction() float64 { return m.fraction }

// Target returns the last fraction passed to SetFraction.
func (m *PixelRevealMatrix) Target() float64 { return m.target }

// LightCount returns the number of light cells.
func (m *PixelRevealMatrix) LightCount() int {
	n := 0
	for _, c := range m.cells {
		if c.Light {
			n++
		}
	}
	return n
}

// SetFraction sets the scroll fraction. Without ScrubLag the cells update
// immediately; otherwise Update eases the displayed fraction toward f.
func (m *PixelRevealMatrix) SetFraction(f float64) {
	f = clampProgress(f)
	m.target = f
	if m.cfg.ScrubLag <= 0 {
		m.scrub = nil
		m.apply(f)
		return
	}
	if f == m.fraction {
		m.scrub = nil
		return
	}
	m.scrub = gween.New(float32(m.fraction), float32(f), float32(m.cfg.ScrubLag), ease.OutCubic)
}

// Update advances a lagging scrub by dt seconds.
func (m *PixelRevealMatrix) Update(dt float64) {
	if m.scrub == nil {
		return
	}
	v, done := m.scrub.Update(float32(dt))
	if done {
		m.scrub = nil
		m.apply(m.target)
		return
	}
	m.apply(float64(v))
}

// apply lights rank r iff f > 0 and r/N < f/FrontLoad. Comparing strictly
// keeps every cell dark at f = 0 and every cell light from f = FrontLoad.
func (m *PixelRevealMatrix) apply(f float64) {
	m.fraction = f
	n := float64(len(m.cells))
	limit := f / m.cfg.FrontLoad
	for i := range m.cells {
		c := &m.cells[i]
		c.Light = f > 0 && float64(c.Rank)/n < limit
	}
}

// Draw fills bounds with the matrix, each cell a hard-cut dark or light
// rectangle. Cell edges are snapped to whole units so neighbours share
// borders without gaps.
func (m *PixelRevealMatrix) Draw(s Surface, bounds Rect) {
	if len(m.cells) == 0 || bounds.Empty() {
		return
	}
	cw := bounds.Width / float64(m.cols)
	ch := bounds.Height / float64(m.rows)
	for row := 0; row < m.rows; row++ {
		y0 := math.Floor(bounds.Y + float64(row)*ch)
		y1 := math.Floor(bounds.Y + float64(row+1)*ch)
		for col := 0; col < m.cols; col++ {
			x0 := math.Floor(bounds.X + float64(col)*cw)
			x1 := math.Floor(bounds.X + float64(col+1)*cw)
			c := m.cfg.Dark
			if m.cells[row*m.cols+col].Light {
				c = m.cfg.Light
			}
			s.FillRect(Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, c)
		}
	}
}

// Bind drives the fraction from scroll across region, using the default
// start and end lines. The current position is applied immediately.
func (m *PixelRevealMatrix) Bind(s *Scroller, region Region) CallbackHandle {
	m.SetFraction(region.Fraction(s.State(), DefaultPixelStartLine, DefaultPixelEndLine))
	return s.OnScroll(func(st ScrollState) {
		m.SetFraction(region.Fraction(st, DefaultPixelStartLine, DefaultPixelEndLine))
	})
}

// Attach mounts the matrix on a scene as a full-width band occupying
// region of the scrolled page. The returned Subscriptions detach it.
func (m *PixelRevealMatrix) Attach(s *Scene, region Region) *Subscriptions {
	subs := &Subscriptions{}
	subs.Add(m.Bind(s.Scroller(), region))
	subs.Add(s.OnFrame(m.Update))
	subs.Add(s.OnDraw(func(surf Surface) {
		w, _ := surf.Size()
		top := region.Top - s.Scroller().State().Offset
		m.Draw(surf, Rect{X: 0, Y: top, Width: float64(w), Height: region.Height})
	}))
	return subs
}
