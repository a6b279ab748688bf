// Package term renders sintax scenes into a terminal through tcell.
//
// One surface unit is one terminal cell. Colors with alpha below 1 are
// blended over the last Clear color, since terminals have no alpha channel.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	sintax "github.com/Kinterofoto/sintax-ai"
)

// Surface adapts a tcell.Screen to sintax.Surface.
type Surface struct {
	screen tcell.Screen
	bg     sintax.Color
}

// NewSurface wraps the provided screen. The screen must already be
// initialized.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, bg: sintax.ColorDark}
}

// Screen exposes the wrapped tcell.Screen.
func (s *Surface) Screen() tcell.Screen { return s.screen }

// Size returns the screen size in cells.
func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

// Clear fills every cell with c and makes c the blend base for later draws.
func (s *Surface) Clear(c sintax.Color) {
	s.bg = c
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.color(c)))
}

// FillRect paints the cells covered by r. A cell is covered when its
// top-left corner lies inside r.
func (s *Surface) FillRect(r sintax.Rect, c sintax.Color) {
	if r.Empty() {
		return
	}
	w, h := s.screen.Size()
	x0 := max(int(math.Ceil(r.X)), 0)
	y0 := max(int(math.Ceil(r.Y)), 0)
	x1 := min(int(math.Ceil(r.X+r.Width)), w)
	y1 := min(int(math.Ceil(r.Y+r.Height)), h)
	style := tcell.StyleDefault.Background(s.color(c))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawGlyph writes g at the cell containing (x, y). Zero-width runes are
// skipped.
func (s *Surface) DrawGlyph(x, y float64, g rune, style sintax.TextStyle) {
	if runewidth.RuneWidth(g) == 0 {
		return
	}
	s.put(int(math.Floor(x)), int(math.Floor(y)), g, s.style(style))
}

// DrawText writes str starting at (x, y), advancing by each rune's display
// width. A newline returns to x on the next row.
func (s *Surface) DrawText(x, y float64, str string, style sintax.TextStyle) {
	st := s.style(style)
	x0, row := int(math.Floor(x)), int(math.Floor(y))
	col := x0
	for _, r := range str {
		if r == '\n' {
			col = x0
			row++
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.put(col, row, r, st)
		col += w
	}
}

func (s *Surface) put(x, y int, r rune, st tcell.Style) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, st)
}

func (s *Surface) style(ts sintax.TextStyle) tcell.Style {
	return tcell.StyleDefault.Foreground(s.color(ts.Color)).Background(s.color(s.bg))
}

// color blends c over the background and converts it to a tcell color.
func (s *Surface) color(c sintax.Color) tcell.Color {
	a := min(max(c.A, 0), 1)
	mix := func(v, b float64) int32 {
		return int32(math.Round(min(max(v*a+b*(1-a), 0), 1) * 255))
	}
	return tcell.NewRGBColor(mix(c.R, s.bg.R), mix(c.G, s.bg.G), mix(c.B, s.bg.B))
}

var _ sintax.Surface = (*Surface)(nil)
