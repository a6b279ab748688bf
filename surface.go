package sintax

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextStyle carries per-draw text attributes.
type TextStyle struct {
	Color Color
	Size  float64 // 0 = surface default
}

// Surface is a rectangular drawing target. Coordinates are in surface units
// (pixels for ImageSurface, terminal cells for term.Surface) with the origin
// at the top-left.
type Surface interface {
	Size() (w, h int)
	Clear(c Color)
	FillRect(r Rect, c Color)
	DrawGlyph(x, y float64, g rune, style TextStyle)
	DrawText(x, y float64, s string, style TextStyle)
}

// ImageSurface draws onto an Ebitengine image with a TTF font.
type ImageSurface struct {
	img      *ebiten.Image
	font     *Font
	size     float64
	glyphBuf []byte
}

// NewImageSurface wraps img. Text uses font at size unless a TextStyle
// overrides the size.
func NewImageSurface(img *ebiten.Image, font *Font, size float64) *ImageSurface {
	return &ImageSurface{img: img, font: font, size: size, glyphBuf: make([]byte, 0, utf8.UTFMax)}
}

// Image returns the wrapped image.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Reset points the surface at a new target image, e.g. the screen passed to
// the current Draw call.
func (s *ImageSurface) Reset(img *ebiten.Image) { s.img = img }

// Size returns the image size in pixels.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole image with c.
func (s *ImageSurface) Clear(c Color) {
	s.img.Fill(c.RGBA())
}

// FillRect fills r with c.
func (s *ImageSurface) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.RGBA(), false)
}

// DrawGlyph draws a single glyph with its top-left at (x, y).
func (s *ImageSurface) DrawGlyph(x, y float64, g rune, style TextStyle) {
	s.glyphBuf = utf8.AppendRune(s.glyphBuf[:0], g)
	s.DrawText(x, y, string(s.glyphBuf), style)
}

// DrawText draws s with its top-left at (x, y). No-op without a font.
func (s *ImageSurface) DrawText(x, y float64, str string, style TextStyle) {
	if s.font == nil || str == "" {
		return
	}
	size := style.Size
	if size <= 0 {
		size = s.size
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color.RGBA())
	op.LineSpacing = s.font.LineHeight(size)
	text.Draw(s.img, str, s.font.Face(size), op)
}
