package sintax

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// Font wraps an Ebitengine text/v2 face source and caches one face per size.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont parses TrueType/OpenType data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("sintax: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// LoadMonoFont loads the bundled Go Mono face. The glyph grid and the boot
// sequence both assume a monospace font.
func LoadMonoFont() (*Font, error) {
	return LoadFont(gomono.TTF)
}

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// LineHeight returns the vertical distance between baselines at size.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureString returns the width and height of s rendered at size.
func (f *Font) MeasureString(s string, size float64) (width, height float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}
