package sintax

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewFPSWidget creates a text node in the top-left corner that displays the
// current FPS and TPS, refreshed every ~0.5 seconds.
func NewFPSWidget() *Node {
	node := NewText("fps_widget", "")
	node.X, node.Y = 4, 4
	node.Color = ColorLight.WithAlpha(0.6)
	node.FontSize = 11

	var lastUpdate float64
	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 && node.Text() != "" {
			return
		}
		lastUpdate = 0
		node.SetText(fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
