package sintax

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool
	// Resizable lets the user resize the window; Layout then reports the
	// new size to resize callbacks.
	Resizable bool
}

// ErrQuit can be returned from the update func to end Run without error.
var ErrQuit = errors.New("sintax: quit")

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	fps   *Node
}

func (g *game) Update() error {
	g.scene.Update()
	if g.scene.updateFunc != nil {
		return g.scene.updateFunc()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window closes or the
// update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("sintax: run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if scene.font == nil {
		f, err := LoadMonoFont()
		if err != nil {
			return fmt.Errorf("sintax: run: %w", err)
		}
		scene.SetFont(f)
	}
	scene.Resize(cfg.Width, cfg.Height)
	scene.realInput = true

	g := &game{scene: scene}
	if cfg.ShowFPS {
		g.fps = NewFPSWidget()
		scene.Root().AddChild(g.fps)
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
