package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	sintax "github.com/Kinterofoto/sintax-ai"
)

// DefaultFPS is the tick rate used when Loop.FPS is zero.
const DefaultFPS = 30

// Loop drives a sintax.Scene from a tcell.Screen: a ticker advances and
// renders the scene, and terminal events feed its pointer, scroll offset
// and size.
type Loop struct {
	// FPS is the tick rate. Zero uses DefaultFPS.
	FPS int

	scene   *sintax.Scene
	surface *Surface
}

// NewLoop binds scene to an initialized screen and enables mouse reporting.
// The caller still owns the screen and must call Fini.
func NewLoop(screen tcell.Screen, scene *sintax.Scene) *Loop {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	scene.Resize(screen.Size())
	return &Loop{scene: scene, surface: NewSurface(screen)}
}

// Surface returns the terminal surface the loop renders onto.
func (l *Loop) Surface() *Surface { return l.surface }

// Run ticks until Esc or Ctrl-C is pressed (returns nil) or ctx is done
// (returns ctx.Err()).
func (l *Loop) Run(ctx context.Context) error {
	fps := l.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	screen := l.surface.Screen()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	dt := 1 / float64(fps)

	l.Frame(dt)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if l.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			l.Frame(dt)
		}
	}
}

// Frame advances the scene by dt, renders it and shows the screen.
func (l *Loop) Frame(dt float64) {
	l.scene.Tick(dt)
	l.scene.Render(l.surface)
	l.surface.Screen().Show()
}

// HandleEvent applies one terminal event to the scene. It reports true when
// the event asks the loop to quit.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyPgDn:
			l.page(1)
		case tcell.KeyPgUp:
			l.page(-1)
		case tcell.KeyHome:
			l.scene.Scroller().ScrollTo(0)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		l.scene.PointerMove(float64(x), float64(y))
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			l.scene.Scroller().ScrollBy(-l.scene.WheelStep)
		case ev.Buttons()&tcell.WheelDown != 0:
			l.scene.Scroller().ScrollBy(l.scene.WheelStep)
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			l.scene.PointerLeave()
		}
	case *tcell.EventResize:
		l.surface.Screen().Sync()
		l.scene.Resize(l.surface.Screen().Size())
	}
	return false
}

func (l *Loop) page(dir float64) {
	st := l.scene.Scroller().State()
	l.scene.Scroller().ScrollBy(dir * st.ViewportHeight * 0.9)
}
