package sintax

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the interface for optional ECS integration.
// When set on a Scene, pointer, scroll and resize events are forwarded to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// SceneEvent carries input state for the ECS bridge.
type SceneEvent struct {
	Type          EventType
	X, Y          float64 // pointer position (EventPointerMove)
	Width, Height int     // surface size (EventResize)
	Scroll        ScrollState
}

const (
	defaultFontSize  = 14
	defaultWheelStep = 40
)

// Scene is the top-level object that owns the node tree, the shared pointer
// and scroll state, the callback registry and the drawing surface.
type Scene struct {
	root      *Node
	debug     bool
	lastStats debugStats

	handlers  handlerRegistry
	realInput bool
	touchBuf  []ebiten.TouchID
	pointer   *PointerTracker
	scroller  *Scroller

	width, height int

	font    *Font
	surface *ImageSurface

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string

	sink       EventSink
	sinkScroll CallbackHandle

	// ClearColor fills the screen at the start of every Draw.
	ClearColor Color
	// FontSize is the default text size in pixels.
	FontSize float64
	// WheelStep is the scroll distance of one mouse-wheel notch.
	WheelStep float64
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	updateFunc func() error
}

// NewScene creates a scene with a root container, a pointer parked at the
// sentinel and an empty scroller.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		pointer:       NewPointerTracker(),
		scroller:      NewScroller(0, 0),
		ClearColor:    ColorDark,
		FontSize:      defaultFontSize,
		WheelStep:     defaultWheelStep,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Pointer returns the read-only view of the shared pointer position.
func (s *Scene) Pointer() PointerReader {
	return s.pointer
}

// Scroller returns the scene's scroll source.
func (s *Scene) Scroller() *Scroller {
	return s.scroller
}

// Size returns the current screen size.
func (s *Scene) Size() (w, h int) {
	return s.width, s.height
}

// SetFont sets the face used by text nodes. Without a font, text nodes are
// not drawn.
func (s *Scene) SetFont(f *Font) {
	s.font = f
	s.surface = nil
}

// SetUpdateFunc registers a callback run once per tick after the scene
// update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update processes input, then runs frame callbacks and node updates with
// the fixed tick delta.
func (s *Scene) Update() {
	s.update(1.0 / float64(ebiten.TPS()))
}

// Tick advances the scene by dt seconds. Drivers other than Run (the
// terminal loop, tests) call it in place of Update.
func (s *Scene) Tick(dt float64) {
	s.update(dt)
}

func (s *Scene) update(dt float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()

	if s.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	s.dispatchFrame(dt)
	updateNodes(s.root, dt)

	if s.debug {
		stats.frameTime = time.Since(t0)
		stats.frameHandlers = len(s.handlers.frame)
		s.lastStats = stats
	}
}

// Draw clears the screen, paints the registered background layers and then
// the node tree.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.surface == nil {
		s.surface = NewImageSurface(screen, s.font, s.FontSize)
	} else {
		s.surface.Reset(screen)
	}
	s.drawTo(s.surface)
	s.flushScreenshots(screen)
}

// Render draws the scene onto an arbitrary surface.
func (s *Scene) Render(surf Surface) {
	s.drawTo(surf)
}

func (s *Scene) drawTo(surf Surface) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	surf.Clear(s.ClearColor)
	for _, h := range slices.Clone(s.handlers.draw) {
		h.fn(surf)
	}
	drawNodes(surf, s.root, 0, 0, 1)

	if s.debug {
		stats := s.lastStats
		stats.drawTime = time.Since(t0)
		stats.drawLayers = len(s.handlers.draw)
		stats.nodeCount = countNodes(s.root)
		s.debugLog(stats)
	}
}

// Resize records a new screen size, updates the scroller viewport and fires
// resize callbacks. Called from Layout; other drivers call it directly.
func (s *Scene) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.scroller.SetViewport(float64(h))
	for _, hd := range slices.Clone(s.handlers.resize) {
		hd.fn(w, h)
	}
	s.emit(SceneEvent{Type: EventResize, Width: w, Height: h})
}

// SetEventSink sets the optional ECS bridge. Passing nil detaches it.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sinkScroll.Remove()
	s.sinkScroll = CallbackHandle{}
	s.sink = sink
	if sink != nil {
		s.sinkScroll = s.scroller.OnScroll(func(st ScrollState) {
			s.emit(SceneEvent{Type: EventScroll, Scroll: st})
		})
	}
}

func (s *Scene) emit(e SceneEvent) {
	if s.sink == nil {
		return
	}
	e.Scroll = s.scroller.State()
	s.sink.EmitEvent(e)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-frame timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool
