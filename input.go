package sintax

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[F]{}
			return s[:len(s)-1]
		}
	}
	return s
}

type handlerRegistry struct {
	frame        []handler[func(float64)]
	scroll       []handler[func(ScrollState)]
	resize       []handler[func(int, int)]
	pointerMove  []handler[func(Vec2)]
	pointerLeave []handler[func()]
	draw         []handler[func(Surface)]
	nextID       uint32
}

func (r *handlerRegistry) newID() uint32 {
	r.nextID++
	return r.nextID
}

// CallbackHandle allows removing a registered callback. Every On* call
// returns one; the caller that subscribes owns the matching Remove.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing a zero
// handle or removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventFrame:
		h.reg.frame = removeHandler(h.reg.frame, h.id)
	case EventScroll:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id)
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id)
	case EventDraw:
		h.reg.draw = removeHandler(h.reg.draw, h.id)
	}
}

// Subscriptions collects the handles a section registers while mounted so
// unmounting can detach all of them in one call.
type Subscriptions struct {
	handles []CallbackHandle
}

// Add records h.
func (s *Subscriptions) Add(h CallbackHandle) {
	s.handles = append(s.handles, h)
}

// Len returns the number of live handles.
func (s *Subscriptions) Len() int { return len(s.handles) }

// RemoveAll removes every recorded handle, newest first.
func (s *Subscriptions) RemoveAll() {
	for i := len(s.handles) - 1; i >= 0; i-- {
		s.handles[i].Remove()
	}
	s.handles = s.handles[:0]
}

// --- Scene-level event registration ---

// OnFrame registers a callback invoked once per Update with the frame delta
// in seconds.
func (s *Scene) OnFrame(fn func(dt float64)) CallbackHandle {
	id := s.handlers.newID()
	s.handlers.frame = append(s.handlers.frame, handler[func(float64)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventFrame}
}

// OnResize registers a callback invoked when the screen size changes. It
// fires immediately if the size is already known.
func (s *Scene) OnResize(fn func(w, h int)) CallbackHandle {
	id := s.handlers.newID()
	s.handlers.resize = append(s.handlers.resize, handler[func(int, int)]{id: id, fn: fn})
	if s.width > 0 || s.height > 0 {
		fn(s.width, s.height)
	}
	return CallbackHandle{id: id, reg: &s.handlers, event: EventResize}
}

// OnPointerMove registers a callback for pointer movement inside the window.
func (s *Scene) OnPointerMove(fn func(Vec2)) CallbackHandle {
	id := s.handlers.newID()
	s.handlers.pointerMove = append(s.handlers.pointerMove, handler[func(Vec2)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerMove}
}

// OnPointerLeave registers a callback for the pointer leaving the window.
func (s *Scene) OnPointerLeave(fn func()) CallbackHandle {
	id := s.handlers.newID()
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, handler[func()]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerLeave}
}

// OnDraw registers a background layer painted before the node tree, in
// registration order.
func (s *Scene) OnDraw(fn func(Surface)) CallbackHandle {
	id := s.handlers.newID()
	s.handlers.draw = append(s.handlers.draw, handler[func(Surface)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDraw}
}

// dispatchFrame calls frame handlers over a snapshot so handlers may remove
// themselves (a finishing timeline does).
func (s *Scene) dispatchFrame(dt float64) {
	for _, h := range slices.Clone(s.handlers.frame) {
		h.fn(dt)
	}
}

// --- Input processing ---

// PointerMove reports a pointer position from an external driver. It takes
// effect immediately, unlike InjectMove.
func (s *Scene) PointerMove(x, y float64) {
	s.pointerMoved(x, y)
}

// PointerLeave reports that the pointer left the surface.
func (s *Scene) PointerLeave() {
	s.pointerLeft()
}

// pointerMoved is the single writer of the shared pointer position.
func (s *Scene) pointerMoved(x, y float64) {
	s.pointer.Move(x, y)
	for _, h := range slices.Clone(s.handlers.pointerMove) {
		h.fn(Vec2{X: x, Y: y})
	}
	s.emit(SceneEvent{Type: EventPointerMove, X: x, Y: y})
}

func (s *Scene) pointerLeft() {
	if !s.pointer.Active() {
		return
	}
	s.pointer.Leave()
	for _, h := range slices.Clone(s.handlers.pointerLeave) {
		h.fn()
	}
	s.emit(SceneEvent{Type: EventPointerLeave})
}

// processInput is called from Scene.Update. Injected events take priority
// over real input for the frame they are consumed in. Real devices are only
// polled inside Run and never while a test script drives the scene.
func (s *Scene) processInput() {
	if s.processInjectedInput() || !s.realInput || s.testRunner != nil {
		return
	}
	s.processMousePointer()
	s.processScrollKeys()
}

// processMousePointer treats a cursor outside the window as a pointer leave.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	if touches := ebiten.AppendTouchIDs(s.touchBuf[:0]); len(touches) > 0 {
		s.touchBuf = touches
		mx, my = ebiten.TouchPosition(touches[0])
	}
	if mx < 0 || my < 0 || mx >= s.width || my >= s.height {
		s.pointerLeft()
		return
	}
	if p := s.pointer.Position(); s.pointer.Active() && p.X == float64(mx) && p.Y == float64(my) {
		return
	}
	s.pointerMoved(float64(mx), float64(my))
}

// processScrollKeys maps the wheel and paging keys onto the scroller.
func (s *Scene) processScrollKeys() {
	if s.scroller == nil {
		return
	}
	_, dy := ebiten.Wheel()
	delta := -dy * s.WheelStep
	page := s.scroller.State().ViewportHeight * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		delta += page
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		delta -= page
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.scroller.ScrollTo(0)
		return
	}
	if delta != 0 {
		s.scroller.ScrollBy(delta)
	}
}
