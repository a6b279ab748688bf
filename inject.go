package sintax

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticLeave
	syntheticScroll
	syntheticResize
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used, matching what a screenshot shows.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectMove queues a pointer move to the given screen coordinates. The
// event is consumed on the next frame's processInput call.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectLeave queues a pointer leave.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectScroll queues a scroll by dy.
func (s *Scene) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticScroll, y: dy})
}

// InjectResize queues a screen resize.
func (s *Scene) InjectResize(w, h int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticResize, x: float64(w), y: float64(h)})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY)
// spread over frames moves. Minimum frames is 1.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	if frames == 1 {
		s.InjectMove(toX, toY)
		return
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input is skipped for that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		s.pointerMoved(evt.x, evt.y)
	case syntheticLeave:
		s.pointerLeft()
	case syntheticScroll:
		s.scroller.ScrollBy(evt.y)
	case syntheticResize:
		s.Resize(int(evt.x), int(evt.y))
	}
	return true
}
