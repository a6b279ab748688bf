package sintax

import "slices"

// DefaultTriggerLine is the viewport fraction a region's top must cross for
// a reveal timeline to start ("top 80%").
const DefaultTriggerLine = 0.8

// ScrollState is one reading of the page scroll position.
type ScrollState struct {
	Offset         float64 // distance scrolled from the top of the content
	ViewportHeight float64
	ContentHeight  float64
}

// MaxOffset returns the largest reachable offset.
func (s ScrollState) MaxOffset() float64 {
	return max(s.ContentHeight-s.ViewportHeight, 0)
}

// Region is an element's vertical extent in content coordinates.
type Region struct {
	Top    float64
	Height float64
}

// Bottom returns Top + Height.
func (r Region) Bottom() float64 { return r.Top + r.Height }

// Visible reports whether the region's top has crossed the line at
// line*viewport from the top of the viewport while its bottom is still on
// screen. A line of 0.8 matches "element top reaches 80% of the viewport".
func (r Region) Visible(s ScrollState, line float64) bool {
	top := r.Top - s.Offset
	bottom := r.Bottom() - s.Offset
	return top <= line*s.ViewportHeight && bottom >= 0
}

// Fraction maps the scroll offset to [0, 1] across the range that starts
// when the region's top reaches startLine*viewport and ends when its bottom
// reaches endLine*viewport. An empty range is a step at its start.
func (r Region) Fraction(s ScrollState, startLine, endLine float64) float64 {
	from := r.Top - startLine*s.ViewportHeight
	to := r.Bottom() - endLine*s.ViewportHeight
	if to <= from {
		if s.Offset >= from {
			return 1
		}
		return 0
	}
	return clamp01((s.Offset - from) / (to - from))
}

// Scroller owns the scroll offset of a virtual page and notifies
// subscribers when it changes. It is the only source of scroll signals; the
// engine consumes callbacks and never polls.
type Scroller struct {
	state    ScrollState
	handlers handlerRegistry
}

// NewScroller creates a scroller for content of the given height.
func NewScroller(viewportHeight, contentHeight float64) *Scroller {
	return &Scroller{state: ScrollState{
		ViewportHeight: max(viewportHeight, 0),
		ContentHeight:  max(contentHeight, 0),
	}}
}

// State returns the current reading.
func (s *Scroller) State() ScrollState { return s.state }

// OnScroll registers fn for offset and viewport changes.
func (s *Scroller) OnScroll(fn func(ScrollState)) CallbackHandle {
	id := s.handlers.newID()
	s.handlers.scroll = append(s.handlers.scroll, handler[func(ScrollState)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventScroll}
}

// ScrollTo moves to y, clamped to the reachable range.
func (s *Scroller) ScrollTo(y float64) {
	y = min(max(y, 0), s.state.MaxOffset())
	if y == s.state.Offset {
		return
	}
	s.state.Offset = y
	s.notify()
}

// ScrollBy moves by dy.
func (s *Scroller) ScrollBy(dy float64) {
	s.ScrollTo(s.state.Offset + dy)
}

// SetViewport updates the viewport height, e.g. on resize.
func (s *Scroller) SetViewport(h float64) {
	h = max(h, 0)
	if h == s.state.ViewportHeight {
		return
	}
	s.state.ViewportHeight = h
	s.state.Offset = min(s.state.Offset, s.state.MaxOffset())
	s.notify()
}

// SetContentHeight updates the page height.
func (s *Scroller) SetContentHeight(h float64) {
	h = max(h, 0)
	if h == s.state.ContentHeight {
		return
	}
	s.state.ContentHeight = h
	s.state.Offset = min(s.state.Offset, s.state.MaxOffset())
	s.notify()
}

// notify walks a private copy of the handler list, so a handler may scroll
// or unsubscribe while it runs.
func (s *Scroller) notify() {
	for _, h := range slices.Clone(s.handlers.scroll) {
		h.fn(s.state)
	}
}

// Watch triggers tl the first time region becomes visible at line. The
// predicate is evaluated once immediately and then on every scroll; the
// subscription removes itself after the trigger fires.
func Watch(s *Scroller, region Region, line float64, tl *Timeline) CallbackHandle {
	if tl.Trigger(region.Visible(s.State(), line)) || tl.HasPlayed() {
		return CallbackHandle{}
	}
	var h CallbackHandle
	h = s.OnScroll(func(st ScrollState) {
		if tl.HasPlayed() || tl.Cancelled() {
			h.Remove()
			return
		}
		if tl.Trigger(region.Visible(st, line)) {
			h.Remove()
		}
	})
	return h
}
