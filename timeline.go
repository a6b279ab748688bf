package sintax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action is one unit of timeline work. Apply receives the step's local
// progress in [0, 1]; it must reach its plain end state at 1.
type Action interface {
	Duration() float64
	Apply(p float64)
}

// TextAction writes a TextEffect's frames into a target node.
type TextAction struct {
	Effect TextEffect
	Target *Node
}

// Duration returns the effect length in seconds.
func (a TextAction) Duration() float64 { return a.Effect.Duration() }

// Apply samples the effect and writes the result. A nil or disposed target
// is a silent no-op.
func (a TextAction) Apply(p float64) {
	if !a.Target.writable() {
		return
	}
	a.Target.SetText(a.Effect.At(p))
}

// SetAction mutates a node instantly, e.g. to reveal a hidden group.
type SetAction struct {
	Target *Node
	Fn     func(*Node)
}

// Duration is always zero.
func (SetAction) Duration() float64 { return 0 }

// Apply runs Fn once the step is reached.
func (a SetAction) Apply(p float64) {
	if p < 1 || !a.Target.writable() || a.Fn == nil {
		return
	}
	a.Fn(a.Target)
}

// CallAction invokes a function when reached.
type CallAction func()

// Duration is always zero.
func (CallAction) Duration() float64 { return 0 }

// Apply calls the function at progress 1.
func (a CallAction) Apply(p float64) {
	if p >= 1 && a != nil {
		a()
	}
}

// --- Offsets ---

type offsetKind uint8

const (
	offsetAbsolute   offsetKind = iota // start at an absolute time
	offsetAfterStart                   // relative to the previous step's start
	offsetAfterEnd                     // relative to the previous step's end
)

// Offset places a step on the timeline relative to the timeline origin or
// to the previously added step.
type Offset struct {
	kind offsetKind
	d    float64
}

// At starts the step at absolute time t.
func At(t float64) Offset { return Offset{kind: offsetAbsolute, d: t} }

// AfterStart starts the step d seconds after the previous step started.
func AfterStart(d float64) Offset { return Offset{kind: offsetAfterStart, d: d} }

// AfterEnd starts the step d seconds after the previous step ended.
func AfterEnd(d float64) Offset { return Offset{kind: offsetAfterEnd, d: d} }

// BeforeEnd starts the step d seconds before the previous step ends.
func BeforeEnd(d float64) Offset { return Offset{kind: offsetAfterEnd, d: -d} }

// Next starts the step when the previous one ends.
func Next() Offset { return AfterEnd(0) }

// String renders the offset in the compact position syntax ParseOffset reads.
func (o Offset) String() string {
	num := strconv.FormatFloat(o.d, 'g', -1, 64)
	switch o.kind {
	case offsetAfterStart:
		if o.d == 0 {
			return "<"
		}
		return "<" + num
	case offsetAfterEnd:
		if o.d < 0 {
			return "-=" + strconv.FormatFloat(-o.d, 'g', -1, 64)
		}
		return "+=" + num
	default:
		return num
	}
}

// ErrInvalidOffset is returned by ParseOffset for malformed positions.
var ErrInvalidOffset = errors.New("invalid offset")

// ParseOffset reads a position string:
//
//	"1.2"   absolute time
//	"+=0.1" 0.1s after the previous end ("" and ">" mean "+=0")
//	"-=0.1" 0.1s before the previous end
//	"<0.08" 0.08s after the previous start ("<" means "<0")
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	var (
		kind offsetKind
		sign = 1.0
		num  string
	)
	switch {
	case s == "" || s == ">":
		return Next(), nil
	case s == "<":
		return AfterStart(0), nil
	case strings.HasPrefix(s, "+="):
		kind, num = offsetAfterEnd, s[2:]
	case strings.HasPrefix(s, "-="):
		kind, sign, num = offsetAfterEnd, -1, s[2:]
	case strings.HasPrefix(s, "<"):
		kind, num = offsetAfterStart, s[1:]
	case strings.HasPrefix(s, ">"):
		kind, num = offsetAfterEnd, s[1:]
	default:
		kind, num = offsetAbsolute, s
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Offset{}, fmt.Errorf("sintax: %w %q: %w", ErrInvalidOffset, s, err)
	}
	if kind == offsetAbsolute && v < 0 {
		return Offset{}, fmt.Errorf("sintax: %w %q: negative absolute time", ErrInvalidOffset, s)
	}
	return Offset{kind: kind, d: sign * v}, nil
}

// MustParseOffset is ParseOffset for literals; it panics on error.
func MustParseOffset(s string) Offset {
	o, err := ParseOffset(s)
	if err != nil {
		panic(err)
	}
	return o
}

// --- Timeline ---

// PlayState is the timeline's play-once state. The only transition is
// Idle -> Played.
type PlayState uint8

const (
	Idle   PlayState = iota // waiting for the trigger
	Played                  // triggered; never returns to Idle
)

type timelineStep struct {
	action   Action
	start    float64
	duration float64
	done     bool
}

// Timeline sequences actions with relative offsets on a virtual clock and
// plays them at most once. It is driven by Update, usually through Attach.
type Timeline struct {
	steps     []timelineStep
	state     PlayState
	clock     float64
	running   bool
	dormant   bool
	cancelled bool
	lastStart float64
	lastEnd   float64
	end       float64
	frame     CallbackHandle

	// OnComplete runs once after the final deterministic pass.
	OnComplete func()
}

// NewTimeline creates an idle, empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add appends an action at the given offset and returns the timeline for
// chaining. Start times are resolved immediately and never go below zero.
func (t *Timeline) Add(a Action, off Offset) *Timeline {
	if a == nil {
		panic("sintax: cannot add nil action")
	}
	d := max(a.Duration(), 0)
	var start float64
	switch off.kind {
	case offsetAfterStart:
		start = t.lastStart + off.d
	case offsetAfterEnd:
		start = t.lastEnd + off.d
	default:
		start = off.d
	}
	start = max(start, 0)
	t.steps = append(t.steps, timelineStep{action: a, start: start, duration: d})
	t.lastStart = start
	t.lastEnd = start + d
	t.end = max(t.end, t.lastEnd)
	return t
}

// Text adds a text effect writing into target.
func (t *Timeline) Text(e TextEffect, target *Node, off Offset) *Timeline {
	if target == nil {
		debugWarnf("timeline step %d: text target is nil", len(t.steps))
	}
	return t.Add(TextAction{Effect: e, Target: target}, off)
}

// Tween adds a property tween.
func (t *Timeline) Tween(g *TweenGroup, off Offset) *Timeline {
	return t.Add(g, off)
}

// Set adds an instant mutation of target.
func (t *Timeline) Set(target *Node, fn func(*Node), off Offset) *Timeline {
	if target == nil {
		debugWarnf("timeline step %d: set target is nil", len(t.steps))
	}
	return t.Add(SetAction{Target: target, Fn: fn}, off)
}

// Call adds an instant callback.
func (t *Timeline) Call(fn func(), off Offset) *Timeline {
	return t.Add(CallAction(fn), off)
}

// Len returns the number of steps.
func (t *Timeline) Len() int { return len(t.steps) }

// StartTime returns the absolute start time of step i.
func (t *Timeline) StartTime(i int) float64 { return t.steps[i].start }

// EndTime returns the absolute end time of step i.
func (t *Timeline) EndTime(i int) float64 { return t.steps[i].start + t.steps[i].duration }

// Duration returns the end time of the latest-ending step.
func (t *Timeline) Duration() float64 { return t.end }

// State returns the play-once state.
func (t *Timeline) State() PlayState { return t.state }

// HasPlayed reports whether the timeline has been triggered. Once true it
// stays true.
func (t *Timeline) HasPlayed() bool { return t.state == Played }

// Active reports whether the timeline is currently advancing.
func (t *Timeline) Active() bool { return t.running }

// Dormant reports whether playback finished and resources were released.
func (t *Timeline) Dormant() bool { return t.dormant }

// Clock returns the virtual time in seconds since the trigger.
func (t *Timeline) Clock() float64 { return t.clock }

// Progress returns clock / duration in [0, 1].
func (t *Timeline) Progress() float64 {
	if t.end == 0 {
		if t.state == Played {
			return 1
		}
		return 0
	}
	return clamp01(t.clock / t.end)
}

// Trigger feeds the trigger predicate's current value. The first true value
// moves Idle -> Played and starts the clock; every later call is a no-op.
// Reports whether this call started playback.
func (t *Timeline) Trigger(visible bool) bool {
	if t.state == Played || t.cancelled || !visible {
		return false
	}
	t.state = Played
	t.running = true
	return true
}

// Play starts a timeline that has no visibility predicate.
func (t *Timeline) Play() bool {
	return t.Trigger(true)
}

// Update advances the clock by dt seconds and applies every step whose
// window has been reached. Past the last end the timeline runs a final
// pass at progress 1 and goes dormant.
func (t *Timeline) Update(dt float64) {
	if !t.running || t.cancelled {
		return
	}
	if dt > 0 {
		t.clock += dt
	}
	if t.clock >= t.end {
		t.finish()
		return
	}
	for i := range t.steps {
		s := &t.steps[i]
		if s.done || t.clock < s.start {
			continue
		}
		p := 1.0
		if s.duration > 0 {
			p = clamp01((t.clock - s.start) / s.duration)
		}
		s.action.Apply(p)
		s.done = p >= 1
	}
}

// finish forces every unfinished step to its end state, then releases the
// actions.
func (t *Timeline) finish() {
	for i := range t.steps {
		s := &t.steps[i]
		if !s.done {
			s.action.Apply(1)
			s.done = true
		}
	}
	t.release()
	t.dormant = true
	if t.OnComplete != nil {
		fn := t.OnComplete
		t.OnComplete = nil
		fn()
	}
}

// Cancel stops playback immediately. No action is applied afterwards, so
// targets owned by an unmounted section are never written again.
func (t *Timeline) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.OnComplete = nil
	t.release()
}

// Cancelled reports whether Cancel was called.
func (t *Timeline) Cancelled() bool { return t.cancelled }

func (t *Timeline) release() {
	t.running = false
	for i := range t.steps {
		t.steps[i].action = nil
	}
	t.frame.Remove()
	t.frame = CallbackHandle{}
}

// Attach drives the timeline from the scene's frame loop. The registration
// is removed when the timeline finishes or is cancelled.
func (t *Timeline) Attach(s *Scene) CallbackHandle {
	t.frame.Remove()
	t.frame = s.OnFrame(t.Update)
	return t.frame
}
