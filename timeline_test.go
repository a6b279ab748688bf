package sintax

import (
	"errors"
	"math"
	"testing"
)

// fixedAction records every Apply call.
type fixedAction struct {
	d       float64
	applied []float64
}

func (a *fixedAction) Duration() float64 { return a.d }
func (a *fixedAction) Apply(p float64)   { a.applied = append(a.applied, p) }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTimelineOffsetArithmetic(t *testing.T) {
	tl := NewTimeline().
		Add(&fixedAction{d: 0.3}, At(0)).
		Add(&fixedAction{d: 0.2}, AfterStart(0.1)).
		Add(&fixedAction{d: 0.5}, BeforeEnd(0.05))

	wantStarts := []float64{0, 0.1, 0.25}
	for i, want := range wantStarts {
		if got := tl.StartTime(i); !approx(got, want) {
			t.Errorf("StartTime(%d) = %v, want %v", i, got, want)
		}
	}
	if got := tl.EndTime(2); !approx(got, 0.75) {
		t.Errorf("EndTime(2) = %v, want 0.75", got)
	}
	if got := tl.Duration(); !approx(got, 0.75) {
		t.Errorf("Duration = %v, want 0.75", got)
	}
}

func TestTimelineOffsetsNeverNegative(t *testing.T) {
	tl := NewTimeline().
		Add(&fixedAction{d: 0.1}, At(0)).
		Add(&fixedAction{d: 0.1}, BeforeEnd(1))
	if got := tl.StartTime(1); got != 0 {
		t.Errorf("StartTime(1) = %v, want 0", got)
	}
}

func TestTimelineDurationUsesLatestEnd(t *testing.T) {
	tl := NewTimeline().
		Add(&fixedAction{d: 2}, At(0)).
		Add(&fixedAction{d: 0.1}, AfterStart(0.1))
	if got := tl.Duration(); got != 2 {
		t.Errorf("Duration = %v, want 2", got)
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		want Offset
	}{
		{"0.3", At(0.3)},
		{"+=0.1", AfterEnd(0.1)},
		{"-=0.05", BeforeEnd(0.05)},
		{"<0.08", AfterStart(0.08)},
		{"<", AfterStart(0)},
		{"", Next()},
		{">", Next()},
		{" +=0.2 ", AfterEnd(0.2)},
	}
	for _, tt := range tests {
		got, err := ParseOffset(tt.in)
		if err != nil {
			t.Errorf("ParseOffset(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOffset(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseOffsetErrors(t *testing.T) {
	for _, in := range []string{"abc", "+=x", "<-", "-1"} {
		if _, err := ParseOffset(in); !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("ParseOffset(%q) err = %v, want ErrInvalidOffset", in, err)
		}
	}
}

func TestOffsetStringRoundTrip(t *testing.T) {
	for _, o := range []Offset{At(1.2), AfterEnd(0.1), BeforeEnd(0.05), AfterStart(0.08), AfterStart(0)} {
		got, err := ParseOffset(o.String())
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", o.String(), err)
		}
		if got != o {
			t.Errorf("round trip %q = %+v, want %+v", o.String(), got, o)
		}
	}
}

func TestMustParseOffsetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseOffset("nope")
}

func TestTimelinePlaysOnce(t *testing.T) {
	calls := 0
	tl := NewTimeline().Call(func() { calls++ }, At(0.1))

	tl.Update(1)
	if calls != 0 || tl.HasPlayed() {
		t.Fatal("timeline ran before trigger")
	}
	if tl.Trigger(false) {
		t.Error("Trigger(false) started playback")
	}
	if !tl.Trigger(true) {
		t.Fatal("first Trigger(true) did not start playback")
	}
	tl.Update(0.5)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// Scrolling away and back must not restart.
	tl.Trigger(false)
	if tl.Trigger(true) {
		t.Error("second Trigger(true) restarted playback")
	}
	tl.Update(0.5)
	if calls != 1 {
		t.Errorf("calls after re-trigger = %d, want 1", calls)
	}
	if tl.State() != Played {
		t.Errorf("State = %v, want Played", tl.State())
	}
}

func TestTimelineProgressPerStep(t *testing.T) {
	a := &fixedAction{d: 1}
	tl := NewTimeline().Add(a, At(0.5))
	tl.Add(&fixedAction{d: 0}, At(2))
	tl.Play()

	tl.Update(0.25) // before start
	if len(a.applied) != 0 {
		t.Fatalf("applied before start: %v", a.applied)
	}
	tl.Update(0.75) // clock 1.0
	if len(a.applied) != 1 || !approx(a.applied[0], 0.5) {
		t.Fatalf("applied = %v, want [0.5]", a.applied)
	}
	tl.Update(1) // clock 2.0 = end
	if last := a.applied[len(a.applied)-1]; last != 1 {
		t.Errorf("final progress = %v, want 1", last)
	}
	if !tl.Dormant() || tl.Active() {
		t.Error("timeline should be dormant after passing its end")
	}
}

func TestTimelineFinalPassIsDeterministic(t *testing.T) {
	node := NewText("title", "")
	tl := NewTimeline().
		Text(DecodeText("SIGNAL", 0.5), node, At(0)).
		Text(DecodeText("NOISE", 0.5), NewText("n", ""), AfterStart(0.08))
	completed := false
	tl.OnComplete = func() { completed = true }
	tl.Play()

	tl.Update(0)
	if node.Text() == "SIGNAL" {
		t.Fatal("decode resolved at t=0")
	}
	if n := Len(node.Text()); n != 6 {
		t.Errorf("decode at t=0 has %d glyphs, want 6", n)
	}
	// One large step past the end skips every intermediate frame.
	tl.Update(5)
	if node.Text() != "SIGNAL" {
		t.Errorf("final text = %q, want SIGNAL", node.Text())
	}
	if !completed {
		t.Error("OnComplete not called")
	}
}

func TestTimelineSignalAtHalfSecond(t *testing.T) {
	node := NewText("signal", "")
	tl := NewTimeline().Text(DecodeText("SIGNAL", 0.5), node, At(0))
	tl.Play()
	tl.Update(0.25)
	tl.Update(0.25)
	if node.Text() != "SIGNAL" {
		t.Errorf("text at t=0.5 = %q, want SIGNAL", node.Text())
	}
}

func TestTimelineMissingTargetIsNoOp(t *testing.T) {
	other := NewText("other", "")
	gone := NewText("gone", "old")
	gone.Dispose()
	tl := NewTimeline().
		Text(TypeText("abc", 0.1), nil, At(0)).
		Text(TypeText("xyz", 0.1), gone, At(0)).
		Set(nil, func(n *Node) { n.Visible = false }, At(0)).
		Text(TypeText("ok", 0.1), other, At(0))
	tl.Play()
	tl.Update(1)
	if other.Text() != "ok" {
		t.Errorf("other = %q, want ok", other.Text())
	}
	if gone.Text() != "old" {
		t.Errorf("disposed node was written: %q", gone.Text())
	}
}

func TestTimelineCancelStopsWrites(t *testing.T) {
	node := NewText("line", "")
	completed := false
	tl := NewTimeline().Text(TypeText("abcdefghij", 0.1), node, At(0))
	tl.OnComplete = func() { completed = true }
	tl.Play()
	tl.Update(0.3)
	mid := node.Text()
	if mid != "abc" {
		t.Fatalf("mid text = %q, want abc", mid)
	}

	tl.Cancel()
	tl.Update(10)
	if node.Text() != mid {
		t.Errorf("text after cancel = %q, want %q", node.Text(), mid)
	}
	if completed {
		t.Error("OnComplete ran after Cancel")
	}
	if !tl.Cancelled() {
		t.Error("Cancelled() = false")
	}
	if tl.Trigger(true) {
		t.Error("cancelled timeline accepted a trigger")
	}
}

func TestTimelineSetAction(t *testing.T) {
	group := NewContainer("title")
	group.Visible = false
	tl := NewTimeline().
		Add(&fixedAction{d: 1}, At(0)).
		Set(group, func(n *Node) { n.Visible = true }, AfterStart(0.5))
	tl.Play()
	tl.Update(0.4)
	if group.Visible {
		t.Fatal("Set applied before its start")
	}
	tl.Update(0.2)
	if !group.Visible {
		t.Error("Set not applied at its start")
	}
}

func TestTimelineTweenStep(t *testing.T) {
	bar := NewRect("bar", 100, 4, ColorLight)
	bar.ScaleX = 0
	tl := NewTimeline().Tween(TweenScale(bar, 1, 1, 0.6, nil), At(0))
	tl.Play()
	tl.Update(0.3)
	if !approx(bar.ScaleX, 0.5) {
		t.Errorf("ScaleX at half = %v, want 0.5", bar.ScaleX)
	}
	tl.Update(1)
	if bar.ScaleX != 1 {
		t.Errorf("ScaleX at end = %v, want 1", bar.ScaleX)
	}
}

func TestTimelineProgress(t *testing.T) {
	tl := NewTimeline().Add(&fixedAction{d: 2}, At(0))
	if tl.Progress() != 0 {
		t.Errorf("Progress before play = %v", tl.Progress())
	}
	tl.Play()
	tl.Update(0.5)
	if !approx(tl.Progress(), 0.25) {
		t.Errorf("Progress = %v, want 0.25", tl.Progress())
	}
	empty := NewTimeline()
	empty.Play()
	if empty.Progress() != 1 {
		t.Errorf("empty Progress after play = %v, want 1", empty.Progress())
	}
}

func TestTimelineAddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewTimeline().Add(nil, At(0))
}

func TestTimelineAttachRemovesItself(t *testing.T) {
	s := NewScene()
	node := NewText("n", "")
	tl := NewTimeline().Text(TypeText("hi", 0.1), node, At(0))
	tl.Attach(s)
	tl.Play()
	if len(s.handlers.frame) != 1 {
		t.Fatalf("frame handlers = %d, want 1", len(s.handlers.frame))
	}
	s.update(1)
	if node.Text() != "hi" {
		t.Errorf("text = %q, want hi", node.Text())
	}
	if len(s.handlers.frame) != 0 {
		t.Errorf("frame handlers after finish = %d, want 0", len(s.handlers.frame))
	}
}
