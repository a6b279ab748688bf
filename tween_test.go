package sintax

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.X != 100 || node.Y != 200 {
		t.Errorf("position = (%f, %f), want exactly (100, 200)", node.X, node.Y)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewRect("color", 1, 1, Color{R: 1, G: 0, B: 0, A: 1})
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenColor(node, target, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.Color != target {
		t.Errorf("Color = %+v, want %+v", node.Color, target)
	}
}

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewContainer("alpha")

	tw := TweenAlpha(node, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if node.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", node.Alpha)
	}
}

func TestTweenStartValuesCapturedOnFirstAdvance(t *testing.T) {
	node := NewContainer("late")
	g := TweenAlpha(node, 1, 1, ease.Linear)

	// Something else changes the field after construction.
	node.Alpha = 0
	g.Apply(0.5)

	if math.Abs(node.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.5 (interpolated from 0)", node.Alpha)
	}
}

func TestTweenFromOverridesCurrentValues(t *testing.T) {
	node := NewContainer("fromto")
	node.Alpha = 1
	g := TweenAlpha(node, 0.35, 1, ease.Linear).From(0)

	g.Apply(0)
	if node.Alpha != 0 {
		t.Errorf("Alpha at 0 = %f, want explicit start 0", node.Alpha)
	}
	g.Apply(1)
	if node.Alpha != 0.35 {
		t.Errorf("Alpha at 1 = %f, want 0.35", node.Alpha)
	}
}

func TestTweenApplyIsSeekable(t *testing.T) {
	node := NewContainer("seek")
	g := TweenPosition(node, 100, 0, 2, ease.Linear)

	g.Apply(0.75)
	if math.Abs(node.X-75) > 0.01 {
		t.Errorf("X at 0.75 = %f, want 75", node.X)
	}
	g.Apply(0.25)
	if math.Abs(node.X-25) > 0.01 {
		t.Errorf("X after seeking back = %f, want 25", node.X)
	}
}

func TestTweenZeroDurationJumps(t *testing.T) {
	node := NewContainer("instant")
	g := TweenAlpha(node, 0.2, 0, ease.Linear)
	g.Apply(0)
	if node.Alpha != 0.2 || !g.Done {
		t.Errorf("zero-duration tween: Alpha = %f Done = %v, want 0.2 true", node.Alpha, g.Done)
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)
	g.Apply(0.5)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.X != 10 || node.Y != 20 {
		t.Errorf("disposed node moved to (%f, %f)", node.X, node.Y)
	}
}

func TestTweenNilTargetIsNoOp(t *testing.T) {
	g := TweenAlpha(nil, 1, 1, ease.Linear)
	g.Apply(0.5)
	g.Update(0.5)
	if !g.Done {
		t.Error("nil-target tween should finish immediately")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	nodeL := NewContainer("linear")
	nodeC := NewContainer("cubic")

	gL := TweenPosition(nodeL, 100, 0, 1.0, ease.Linear)
	gC := TweenPosition(nodeC, 100, 0, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	if math.Abs(nodeL.X-nodeC.X) < 1.0 {
		t.Errorf("easing curves should differ at midpoint: linear=%f cubic=%f", nodeL.X, nodeC.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewContainer("alloc")
	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)

	// Warm up; the first call builds the tweens.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestBlinkSteps(t *testing.T) {
	cursor := NewText("cursor", "█")
	b := NewBlink(cursor, 0.5)

	b.Update(0.25)
	if cursor.Alpha != 1 {
		t.Errorf("first half-cycle alpha = %f, want 1", cursor.Alpha)
	}
	b.Update(0.5)
	if cursor.Alpha != 0 {
		t.Errorf("second half-cycle alpha = %f, want 0", cursor.Alpha)
	}
	b.Update(0.5)
	if cursor.Alpha != 1 {
		t.Errorf("third half-cycle alpha = %f, want 1", cursor.Alpha)
	}
}
