package sintax

import (
	"math"
	"strings"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTypeTextDuration(t *testing.T) {
	e := TypeText("sintax:~$ deploy", 0.018)
	if want := 16 * 0.018; math.Abs(e.Duration()-want) > 1e-12 {
		t.Errorf("Duration = %v, want %v", e.Duration(), want)
	}
	if e.Policy() != Typewriter {
		t.Errorf("Policy = %v, want Typewriter", e.Policy())
	}
	if d := TypeText("abcd", 0).Duration(); math.Abs(d-4*DefaultTypeSpeed) > 1e-12 {
		t.Errorf("default speed duration = %v", d)
	}
}

func TestTypeTextIsLinear(t *testing.T) {
	e := TypeText("abcdefghij", 0.1)
	if got := e.At(0.5); got != "abcde" {
		t.Errorf("At(0.5) = %q, want %q", got, "abcde")
	}
	if got := e.At(0); got != "" {
		t.Errorf("At(0) = %q, want empty", got)
	}
}

func TestTextEffectCursor(t *testing.T) {
	e := TypeText("abcd", 0.1).WithCursor("_")
	if got := e.At(0.5); got != "ab_" {
		t.Errorf("At(0.5) = %q, want %q", got, "ab_")
	}
	if got := e.At(1); got != "abcd" {
		t.Errorf("At(1) = %q, want plain source", got)
	}
}

func TestTextEffectIsImmutable(t *testing.T) {
	base := DecodeText("NOISE", 0.5)
	longer := base.WithDuration(2)
	cursor := base.WithCursor("█")
	if base.Duration() != 0.5 {
		t.Errorf("base duration changed to %v", base.Duration())
	}
	if longer.Duration() != 2 {
		t.Errorf("WithDuration = %v, want 2", longer.Duration())
	}
	if base.opts.Cursor != "" || cursor.opts.Cursor != "█" {
		t.Error("WithCursor modified the receiver")
	}
}

func TestDecodeTextSignal(t *testing.T) {
	opts := SampleOptions{Rand: NewRandomSource(3)}
	e := DecodeText("SIGNAL", 0.5).WithOptions(opts)

	start := []rune(e.At(0))
	if len(start) != 6 {
		t.Fatalf("At(0) has %d glyphs, want 6", len(start))
	}
	for i, r := range start {
		if !strings.ContainsRune(string(NoiseGlyphs), r) {
			t.Errorf("glyph %d = %q is not a noise glyph", i, r)
		}
	}
	if got := e.At(1); got != "SIGNAL" {
		t.Errorf("At(1) = %q, want SIGNAL", got)
	}
}

func TestDecodeTextEasesProgress(t *testing.T) {
	// OutCubic runs ahead of linear, so at 0.5 more characters are revealed
	// than a linear decode would show.
	opts := SampleOptions{Rand: &seqRandom{ints: []int{0}}}
	src := "ABCDEFGHIJ"
	eased := DecodeText(src, 1).WithOptions(opts).At(0.5)
	linear := DecodeText(src, 1).WithEase(ease.Linear).WithOptions(opts).At(0.5)
	count := func(s string) int {
		n := 0
		for i, r := range []rune(s) {
			if r == rune(src[i]) {
				n++
			}
		}
		return n
	}
	if count(eased) <= count(linear) {
		t.Errorf("eased %q reveals %d, linear %q reveals %d", eased, count(eased), linear, count(linear))
	}
}

func TestScrambleTextDuration(t *testing.T) {
	e := ScrambleText("SERVICES")
	want := ScrambleDuration(8, DefaultScrambleLockStep, DefaultScrambleTick)
	if e.Duration() != want {
		t.Errorf("Duration = %v, want %v", e.Duration(), want)
	}
	if e.Policy() != Scramble {
		t.Errorf("Policy = %v, want Scramble", e.Policy())
	}
}

func TestApplyEaseClamps(t *testing.T) {
	if got := applyEase(ease.OutBack, 0.6); got > 1 {
		t.Errorf("applyEase(OutBack, 0.6) = %v, want <= 1", got)
	}
	if got := applyEase(nil, 0.3); got != 0.3 {
		t.Errorf("applyEase(nil, 0.3) = %v, want 0.3", got)
	}
}

func TestDecodeTextDecelerates(t *testing.T) {
	// 1-(1-t)^3 at the midpoint.
	if got := applyEase(DecodeText("x", 1).ease, 0.5); !approx(got, 0.875) {
		t.Errorf("decode ease at 0.5 = %v, want 0.875", got)
	}
}

func TestScrambleTextWithOptionsUsesSymbols(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"symbolGlyphs": "#"}`))
	if err != nil {
		t.Fatal(err)
	}
	e := ScrambleTextAt("MENU", cfg.ScrambleLockStep, cfg.ScrambleTick).WithOptions(cfg.SampleOptions())
	if got := e.At(0.5); got != "ME##" {
		t.Errorf("At(0.5) = %q, want %q", got, "ME##")
	}
}
