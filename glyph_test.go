package sintax

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var allPolicies = []Policy{Typewriter, Decode, Scramble}

func TestSampleFullProgressReturnsSource(t *testing.T) {
	sources := []string{"SIGNAL", "Chaos eliminated. Deploying signal...", "we do not add\nwe subtract", "ｱｲ ｳ", "é👍🏽x"}
	for _, policy := range allPolicies {
		for _, src := range sources {
			opts := SampleOptions{Cursor: "█", Rand: NewRandomSource(1)}
			if got := Sample(src, 1, policy, opts); got != src {
				t.Errorf("%v: Sample(%q, 1) = %q", policy, src, got)
			}
			if got := Sample(src, 7, policy, opts); got != src {
				t.Errorf("%v: Sample(%q, 7) = %q, progress should clamp", policy, src, got)
			}
		}
	}
}

func TestSampleEmptySource(t *testing.T) {
	for _, policy := range allPolicies {
		for _, p := range []float64{-1, 0, 0.5, 1, 2} {
			if got := Sample("", p, policy, SampleOptions{Cursor: "_"}); got != "" {
				t.Errorf("%v: Sample(\"\", %v) = %q, want empty", policy, p, got)
			}
		}
	}
}

func TestSampleLengthPreserved(t *testing.T) {
	src := "deploy --automate --eliminate-noise"
	rng := NewRandomSource(7)
	for _, policy := range []Policy{Decode, Scramble} {
		for i := 0; i <= 20; i++ {
			p := float64(i) / 20
			got := Sample(src, p, policy, SampleOptions{Rand: rng})
			if utf8.RuneCountInString(got) != len(src) {
				t.Errorf("%v p=%v: len %d, want %d (%q)", policy, p, utf8.RuneCountInString(got), len(src), got)
			}
		}
	}
	// Typewriter keeps the length when padding.
	for i := 0; i <= 20; i++ {
		got := Sample(src, float64(i)/20, Typewriter, SampleOptions{Pad: '·'})
		if utf8.RuneCountInString(got) != len(src) {
			t.Errorf("padded typewriter p=%v: len %d, want %d", float64(i)/20, utf8.RuneCountInString(got), len(src))
		}
	}
}

func TestTypewriterMonotonic(t *testing.T) {
	src := "Scanning workflows for inefficiencies..."
	prev := ""
	for i := 0; i <= 100; i++ {
		got := Sample(src, float64(i)/100, Typewriter, SampleOptions{})
		if !strings.HasPrefix(got, prev) {
			t.Fatalf("p=%v: %q does not extend %q", float64(i)/100, got, prev)
		}
		if !strings.HasPrefix(src, got) {
			t.Fatalf("p=%v: %q is not a prefix of the source", float64(i)/100, got)
		}
		prev = got
	}
}

func TestTypewriterCursor(t *testing.T) {
	if got := Sample("abcd", 0.5, Typewriter, SampleOptions{Cursor: "█"}); got != "ab█" {
		t.Errorf("got %q, want %q", got, "ab█")
	}
	if got := Sample("abcd", 0, Typewriter, SampleOptions{Cursor: "█"}); got != "█" {
		t.Errorf("got %q, want cursor only", got)
	}
	if got := Sample("abcd", 1, Typewriter, SampleOptions{Cursor: "█"}); got != "abcd" {
		t.Errorf("got %q, want no trailing cursor at completion", got)
	}
}

func TestDecodeAndScrambleKeepWhitespace(t *testing.T) {
	src := "IN THE\nNOISE\tNOW  ."
	rng := NewRandomSource(3)
	for _, policy := range []Policy{Decode, Scramble} {
		for i := 0; i <= 50; i++ {
			got := []rune(Sample(src, float64(i)/50, policy, SampleOptions{Rand: rng}))
			for j, r := range src {
				if (r == ' ' || r == '\n' || r == '\t') && got[j] != r {
					t.Fatalf("%v p=%v: whitespace at %d replaced by %q", policy, float64(i)/50, j, got[j])
				}
			}
		}
	}
}

func TestDecodeDeterministicWithSeqRandom(t *testing.T) {
	noise := NewAlphabet("#%")
	opts := SampleOptions{Noise: noise, Rand: &seqRandom{ints: []int{0, 1}}}
	// n=4, skew=0.15: index i revealed when p > i/4 + 0.15.
	got := Sample("ABCD", 0.5, Decode, opts)
	// i=0: 0.5>0.15 yes, i=1: 0.5>0.40 yes, i=2: 0.5>0.65 no, i=3: no.
	if got != "AB#%" {
		t.Errorf("got %q, want %q", got, "AB#%")
	}
}

func TestDecodeCustomSkew(t *testing.T) {
	opts := SampleOptions{RevealSkew: 0.5, Noise: NewAlphabet("*"), Rand: &seqRandom{}}
	if got := Sample("AB", 0.6, Decode, opts); got != "A*" {
		t.Errorf("got %q, want %q", got, "A*")
	}
}

func TestScrambleLockFront(t *testing.T) {
	opts := SampleOptions{Symbols: NewAlphabet("?"), Rand: &seqRandom{}}
	tests := []struct {
		p    float64
		want string
	}{
		{0, "??????"},
		{0.34, "SI????"},
		{0.5, "SIG???"},
		{0.99, "SIGNA?"},
		{1, "SIGNAL"},
	}
	for _, tt := range tests {
		if got := Sample("SIGNAL", tt.p, Scramble, opts); got != tt.want {
			t.Errorf("p=%v: got %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestScrambleDuration(t *testing.T) {
	got := ScrambleDuration(6, DefaultScrambleLockStep, DefaultScrambleTick)
	if want := 18 * DefaultScrambleTick; got != want {
		t.Errorf("ScrambleDuration(6) = %v, want %v", got, want)
	}
	if got := ScrambleDuration(0, DefaultScrambleLockStep, DefaultScrambleTick); got != 0 {
		t.Errorf("ScrambleDuration(0) = %v, want 0", got)
	}
}

func TestGraphemeAwareLength(t *testing.T) {
	if n := Len("👍🏽ok"); n != 3 {
		t.Errorf("Len = %d, want 3", n)
	}
	got := Sample("👍🏽ok", 0.34, Typewriter, SampleOptions{})
	if got != "👍🏽" {
		t.Errorf("typewriter split a grapheme: %q", got)
	}
}

func TestPolicyString(t *testing.T) {
	if Decode.String() != "decode" || Policy(99).String() != "unknown" {
		t.Error("unexpected Policy.String output")
	}
}
