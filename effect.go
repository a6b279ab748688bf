package sintax

import (
	"github.com/tanema/gween/ease"
)

// TextEffect is an immutable description of one text animation: which policy
// drives it, what it resolves to, and how long it takes. Builders return
// modified copies.
type TextEffect struct {
	policy   Policy
	source   string
	duration float64
	ease     ease.TweenFunc
	opts     SampleOptions
}

// TypeText types source at speed seconds per character with no easing.
// A non-positive speed uses DefaultTypeSpeed.
func TypeText(source string, speed float64) TextEffect {
	if speed <= 0 {
		speed = DefaultTypeSpeed
	}
	return TextEffect{
		policy:   Typewriter,
		source:   source,
		duration: float64(Len(source)) * speed,
		ease:     ease.Linear,
	}
}

// DecodeText resolves source out of noise over duration seconds, decelerating
// towards the end.
func DecodeText(source string, duration float64) TextEffect {
	return TextEffect{
		policy:   Decode,
		source:   source,
		duration: max(duration, 0),
		ease:     ease.OutCubic,
	}
}

// ScrambleText locks source in left to right at the canonical scramble rate.
// The duration grows linearly with the character count.
func ScrambleText(source string) TextEffect {
	return ScrambleTextAt(source, DefaultScrambleLockStep, DefaultScrambleTick)
}

// ScrambleTextAt is ScrambleText with an explicit lock step and tick length.
func ScrambleTextAt(source string, lockStep, tick float64) TextEffect {
	return TextEffect{
		policy:   Scramble,
		source:   source,
		duration: ScrambleDuration(Len(source), lockStep, tick),
		ease:     ease.Linear,
	}
}

// WithCursor returns a copy that appends cursor while typing.
func (e TextEffect) WithCursor(cursor string) TextEffect {
	e.opts.Cursor = cursor
	return e
}

// WithEase returns a copy using fn to shape progress.
func (e TextEffect) WithEase(fn ease.TweenFunc) TextEffect {
	e.ease = fn
	return e
}

// WithDuration returns a copy lasting d seconds.
func (e TextEffect) WithDuration(d float64) TextEffect {
	e.duration = max(d, 0)
	return e
}

// WithOptions returns a copy sampling with opts. The cursor already set by
// WithCursor is kept when opts.Cursor is empty.
func (e TextEffect) WithOptions(opts SampleOptions) TextEffect {
	if opts.Cursor == "" {
		opts.Cursor = e.opts.Cursor
	}
	e.opts = opts
	return e
}

// Policy returns the effect's sampling policy.
func (e TextEffect) Policy() Policy { return e.policy }

// Source returns the text the effect resolves to.
func (e TextEffect) Source() string { return e.source }

// Duration returns the effect length in seconds.
func (e TextEffect) Duration() float64 { return e.duration }

// At returns the rendered text at linear progress p in [0, 1]. Easing is
// applied before sampling. At p >= 1 the result is exactly Source.
func (e TextEffect) At(p float64) string {
	p = clampProgress(p)
	if p >= 1 {
		return e.source
	}
	return Sample(e.source, applyEase(e.ease, p), e.policy, e.opts)
}

// applyEase maps linear progress through a gween easing function. The
// result is clamped so overshooting curves cannot run past the end state.
func applyEase(fn ease.TweenFunc, p float64) float64 {
	if fn == nil {
		return p
	}
	return clamp01(float64(fn(float32(p), 0, 1, 1)))
}
