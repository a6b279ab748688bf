package sintax

import "math/rand/v2"

// RandomSource supplies the pseudo-randomness behind glyph substitution,
// glitching and the pixel shuffle. Tests inject a deterministic sequence.
type RandomSource interface {
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRandomSource returns a seeded PCG source. The same seed yields the same
// glyph sequence.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource forwards to math/rand/v2's auto-seeded top-level functions.
type globalSource struct{}

func (globalSource) IntN(n int) int    { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandom is used whenever a nil RandomSource is passed.
var DefaultRandom RandomSource = globalSource{}

func orDefault(r RandomSource) RandomSource {
	if r == nil {
		return DefaultRandom
	}
	return r
}
