package sintax

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Policy selects how Sample maps progress to visible characters.
type Policy uint8

const (
	Typewriter Policy = iota // reveal a growing prefix verbatim
	Decode                   // noise that resolves left to right with a skew
	Scramble                 // symbols that lock in left to right
)

func (p Policy) String() string {
	switch p {
	case Typewriter:
		return "typewriter"
	case Decode:
		return "decode"
	case Scramble:
		return "scramble"
	default:
		return "unknown"
	}
}

// Canonical tunables.
const (
	DefaultRevealSkew       = 0.15
	DefaultScrambleLockStep = 1.0 / 3.0
	DefaultScrambleTick     = 0.030 // seconds
	DefaultTypeSpeed        = 0.025 // seconds per character
)

// Alphabet is a fixed set of substitution glyphs.
type Alphabet []rune

// NewAlphabet returns the runes of s as an Alphabet.
func NewAlphabet(s string) Alphabet {
	return Alphabet([]rune(s))
}

// Pick returns a uniformly random glyph. An empty alphabet yields '?'.
func (a Alphabet) Pick(rng RandomSource) rune {
	if len(a) == 0 {
		return '?'
	}
	return a[orDefault(rng).IntN(len(a))]
}

// Built-in alphabets.
var (
	NoiseGlyphs  = NewAlphabet("▓▒░█▀▄┃┣┫╋╬═║01<>{}[]!?#*")
	SymbolGlyphs = NewAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_+-=[]{}|;:,.<>?")
	MatrixGlyphs = NewAlphabet("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ0123456789")
	BlockGlyphs  = NewAlphabet("░▒▓█▀▄▌▐■□▪▫▖▗▘▙▚▛▜▝▞▟")
	HexGlyphs    = NewAlphabet("0123456789ABCDEF")
)

// SampleOptions tunes a Sample call. The zero value uses the defaults.
type SampleOptions struct {
	// Cursor is appended by Typewriter while progress < 1.
	Cursor string
	// Pad, when non-zero, fills Typewriter's hidden positions so the output
	// keeps the source length.
	Pad rune
	// RevealSkew delays Decode's reveal front. Zero means DefaultRevealSkew.
	RevealSkew float64
	// Noise is Decode's substitution alphabet. Nil means NoiseGlyphs.
	Noise Alphabet
	// Symbols is Scramble's substitution alphabet. Nil means SymbolGlyphs.
	Symbols Alphabet
	// Rand drives substitution. Nil means DefaultRandom.
	Rand RandomSource
}

func (o *SampleOptions) revealSkew() float64 {
	if o.RevealSkew == 0 {
		return DefaultRevealSkew
	}
	return math.Max(0, o.RevealSkew)
}

func (o *SampleOptions) noise() Alphabet {
	if o.Noise == nil {
		return NoiseGlyphs
	}
	return o.Noise
}

func (o *SampleOptions) symbols() Alphabet {
	if o.Symbols == nil {
		return SymbolGlyphs
	}
	return o.Symbols
}

// Sample renders source at the given progress under policy. Progress is
// clamped to [0, 1]; at 1 the result is exactly source. Whitespace is never
// substituted. An empty source yields "" at every progress.
func Sample(source string, progress float64, policy Policy, opts SampleOptions) string {
	if source == "" {
		return ""
	}
	p := clampProgress(progress)
	if p >= 1 {
		return source
	}

	chars := splitGraphemes(source)
	n := len(chars)
	rng := orDefault(opts.Rand)

	var b strings.Builder
	b.Grow(len(source) + len(opts.Cursor))

	switch policy {
	case Typewriter:
		shown := int(math.Floor(p * float64(n)))
		for i := 0; i < shown; i++ {
			b.WriteString(chars[i])
		}
		if opts.Pad != 0 {
			for i := shown; i < n; i++ {
				if isBlank(chars[i]) {
					b.WriteString(chars[i])
				} else {
					b.WriteRune(opts.Pad)
				}
			}
		}
		b.WriteString(opts.Cursor)

	case Decode:
		skew := opts.revealSkew()
		noise := opts.noise()
		for i, c := range chars {
			if isBlank(c) || p > float64(i)/float64(n)+skew {
				b.WriteString(c)
				continue
			}
			b.WriteRune(noise.Pick(rng))
		}

	case Scramble:
		locked := int(math.Floor(p * float64(n)))
		symbols := opts.symbols()
		for i, c := range chars {
			if i < locked || isBlank(c) {
				b.WriteString(c)
				continue
			}
			b.WriteRune(symbols.Pick(rng))
		}

	default:
		return source
	}
	return b.String()
}

// ScrambleDuration is how long the lock front needs to cross n characters
// when it advances by lockStep characters every tick seconds.
func ScrambleDuration(n int, lockStep, tick float64) float64 {
	if n <= 0 || lockStep <= 0 {
		return 0
	}
	ticks := math.Ceil(float64(n)/lockStep - 1e-9)
	return ticks * tick
}

// Len returns the number of user-perceived characters in s.
func Len(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return uniseg.GraphemeClusterCount(s)
}

// splitGraphemes splits s into grapheme clusters. ASCII takes a fast path.
func splitGraphemes(s string) []string {
	if isASCII(s) {
		out := make([]string, len(s))
		for i := 0; i < len(s); i++ {
			out[i] = s[i : i+1]
		}
		return out
	}
	out := make([]string, 0, utf8.RuneCountInString(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isBlank reports whether a grapheme is whitespace (space, tab, newline).
func isBlank(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsSpace(r)
}
