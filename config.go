package sintax

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config gathers the engine tunables. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// Reactive grid
	CellSize         float64 `json:"cellSize"`
	HoverRadius      float64 `json:"hoverRadius"`
	FadeSpeed        float64 `json:"fadeSpeed"`
	GlitchChance     float64 `json:"glitchChance"`
	MaxOpacity       float64 `json:"maxOpacity"`
	GlitchResetTicks int     `json:"glitchResetTicks"`
	MatrixWeight     float64 `json:"matrixWeight"`

	// Text effects
	RevealSkew       float64 `json:"revealSkew"`
	ScrambleLockStep float64 `json:"scrambleLockStep"`
	ScrambleTick     float64 `json:"scrambleTick"`
	TypeSpeed        float64 `json:"typeSpeed"`

	// Pixel reveal
	PixelFrontLoad float64 `json:"pixelFrontLoad"`
	PixelRowBias   float64 `json:"pixelRowBias"`
	PixelScrubLag  float64 `json:"pixelScrubLag"`

	// Alphabets, as plain strings.
	NoiseGlyphs  string `json:"noiseGlyphs"`
	SymbolGlyphs string `json:"symbolGlyphs"`
	MatrixGlyphs string `json:"matrixGlyphs"`
	BlockGlyphs  string `json:"blockGlyphs"`
}

// DefaultConfig returns the canonical tunables.
func DefaultConfig() Config {
	return Config{
		CellSize:         DefaultCellSize,
		HoverRadius:      DefaultHoverRadius,
		FadeSpeed:        DefaultFadeSpeed,
		GlitchChance:     DefaultGlitchChance,
		MaxOpacity:       DefaultMaxOpacity,
		GlitchResetTicks: DefaultGlitchResetTicks,
		MatrixWeight:     DefaultMatrixWeight,

		RevealSkew:       DefaultRevealSkew,
		ScrambleLockStep: DefaultScrambleLockStep,
		ScrambleTick:     DefaultScrambleTick,
		TypeSpeed:        DefaultTypeSpeed,

		PixelFrontLoad: DefaultFrontLoad,
		PixelRowBias:   DefaultRowBias,
		PixelScrubLag:  DefaultScrubLag,

		NoiseGlyphs:  string(NoiseGlyphs),
		SymbolGlyphs: string(SymbolGlyphs),
		MatrixGlyphs: string(MatrixGlyphs),
		BlockGlyphs:  string(BlockGlyphs),
	}
}

// LoadConfig decodes JSON over DefaultConfig, so omitted keys keep their
// defaults, and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("sintax: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a JSON config file. An empty path
// returns DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sintax: read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate reports the first out-of-range tunable.
func (c Config) Validate() error {
	bad := func(field string, v any) error {
		return fmt.Errorf("sintax: %w: %s = %v", ErrInvalidConfig, field, v)
	}
	switch {
	case c.CellSize <= 0:
		return bad("cellSize", c.CellSize)
	case c.HoverRadius <= 0:
		return bad("hoverRadius", c.HoverRadius)
	case c.FadeSpeed <= 0 || c.FadeSpeed > 1:
		return bad("fadeSpeed", c.FadeSpeed)
	case c.GlitchChance < 0 || c.GlitchChance > 1:
		return bad("glitchChance", c.GlitchChance)
	case c.MaxOpacity <= 0 || c.MaxOpacity > 1:
		return bad("maxOpacity", c.MaxOpacity)
	case c.GlitchResetTicks <= 0:
		return bad("glitchResetTicks", c.GlitchResetTicks)
	case c.MatrixWeight < 0 || c.MatrixWeight > 1:
		return bad("matrixWeight", c.MatrixWeight)
	case c.RevealSkew < 0 || c.RevealSkew >= 1:
		return bad("revealSkew", c.RevealSkew)
	case c.ScrambleLockStep <= 0:
		return bad("scrambleLockStep", c.ScrambleLockStep)
	case c.ScrambleTick <= 0:
		return bad("scrambleTick", c.ScrambleTick)
	case c.TypeSpeed <= 0:
		return bad("typeSpeed", c.TypeSpeed)
	case c.PixelFrontLoad <= 0 || c.PixelFrontLoad > 1:
		return bad("pixelFrontLoad", c.PixelFrontLoad)
	case c.PixelRowBias < 0:
		return bad("pixelRowBias", c.PixelRowBias)
	case c.PixelScrubLag < 0:
		return bad("pixelScrubLag", c.PixelScrubLag)
	case c.MatrixGlyphs == "" && c.BlockGlyphs == "":
		return bad("matrixGlyphs", `""`)
	}
	return nil
}

// SampleOptions returns sampling options carrying the configured skew and
// alphabets.
func (c Config) SampleOptions() SampleOptions {
	opts := SampleOptions{RevealSkew: c.RevealSkew}
	if c.NoiseGlyphs != "" {
		opts.Noise = NewAlphabet(c.NoiseGlyphs)
	}
	if c.SymbolGlyphs != "" {
		opts.Symbols = NewAlphabet(c.SymbolGlyphs)
	}
	return opts
}

// explicit maps a validated zero to Off so it survives withDefaults.
func explicit(v float64) float64 {
	if v == 0 {
		return Off
	}
	return v
}

// GridConfig returns the reactive grid settings. An empty glyph set pins
// the matrix weight so glitches only draw from the other one.
func (c Config) GridConfig() GridConfig {
	weight := explicit(c.MatrixWeight)
	switch {
	case c.MatrixGlyphs == "":
		weight = Off
	case c.BlockGlyphs == "":
		weight = 1
	}
	return GridConfig{
		CellSize:     c.CellSize,
		HoverRadius:  c.HoverRadius,
		FadeSpeed:    c.FadeSpeed,
		GlitchChance: explicit(c.GlitchChance),
		MaxOpacity:   c.MaxOpacity,
		ResetTicks:   c.GlitchResetTicks,
		MatrixWeight: weight,
		Matrix:       NewAlphabet(c.MatrixGlyphs),
		Block:        NewAlphabet(c.BlockGlyphs),
	}
}

// PixelConfig returns the pixel reveal settings.
func (c Config) PixelConfig() PixelConfig {
	return PixelConfig{
		FrontLoad: c.PixelFrontLoad,
		RowBias:   explicit(c.PixelRowBias),
		ScrubLag:  c.PixelScrubLag,
	}
}
