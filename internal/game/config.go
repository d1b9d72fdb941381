package game

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Config is the full game configuration. Zero-valued sections are never used
// directly: Load starts from DefaultConfig and overlays the file on top.
type Config struct {
	Seed     int64         `toml:"seed"` // 0 = seed from the clock
	Grid     GridConfig    `toml:"grid"`
	Tokens   TokenConfig   `toml:"tokens"`
	Physics  PhysicsConfig `toml:"physics"`
	Features FeatureConfig `toml:"features"`
	Colors   ColorConfig   `toml:"colors"`
	Tint     TintConfig    `toml:"tint"`
	Window   WindowConfig  `toml:"window"`
}

type GridConfig struct {
	Rows         int     `toml:"rows"`
	Columns      int     `toml:"columns"` // per team block
	CellSize     float64 `toml:"cell_size"`
	SquareAnchor string  `toml:"square_anchor"` // "top-left" or "legacy"
}

type TokenConfig struct {
	Radius          float64 `toml:"radius"`
	Speed           float64 `toml:"speed"`
	SpeedMultiplier float64 `toml:"speed_multiplier"`
}

type PhysicsConfig struct {
	// ScaleCoupledSpeed multiplies movement by the render scale, so tokens
	// move faster in larger windows.
	ScaleCoupledSpeed bool `toml:"scale_coupled_speed"`
}

type FeatureConfig struct {
	Resize         bool `toml:"resize"`
	TintTransition bool `toml:"tint_transition"`
	EventFeed      bool `toml:"event_feed"` // on-screen list of recent captures
}

type ColorConfig struct {
	Moon string `toml:"moon"`
	Sun  string `toml:"sun"`
	Text string `toml:"text"`
}

type TintConfig struct {
	TransitionRate float64 `toml:"transition_rate"` // blend fraction per frame, (0,1]
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Palette is the resolved set of colours.
type Palette struct {
	Moon color.RGBA
	Sun  color.RGBA
	Text color.RGBA
}

// DefaultConfig returns the stock 20x10-per-team board.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Rows:         20,
			Columns:      10,
			CellSize:     50,
			SquareAnchor: AnchorTopLeft.String(),
		},
		Tokens: TokenConfig{
			Radius:          25,
			Speed:           15,
			SpeedMultiplier: 1.5,
		},
		Physics:  PhysicsConfig{ScaleCoupledSpeed: true},
		Features: FeatureConfig{Resize: true, TintTransition: true},
		Colors: ColorConfig{
			Moon: "#2A324B",
			Sun:  "#F7C59F",
			Text: "#E1E5EE",
		},
		Tint:   TintConfig{TransitionRate: 0.05},
		Window: WindowConfig{Width: 1280, Height: 1280, Title: "Moon & Sun"},
	}
}

// Load reads a TOML file over the defaults. An empty path yields the defaults.
// Unknown keys are rejected so typos do not silently fall back.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid.rows must be > 0, got %d", c.Grid.Rows))
	}
	if c.Grid.Columns <= 0 {
		errs = append(errs, fmt.Errorf("grid.columns must be > 0, got %d", c.Grid.Columns))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be > 0, got %g", c.Grid.CellSize))
	}
	if _, err := ParseSquareAnchor(c.Grid.SquareAnchor); err != nil {
		errs = append(errs, err)
	}
	if c.Tokens.Radius <= 0 {
		errs = append(errs, fmt.Errorf("tokens.radius must be > 0, got %g", c.Tokens.Radius))
	}
	if c.Tokens.Speed <= 0 || c.Tokens.SpeedMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("tokens.speed and tokens.speed_multiplier must be > 0"))
	}
	w, h := c.FieldSize()
	if c.Tokens.Radius*2 >= w || c.Tokens.Radius*2 >= h {
		errs = append(errs, fmt.Errorf("tokens.radius %g does not fit a %gx%g field", c.Tokens.Radius, w, h))
	}
	if c.Tint.TransitionRate <= 0 || c.Tint.TransitionRate > 1 {
		errs = append(errs, fmt.Errorf("tint.transition_rate must be in (0,1], got %g", c.Tint.TransitionRate))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// FieldSize is the unscaled playfield: two blocks side by side.
func (c Config) FieldSize() (w, h float64) {
	return c.Grid.CellSize * 2 * float64(c.Grid.Columns), c.Grid.CellSize * float64(c.Grid.Rows)
}

// Geometry returns the collision sizes. An unparseable anchor falls back to
// top-left; Validate reports it.
func (c Config) Geometry() Geometry {
	anchor, _ := ParseSquareAnchor(c.Grid.SquareAnchor)
	return Geometry{
		Radius: c.Tokens.Radius,
		Side:   c.Grid.CellSize,
		Anchor: anchor,
	}
}

// Palette parses the hex colours.
func (c Config) Palette() (Palette, error) {
	moon, err := parseHex("colors.moon", c.Colors.Moon)
	if err != nil {
		return Palette{}, err
	}
	sun, err := parseHex("colors.sun", c.Colors.Sun)
	if err != nil {
		return Palette{}, err
	}
	text, err := parseHex("colors.text", c.Colors.Text)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Moon: moon, Sun: sun, Text: text}, nil
}

// TeamColor returns the colour a team is drawn in.
func (p Palette) TeamColor(t Team) color.RGBA {
	if t == TeamMoon {
		return p.Moon
	}
	return p.Sun
}

// ParseSquareAnchor accepts "top-left" (or empty) and "legacy".
func ParseSquareAnchor(s string) (SquareAnchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top-left", "topleft":
		return AnchorTopLeft, nil
	case "legacy":
		return AnchorLegacy, nil
	default:
		return AnchorTopLeft, fmt.Errorf("grid.square_anchor: unknown value %q", s)
	}
}

func parseHex(field, s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%s: %w", field, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
