package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Token start positions as fractions of the field. Each token starts inside
// the opposing block so it can roam before its first capture.
const (
	moonStartX  = 0.75
	sunStartX   = 0.25
	tokenStartY = 0.6
)

// World is the whole simulation state: two tokens, the grid and the bound
// they move in. It is not safe for concurrent use; hosts that render on
// another goroutine should read a Snapshot.
type World struct {
	cfg   Config
	geom  Geometry
	field Field
	scale float64

	tokens []*Token // TeamMoon first, then TeamSun
	cells  []Cell

	tick     int
	captures [2]int
	rng      *rand.Rand
	log      *SimLog
}

// WorldOption customises NewWorld.
type WorldOption func(*World)

// WithSeed makes initial directions reproducible.
func WithSeed(seed int64) WorldOption {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source used for initial direction signs.
func WithRand(rng *rand.Rand) WorldOption {
	return func(w *World) {
		w.rng = rng
	}
}

// WithSimLog attaches an event recorder.
func WithSimLog(sl *SimLog) WorldOption {
	return func(w *World) {
		w.log = sl
	}
}

// WithScale sets the initial render scale.
func WithScale(scale float64) WorldOption {
	return func(w *World) {
		if scale > 0 {
			w.scale = scale
		}
	}
}

// NewWorld builds the tokens and the two-block grid described by cfg.
// cfg is assumed valid (see Config.Validate).
func NewWorld(cfg Config, opts ...WorldOption) *World {
	fw, fh := cfg.FieldSize()
	w := &World{
		cfg:   cfg,
		geom:  cfg.Geometry(),
		field: Field{W: fw, H: fh},
		scale: 1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		w.rng = rand.New(rand.NewSource(seed))
	}

	w.tokens = []*Token{
		w.newToken(TeamMoon, moonStartX),
		w.newToken(TeamSun, sunStartX),
	}
	w.initGrid()
	return w
}

func (w *World) newToken(team Team, fx float64) *Token {
	step := w.cfg.Tokens.Speed * w.cfg.Tokens.SpeedMultiplier
	// Draw order matters for reproducibility: x sign then y sign.
	sx := w.randomSign()
	sy := w.randomSign()
	return &Token{
		Pos: Vec2{
			X: w.field.X + w.field.W*fx,
			Y: w.field.Y + w.field.H*tokenStartY,
		},
		Dir:   Vec2{X: sx * step, Y: sy * step},
		Team:  team,
		Scale: w.scale,
	}
}

func (w *World) randomSign() float64 {
	if w.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// initGrid lays out the Moon block on the left and the Sun block on the right,
// row-major within each block.
func (w *World) initGrid() {
	rows, cols := w.cfg.Grid.Rows, w.cfg.Grid.Columns
	side := w.geom.Side
	w.cells = make([]Cell, 0, rows*cols*2)
	for block, team := range []Team{TeamMoon, TeamSun} {
		offX := w.field.X + float64(block*cols)*side
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				pos := Vec2{
					X: offX + float64(col)*side,
					Y: w.field.Y + float64(row)*side,
				}
				w.cells = append(w.cells, NewCell(pos, team, w.scale))
			}
		}
	}
}

// Step advances the simulation by one tick: move, bounce off the walls, then
// run the capture rule for each token against every cell in grid order.
func (w *World) Step() {
	w.tick++

	speed := 1.0
	if w.cfg.Physics.ScaleCoupledSpeed {
		speed = w.scale
	}

	for _, t := range w.tokens {
		t.Advance(speed)
	}

	for _, t := range w.tokens {
		hitX, hitY := HandleBoundaryCollision(t, w.field, w.geom.Radius)
		if w.log != nil {
			if hitX {
				w.log.Add(w.tick, t.Team.String(), LogCatBoundary, LogKeyBounceX,
					fmt.Sprintf("x=%.1f dir=%.1f", t.Pos.X, t.Dir.X), t.Pos.X)
			}
			if hitY {
				w.log.Add(w.tick, t.Team.String(), LogCatBoundary, LogKeyBounceY,
					fmt.Sprintf("y=%.1f dir=%.1f", t.Pos.Y, t.Dir.Y), t.Pos.Y)
			}
		}
	}

	for _, t := range w.tokens {
		for i := range w.cells {
			if !HandleCollision(t, &w.cells[i], w.geom) {
				continue
			}
			w.captures[t.Team]++
			if w.log != nil {
				c := &w.cells[i]
				w.log.Add(w.tick, t.Team.String(), LogCatCapture, LogKeyCell,
					fmt.Sprintf("#%d %s → %s", i, t.Team, c.Team), float64(i))
			}
		}
	}

	if w.log != nil && w.log.Verbose() {
		for _, t := range w.tokens {
			w.log.AddVerbose(w.tick, t.Team.String(), LogCatMove, LogKeyPosition,
				fmt.Sprintf("(%.1f,%.1f)", t.Pos.X, t.Pos.Y), 0)
		}
	}
}

// RunTicks advances n ticks.
func (w *World) RunTicks(n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

// Resize installs a new bound and render scale for the next Step. It is a
// no-op (returning false) when resize support is disabled or scale is not
// positive. Cells keep their positions.
func (w *World) Resize(f Field, scale float64) bool {
	if !w.cfg.Features.Resize || scale <= 0 {
		return false
	}
	w.field = f
	w.scale = scale
	for _, t := range w.tokens {
		t.Scale = scale
	}
	for i := range w.cells {
		w.cells[i].Scale = scale
	}
	if w.log != nil {
		w.log.Add(w.tick, "--", LogCatField, LogKeyResize,
			fmt.Sprintf("origin=(%.1f,%.1f) size=%.0fx%.0f scale=%.3f", f.X, f.Y, f.W, f.H, scale), scale)
	}
	return true
}

// Score returns the current cell counts.
func (w *World) Score() (moon, sun int) {
	return Score(w.cells)
}

func (w *World) Tick() int { return w.tick }

func (w *World) Scale() float64 { return w.scale }

func (w *World) Field() Field { return w.field }

func (w *World) Geometry() Geometry { return w.geom }

func (w *World) Config() Config { return w.cfg }

func (w *World) SimLog() *SimLog { return w.log }

// Tokens returns the live tokens, Moon first.
func (w *World) Tokens() []*Token { return w.tokens }

// Cells returns the live grid in creation order.
func (w *World) Cells() []Cell { return w.cells }

// Captures returns how many cells team's token has flipped so far.
func (w *World) Captures(team Team) int {
	return w.captures[team]
}

// Snapshot is a deep copy of the world state taken between ticks.
type Snapshot struct {
	Tick   int
	Field  Field
	Scale  float64
	Tokens []Token
	Cells  []Cell
	Moon   int
	Sun    int
}

// Snapshot copies the current state so it can be read without racing Step.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		Field:  w.field,
		Scale:  w.scale,
		Tokens: make([]Token, len(w.tokens)),
		Cells:  make([]Cell, len(w.cells)),
	}
	for i, t := range w.tokens {
		s.Tokens[i] = *t
	}
	copy(s.Cells, w.cells)
	s.Moon, s.Sun = Score(s.Cells)
	return s
}
