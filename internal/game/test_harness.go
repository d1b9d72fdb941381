package game

import "fmt"

// reportInterval is how often TestSim samples the board for its reporter.
const reportInterval = 60

// TestSim is a headless harness around World used by tests and the headless
// report. It supports deterministic seeding, hand-placed tokens and
// structured logging.
type TestSim struct {
	World    *World
	SimLog   *SimLog
	Reporter *SimReporter

	cfg  Config
	seed int64

	// state edits applied once the world exists
	tokens map[Team]tokenOverride
	cells  map[int]Team
}

type tokenOverride struct {
	pos, dir Vec2
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // applied before the world is built
	simOptState                      // applied after
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithGrid sets the rows and per-team columns.
func WithGrid(rows, columns int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Grid.Rows = rows
		ts.cfg.Grid.Columns = columns
	}}
}

// WithAnchor selects the square anchor convention.
func WithAnchor(a SquareAnchor) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Grid.SquareAnchor = a.String()
	}}
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTokenAt places team's token at (x,y) moving along (dx,dy).
func WithTokenAt(team Team, x, y, dx, dy float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.tokens[team] = tokenOverride{pos: Vec2{x, y}, dir: Vec2{dx, dy}}
	}}
}

// WithCellTeam overrides the owner of the cell at index.
func WithCellTeam(index int, team Team) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.cells[index] = team
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (config, seed, verbose)
//  2. Build the World
//  3. Token and cell edits
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:      DefaultConfig(),
		seed:     1,
		SimLog:   NewSimLog(false),
		Reporter: NewSimReporter(reportWindowTicks),
		tokens:   map[Team]tokenOverride{},
		cells:    map[int]Team{},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.cfg, WithSeed(ts.seed), WithSimLog(ts.SimLog))
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	for _, t := range ts.World.tokens {
		if o, ok := ts.tokens[t.Team]; ok {
			t.Pos = o.pos
			t.Dir = o.dir
		}
	}
	for i, team := range ts.cells {
		if i >= 0 && i < len(ts.World.cells) {
			ts.World.cells[i].Team = team
		}
	}
	return ts
}

// Token returns the live token of team.
func (ts *TestSim) Token(team Team) *Token {
	return ts.World.tokens[team]
}

// RunTicks advances n ticks, sampling the board every reportInterval ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.World.Step()
		if ts.World.Tick()%reportInterval == 0 {
			ts.Reporter.Collect(ts.World)
		}
	}
}

// RunUntil steps until predicate returns true or maxTicks pass. It returns
// the tick at which predicate held, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.RunTicks(1)
		if predicate(ts) {
			return ts.World.Tick()
		}
	}
	return -1
}

// CurrentTick returns the number of ticks run so far.
func (ts *TestSim) CurrentTick() int {
	return ts.World.Tick()
}

// Describe returns a one-line state dump for failure messages.
func (ts *TestSim) Describe() string {
	moon, sun := ts.World.Score()
	m, s := ts.Token(TeamMoon), ts.Token(TeamSun)
	return fmt.Sprintf("T=%d %s moon@(%.1f,%.1f) dir=(%.1f,%.1f) sun@(%.1f,%.1f) dir=(%.1f,%.1f)",
		ts.World.Tick(), FormatScore(moon, sun),
		m.Pos.X, m.Pos.Y, m.Dir.X, m.Dir.Y,
		s.Pos.X, s.Pos.Y, s.Dir.X, s.Dir.Y)
}
