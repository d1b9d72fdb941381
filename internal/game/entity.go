package game

// Entity is anything that takes part in collision tests.
type Entity interface {
	Kind() Kind
	Position() Vec2
}

// Token is a moving circle. Its direction has nonzero components on both axes
// after initialisation; boundary reflection only ever negates them.
type Token struct {
	Pos   Vec2
	Dir   Vec2
	Team  Team
	Scale float64 // render scale, see HandleCollision
}

func (t *Token) Kind() Kind { return KindCircle }

func (t *Token) Position() Vec2 { return t.Pos }

// Advance integrates one tick of movement: pos += dir * speedScale.
func (t *Token) Advance(speedScale float64) {
	t.Pos = t.Pos.Add(t.Dir.Scale(speedScale))
}

// Cell is a static grid square. Only its team changes after creation.
type Cell struct {
	pos   Vec2
	Team  Team
	Scale float64
}

// NewCell creates a cell anchored at pos.
func NewCell(pos Vec2, team Team, scale float64) Cell {
	return Cell{pos: pos, Team: team, Scale: scale}
}

func (c *Cell) Kind() Kind { return KindSquare }

func (c *Cell) Position() Vec2 { return c.pos }

// Toggle flips the cell to the opposing team.
func (c *Cell) Toggle() {
	c.Team = c.Team.Opponent()
}

// Field is the axis-aligned bound the tokens stay inside.
type Field struct {
	X, Y float64 // origin
	W, H float64
}

// Contains reports whether p lies inside the field, widened by eps on every side.
func (f Field) Contains(p Vec2, eps float64) bool {
	return p.X >= f.X-eps && p.X <= f.X+f.W+eps &&
		p.Y >= f.Y-eps && p.Y <= f.Y+f.H+eps
}
