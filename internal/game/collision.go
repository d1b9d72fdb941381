package game

// SquareAnchor says which point of a cell its position refers to.
type SquareAnchor int

const (
	// AnchorTopLeft: the square spans [x, x+side] × [y, y+side].
	AnchorTopLeft SquareAnchor = iota
	// AnchorLegacy: x is the left edge but y is the vertical centre, so the
	// square spans [x, x+side] × [y-side/2, y+side/2].
	AnchorLegacy
)

func (a SquareAnchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Geometry holds the fixed sizes used by every collision test.
type Geometry struct {
	Radius float64 // token radius
	Side   float64 // cell side length
	Anchor SquareAnchor
}

// CircleIntersectsSquare clamps the circle centre onto the square per axis and
// compares the squared distance to the squared radius. Touching edges do not
// count.
func CircleIntersectsSquare(center Vec2, radius float64, anchor Vec2, side float64, conv SquareAnchor) bool {
	closestX := clamp(center.X, anchor.X, anchor.X+side)

	var closestY float64
	switch conv {
	case AnchorLegacy:
		half := side / 2
		closestY = clamp(center.Y, anchor.Y-half, anchor.Y+half)
	default:
		closestY = clamp(center.Y, anchor.Y, anchor.Y+side)
	}

	dx := center.X - closestX
	dy := center.Y - closestY
	return dx*dx+dy*dy < radius*radius
}

// Intersects dispatches on entity kind. Only circle/square pairs can meet.
func Intersects(a, b Entity, g Geometry) bool {
	switch {
	case a.Kind() == KindCircle && b.Kind() == KindSquare:
		return CircleIntersectsSquare(a.Position(), g.Radius, b.Position(), g.Side, g.Anchor)
	case a.Kind() == KindSquare && b.Kind() == KindCircle:
		return CircleIntersectsSquare(b.Position(), g.Radius, a.Position(), g.Side, g.Anchor)
	default:
		return false
	}
}

// HandleCollision applies the capture rule: a token that overlaps a cell of
// its own team bounces off it and the cell flips to the other team. The
// normal is taken between the scaled positions. Returns true on capture.
func HandleCollision(t *Token, c *Cell, g Geometry) bool {
	if t.Team != c.Team || !Intersects(t, c, g) {
		return false
	}
	normal, ok := c.pos.Scale(c.Scale).Sub(t.Pos.Scale(t.Scale)).Normalize()
	if ok {
		t.Dir = t.Dir.Reflect(normal)
	}
	c.Toggle()
	return true
}

// HandleBoundaryCollision reflects the token off the field edges. Each axis is
// checked on its own; when the leading edge reaches a wall the component is
// negated and the position nudged by one step of the new direction.
func HandleBoundaryCollision(t *Token, f Field, radius float64) (hitX, hitY bool) {
	if t.Pos.X-radius <= f.X || t.Pos.X+radius >= f.X+f.W {
		t.Dir.X = -t.Dir.X
		t.Pos.X += t.Dir.X
		hitX = true
	}
	if t.Pos.Y-radius <= f.Y || t.Pos.Y+radius >= f.Y+f.H {
		t.Dir.Y = -t.Dir.Y
		t.Pos.Y += t.Dir.Y
		hitY = true
	}
	return hitX, hitY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
