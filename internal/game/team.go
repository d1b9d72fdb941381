package game

// Team is the ownership tag shared by tokens and cells.
type Team int

const (
	TeamMoon Team = iota // dark side, left block at start
	TeamSun              // light side, right block at start
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamMoon {
		return TeamSun
	}
	return TeamMoon
}

func (t Team) String() string {
	switch t {
	case TeamMoon:
		return "Moon"
	case TeamSun:
		return "Sun"
	default:
		return "unknown"
	}
}

// Kind selects the physical behaviour of an entity.
type Kind int

const (
	KindCircle Kind = iota // moves and reflects
	KindSquare             // static capture target
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	default:
		return "unknown"
	}
}
