package game

// decisiveLead is the share of the board one team must lead by for the lead
// to count as decisive.
const decisiveLead = 0.25

type BoardOutcome int

const (
	OutcomeUntouched BoardOutcome = iota
	OutcomeMoonAhead
	OutcomeSunAhead
	OutcomeEven
)

func (o BoardOutcome) String() string {
	switch o {
	case OutcomeMoonAhead:
		return "moon_ahead"
	case OutcomeSunAhead:
		return "sun_ahead"
	case OutcomeEven:
		return "even"
	case OutcomeUntouched:
		return "untouched"
	default:
		return "unknown"
	}
}

type BoardOutcomeReason struct {
	Outcome      BoardOutcome
	Moon         int
	Sun          int
	MoonCaptures int
	SunCaptures  int
	Margin       float64 // (moon - sun) / total
	Description  string
}

// Leader returns the team holding more cells, or false on an even board.
func (r BoardOutcomeReason) Leader() (Team, bool) {
	switch {
	case r.Moon > r.Sun:
		return TeamMoon, true
	case r.Sun > r.Moon:
		return TeamSun, true
	}
	return TeamMoon, false
}

// DetermineBoardOutcome classifies a board from its cells and the capture
// totals that produced it.
func DetermineBoardOutcome(cells []Cell, moonCaptures, sunCaptures int) BoardOutcomeReason {
	moon, sun := Score(cells)
	r := BoardOutcomeReason{
		Moon:         moon,
		Sun:          sun,
		MoonCaptures: moonCaptures,
		SunCaptures:  sunCaptures,
	}
	if total := moon + sun; total > 0 {
		r.Margin = float64(moon-sun) / float64(total)
	}

	if moonCaptures == 0 && sunCaptures == 0 {
		r.Outcome = OutcomeUntouched
		r.Description = "untouched_no_captures"
		return r
	}

	switch {
	case r.Margin >= decisiveLead:
		r.Outcome = OutcomeMoonAhead
		r.Description = "decisive_moon_lead"
	case r.Margin > 0:
		r.Outcome = OutcomeMoonAhead
		r.Description = "marginal_moon_lead"
	case r.Margin <= -decisiveLead:
		r.Outcome = OutcomeSunAhead
		r.Description = "decisive_sun_lead"
	case r.Margin < 0:
		r.Outcome = OutcomeSunAhead
		r.Description = "marginal_sun_lead"
	default:
		r.Outcome = OutcomeEven
		r.Description = "even_board"
	}
	return r
}

// Outcome classifies the world's current board.
func (w *World) Outcome() BoardOutcomeReason {
	return DetermineBoardOutcome(w.cells, w.captures[TeamMoon], w.captures[TeamSun])
}
