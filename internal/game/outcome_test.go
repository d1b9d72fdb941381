package game

import "testing"

func boardOf(moon, sun int) []Cell {
	cells := make([]Cell, 0, moon+sun)
	for i := 0; i < moon; i++ {
		cells = append(cells, NewCell(Vec2{}, TeamMoon, 1))
	}
	for i := 0; i < sun; i++ {
		cells = append(cells, NewCell(Vec2{}, TeamSun, 1))
	}
	return cells
}

func TestDetermineBoardOutcome_Untouched(t *testing.T) {
	r := DetermineBoardOutcome(boardOf(200, 200), 0, 0)
	if r.Outcome != OutcomeUntouched {
		t.Fatalf("expected untouched, got %s (%s)", r.Outcome, r.Description)
	}
	if _, ok := r.Leader(); ok {
		t.Fatal("an even board has no leader")
	}
}

func TestDetermineBoardOutcome_Leads(t *testing.T) {
	cases := []struct {
		moon, sun int
		want      BoardOutcome
		desc      string
	}{
		{260, 140, OutcomeMoonAhead, "decisive_moon_lead"},
		{210, 190, OutcomeMoonAhead, "marginal_moon_lead"},
		{100, 300, OutcomeSunAhead, "decisive_sun_lead"},
		{199, 201, OutcomeSunAhead, "marginal_sun_lead"},
		{200, 200, OutcomeEven, "even_board"},
	}
	for _, c := range cases {
		r := DetermineBoardOutcome(boardOf(c.moon, c.sun), 3, 3)
		if r.Outcome != c.want || r.Description != c.desc {
			t.Fatalf("%d/%d: got %s %s, want %s %s", c.moon, c.sun, r.Outcome, r.Description, c.want, c.desc)
		}
	}
}

func TestWorldOutcome_AfterCapture(t *testing.T) {
	ts := NewTestSim(WithTokenAt(TeamMoon, 530, 525, -10, 0.5))
	ts.RunTicks(1)
	r := ts.World.Outcome()
	if r.MoonCaptures == 0 {
		t.Fatalf("expected a Moon capture\n%s", ts.SimLog.Format())
	}
	// Moon captures hand cells to Sun.
	if team, ok := r.Leader(); !ok || team != TeamSun {
		t.Fatalf("expected Sun to lead after a Moon capture, got %+v", r)
	}
}
