package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/moon-and-sun/internal/game"
)

func TestLeader(t *testing.T) {
	moon := game.BoardOutcomeReason{Moon: 201, Sun: 199}
	sun := game.BoardOutcomeReason{Moon: 10, Sun: 390}
	even := game.BoardOutcomeReason{Moon: 200, Sun: 200}
	if leader(moon) != "Moon" || leader(sun) != "Sun" || leader(even) != "draw" {
		t.Fatal("unexpected leader labels")
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := avgTickString([]int{10, 20, 31}); got != "20.3" {
		t.Fatalf("expected 20.3, got %q", got)
	}
}

func TestRunScenario_Deterministic(t *testing.T) {
	cfg := game.DefaultConfig()
	a := runScenario(cfg, 1, 42, 1200, 600)
	b := runScenario(cfg, 1, 42, 1200, 600)
	if a.finalMoon != b.finalMoon || a.moonCaptures != b.moonCaptures || a.wallBounces != b.wallBounces {
		t.Fatalf("same seed should give the same run: %+v vs %+v", a, b)
	}
	if a.finalMoon+a.finalSun != 400 {
		t.Fatalf("final score should cover the grid, got %d", a.finalMoon+a.finalSun)
	}
	if a.firstCaptureTick <= 0 || a.wallBounces == 0 {
		t.Fatalf("expected captures and bounces in 1200 ticks: %+v", a)
	}
	if a.outcome.Moon != a.finalMoon || a.outcome.MoonCaptures != a.moonCaptures {
		t.Fatalf("outcome disagrees with final board: %+v", a.outcome)
	}
	if a.windowSummary == nil || a.windowSummary.SampleCount != 11 {
		t.Fatalf("expected 11 samples in a 600-tick window, got %+v", a.windowSummary)
	}
}

func TestPrintAggregate(t *testing.T) {
	var sb strings.Builder
	printAggregate(&sb, []runStats{
		{finalMoon: 250, finalSun: 150, moonCaptures: 10, sunCaptures: 60, firstCaptureTick: 12,
			outcome: game.BoardOutcomeReason{Outcome: game.OutcomeMoonAhead, Moon: 250, Sun: 150}},
		{finalMoon: 180, finalSun: 220, moonCaptures: 30, sunCaptures: 10, firstCaptureTick: -1,
			outcome: game.BoardOutcomeReason{Outcome: game.OutcomeSunAhead, Moon: 180, Sun: 220}},
	})
	out := sb.String()
	for _, want := range []string{"leads: moon=1 sun=1 draw=0", "moon_ahead=1 sun_ahead=1", "avg_final: moon=215.0 sun=185.0", "avg_first_capture_tick=12.0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
