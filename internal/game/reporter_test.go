package game

import (
	"strings"
	"testing"
)

func TestSimReporter_EmptyReporter(t *testing.T) {
	r := NewSimReporter(0)
	if r.Latest() != nil || r.WindowSummary() != nil {
		t.Fatal("empty reporter should have no data")
	}
	if r.FormatLatest() != "No data.\n" {
		t.Fatal("unexpected empty latest format")
	}
	var wr *WindowReport
	if !strings.Contains(wr.Format(), "No data") {
		t.Fatal("nil window report should format as no data")
	}
}

func TestSimReporter_CollectsFromHarness(t *testing.T) {
	ts := NewTestSim(WithSimSeed(8))
	ts.RunTicks(600)

	hist := ts.Reporter.History()
	if len(hist) != 10 {
		t.Fatalf("expected 10 samples over 600 ticks, got %d", len(hist))
	}
	for _, s := range hist {
		if s.Moon+s.Sun != 400 {
			t.Fatalf("sample T=%d does not cover the grid: %+v", s.Tick, s)
		}
	}
	wr := ts.Reporter.WindowSummary()
	if wr == nil || wr.SampleCount != 10 || wr.FromTick != 60 || wr.ToTick != 600 {
		t.Fatalf("unexpected window %+v", wr)
	}
	if !almostEqual(wr.AvgMoon+wr.AvgSun, 400, 1e-9) {
		t.Fatalf("averages should sum to the grid size, got %.1f", wr.AvgMoon+wr.AvgSun)
	}
	if wr.MoonCaptures != ts.World.Captures(TeamMoon) || wr.SunCaptures != ts.World.Captures(TeamSun) {
		t.Fatal("window reaching the start should count every capture")
	}
	if !strings.Contains(wr.Format(), "Board Report") {
		t.Fatal("format should carry a header")
	}
	if !strings.Contains(ts.Reporter.FormatLatest(), "T=00600") {
		t.Fatalf("latest line should carry the tick: %q", ts.Reporter.FormatLatest())
	}
}

func TestSimReporter_WindowAndLeadChanges(t *testing.T) {
	r := NewSimReporter(100)
	r.history = []ScoreReport{
		{Tick: 0, Moon: 250, Sun: 150},
		{Tick: 100, Moon: 210, Sun: 190, MoonCaptures: 1, SunCaptures: 41},
		{Tick: 150, Moon: 190, Sun: 210, MoonCaptures: 5, SunCaptures: 44},
		{Tick: 200, Moon: 200, Sun: 200, MoonCaptures: 6, SunCaptures: 45},
		{Tick: 250, Moon: 220, Sun: 180, MoonCaptures: 7, SunCaptures: 50},
	}
	wr := r.WindowSummary()
	// cutoff = 250 - 100 = 150: samples at 150, 200, 250.
	if wr.SampleCount != 3 || wr.FromTick != 150 {
		t.Fatalf("unexpected window %+v", wr)
	}
	if wr.LeadChanges != 1 {
		t.Fatalf("expected one lead change (sun→moon, tie ignored), got %d", wr.LeadChanges)
	}
	if wr.MinMoon != 190 || wr.MaxMoon != 220 {
		t.Fatalf("unexpected min/max %d/%d", wr.MinMoon, wr.MaxMoon)
	}
	if wr.MoonCaptures != 2 || wr.SunCaptures != 6 {
		t.Fatalf("expected captures inside the window 2/6, got %d/%d", wr.MoonCaptures, wr.SunCaptures)
	}
}

func TestBalanceLabel(t *testing.T) {
	cases := map[string][2]float64{
		"moon dominant": {300, 100},
		"balanced":      {200, 200},
		"sun ahead":     {170, 230},
		"empty":         {0, 0},
	}
	for want, c := range cases {
		if got := balanceLabel(c[0], c[1]); got != want {
			t.Fatalf("balanceLabel(%v,%v) = %q, want %q", c[0], c[1], got, want)
		}
	}
}
