package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for summaries (~10s at 60TPS).
const reportWindowTicks = 600

// ScoreReport is one sample of the board.
type ScoreReport struct {
	Tick         int
	Moon         int
	Sun          int
	MoonCaptures int // cumulative flips made by the Moon token
	SunCaptures  int
	Darkness     float64 // Moon share of the grid
}

// WindowReport aggregates the samples inside one window.
type WindowReport struct {
	FromTick    int
	ToTick      int
	SampleCount int

	AvgMoon, AvgSun  float64
	MinMoon, MaxMoon int
	LeadChanges      int // sign changes of (moon - sun) between samples

	// Captures made inside the window.
	MoonCaptures int
	SunCaptures  int
}

// SimReporter collects periodic score samples and summarises them over a
// sliding window.
type SimReporter struct {
	history     []ScoreReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect samples the world. Call it periodically (e.g. every 60 ticks).
func (r *SimReporter) Collect(w *World) {
	moon, sun := w.Score()
	r.history = append(r.history, ScoreReport{
		Tick:         w.Tick(),
		Moon:         moon,
		Sun:          sun,
		MoonCaptures: w.Captures(TeamMoon),
		SunCaptures:  w.Captures(TeamSun),
		Darkness:     DarknessRatio(moon, moon+sun),
	})
}

// Latest returns the most recent sample, or nil.
func (r *SimReporter) Latest() *ScoreReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected samples.
func (r *SimReporter) History() []ScoreReport {
	return r.history
}

// WindowSummary aggregates the samples taken within the last windowTicks.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	start := len(r.history) - 1
	for start > 0 && r.history[start-1].Tick >= cutoff {
		start--
	}
	window := r.history[start:]

	first, last := window[0], window[len(window)-1]
	wr := &WindowReport{
		FromTick:     first.Tick,
		ToTick:       last.Tick,
		SampleCount:  len(window),
		MinMoon:      first.Moon,
		MaxMoon:      first.Moon,
		MoonCaptures: last.MoonCaptures - first.MoonCaptures,
		SunCaptures:  last.SunCaptures - first.SunCaptures,
	}
	// Captures before the first sample in the window belong to the window too
	// when it reaches back to the start of the run.
	if start == 0 {
		wr.MoonCaptures = last.MoonCaptures
		wr.SunCaptures = last.SunCaptures
	}

	prevLead := 0
	for _, s := range window {
		wr.AvgMoon += float64(s.Moon)
		wr.AvgSun += float64(s.Sun)
		wr.MinMoon = min(wr.MinMoon, s.Moon)
		wr.MaxMoon = max(wr.MaxMoon, s.Moon)

		lead := sign(s.Moon - s.Sun)
		if lead != 0 {
			if prevLead != 0 && lead != prevLead {
				wr.LeadChanges++
			}
			prevLead = lead
		}
	}
	n := float64(len(window))
	wr.AvgMoon /= n
	wr.AvgSun /= n
	return wr
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Board Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  Moon: avg=%.1f  min=%d  max=%d  captures=%d\n",
		wr.AvgMoon, wr.MinMoon, wr.MaxMoon, wr.MoonCaptures)
	fmt.Fprintf(&sb, "  Sun:  avg=%.1f  captures=%d\n", wr.AvgSun, wr.SunCaptures)
	fmt.Fprintf(&sb, "  Lead changes: %d (%s)\n", wr.LeadChanges, balanceLabel(wr.AvgMoon, wr.AvgSun))
	return sb.String()
}

func balanceLabel(moon, sun float64) string {
	total := moon + sun
	if total == 0 {
		return "empty"
	}
	d := (moon - sun) / total
	switch {
	case d > 0.25:
		return "moon dominant"
	case d > 0.05:
		return "moon ahead"
	case d > -0.05:
		return "balanced"
	case d > -0.25:
		return "sun ahead"
	default:
		return "sun dominant"
	}
}

// FormatLatest returns a concise line for the most recent sample.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	return fmt.Sprintf("T=%05d  %s  darkness=%.2f  captures moon=%d sun=%d\n",
		rpt.Tick, FormatScore(rpt.Moon, rpt.Sun), rpt.Darkness, rpt.MoonCaptures, rpt.SunCaptures)
}
