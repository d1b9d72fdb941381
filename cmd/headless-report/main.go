package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Garsondee/moon-and-sun/internal/game"
	"github.com/atotto/clipboard"
)

type runStats struct {
	runIndex int
	seed     int64

	firstCaptureTick int
	finalMoon        int
	finalSun         int
	moonCaptures     int
	sunCaptures      int
	wallBounces      int
	outcome          game.BoardOutcomeReason

	windowSummary *game.WindowReport
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var window int
	var configPath string
	var clip bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&window, "window", 600, "ticks covered by each run's window summary")
	flag.StringVar(&configPath, "config", "", "path to a TOML config file")
	flag.BoolVar(&clip, "clip", false, "also copy the report to the clipboard")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	cfg, err := game.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	var sb strings.Builder
	out := io.MultiWriter(os.Stdout, &sb)

	fmt.Fprintf(out, "=== Headless Board Report ===\n")
	fmt.Fprintf(out, "runs=%d ticks=%d seed_base=%d seed_step=%d grid=%dx%d anchor=%s\n\n",
		runs, ticks, seedBase, seedStep, cfg.Grid.Rows, cfg.Grid.Columns*2, cfg.Geometry().Anchor)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(cfg, i+1, seed, ticks, window)
		all = append(all, stats)
		printRun(out, stats)
	}
	printAggregate(out, all)

	if clip {
		if err := clipboard.WriteAll(sb.String()); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("(report copied to clipboard)")
	}
}

func runScenario(cfg game.Config, runIndex int, seed int64, ticks, window int) runStats {
	ts := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithSimSeed(seed),
	)
	ts.Reporter = game.NewSimReporter(window)
	ts.RunTicks(ticks)

	entries := ts.SimLog.Entries()
	moon, sun := ts.World.Score()
	rs := runStats{
		runIndex:         runIndex,
		seed:             seed,
		firstCaptureTick: firstTick(entries, game.LogCatCapture, game.LogKeyCell),
		finalMoon:        moon,
		finalSun:         sun,
		moonCaptures:     ts.World.Captures(game.TeamMoon),
		sunCaptures:      ts.World.Captures(game.TeamSun),
		outcome:          ts.World.Outcome(),
		windowSummary:    ts.Reporter.WindowSummary(),
	}
	for _, e := range entries {
		if e.Category == game.LogCatBoundary {
			rs.wallBounces++
		}
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// leader names the team holding more cells, or "draw".
func leader(o game.BoardOutcomeReason) string {
	if team, ok := o.Leader(); ok {
		return team.String()
	}
	return "draw"
}

func printRun(w io.Writer, rs runStats) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "final: %s  leader=%s  outcome=%s\n",
		game.FormatScore(rs.finalMoon, rs.finalSun), leader(rs.outcome), rs.outcome.Description)
	fmt.Fprintf(w, "events: first_capture=%d moon_captures=%d sun_captures=%d wall_bounces=%d\n",
		rs.firstCaptureTick, rs.moonCaptures, rs.sunCaptures, rs.wallBounces)
	if rs.windowSummary != nil {
		fmt.Fprint(w, rs.windowSummary.Format())
	}
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	wins := map[string]int{}
	outcomes := map[game.BoardOutcome]int{}
	totalMoon, totalSun := 0, 0
	totalMoonCaps, totalSunCaps := 0, 0
	var firstCaptures []int
	for _, rs := range all {
		wins[leader(rs.outcome)]++
		outcomes[rs.outcome.Outcome]++
		totalMoon += rs.finalMoon
		totalSun += rs.finalSun
		totalMoonCaps += rs.moonCaptures
		totalSunCaps += rs.sunCaptures
		if rs.firstCaptureTick >= 0 {
			firstCaptures = append(firstCaptures, rs.firstCaptureTick)
		}
	}

	fmt.Fprintln(w, "--- Aggregate ---")
	fmt.Fprintf(w, "leads: moon=%d sun=%d draw=%d\n", wins["Moon"], wins["Sun"], wins["draw"])
	fmt.Fprintf(w, "outcomes: untouched=%d even=%d moon_ahead=%d sun_ahead=%d\n",
		outcomes[game.OutcomeUntouched], outcomes[game.OutcomeEven],
		outcomes[game.OutcomeMoonAhead], outcomes[game.OutcomeSunAhead])
	fmt.Fprintf(w, "avg_final: moon=%.1f sun=%.1f\n", avg(totalMoon, len(all)), avg(totalSun, len(all)))
	fmt.Fprintf(w, "avg_captures: moon=%.1f sun=%.1f\n", avg(totalMoonCaps, len(all)), avg(totalSunCaps, len(all)))
	fmt.Fprintf(w, "avg_first_capture_tick=%s\n", avgTickString(firstCaptures))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
