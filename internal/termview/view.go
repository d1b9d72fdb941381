// Package termview draws a game.World in a terminal with tcell.
package termview

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/moon-and-sun/internal/game"
)

const (
	tokenGlyph = '●'
	// cellAspect is how many terminal columns make one row visually square.
	cellAspect = 2.0
)

// Sounder is notified of every capture.
type Sounder interface {
	Capture(team game.Team)
}

// View renders snapshots of a world onto a tcell screen.
type View struct {
	screen  tcell.Screen
	world   *game.World
	palette game.Palette
	sound   Sounder

	captures [2]int // last seen per-team capture totals
}

// New creates a view. sound may be nil.
func New(screen tcell.Screen, w *game.World, pal game.Palette, sound Sounder) *View {
	return &View{
		screen:  screen,
		world:   w,
		palette: pal,
		sound:   sound,
	}
}

// Run steps the world at fps and redraws until ctx is done or the user asks
// to quit (Esc or Ctrl-C).
func (v *View) Run(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go v.pollEvents(events, done)

	v.Draw(v.world.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.Tick()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is
// closed. events is closed when it returns.
func (v *View) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Tick advances the world one step, plays capture sounds and redraws.
func (v *View) Tick() {
	v.world.Step()
	v.notifyCaptures()
	v.Draw(v.world.Snapshot())
}

func (v *View) notifyCaptures() {
	for _, team := range []game.Team{game.TeamMoon, game.TeamSun} {
		n := v.world.Captures(team)
		if n > v.captures[team] && v.sound != nil {
			v.sound.Capture(team)
		}
		v.captures[team] = n
	}
}

// handleEvent returns false when the view should exit.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw(v.world.Snapshot())
	}
	return true
}

// layout maps world units to terminal columns/rows, leaving the bottom row
// for the scoreboard.
type layout struct {
	sx, sy     float64 // terminal cells per world unit
	offX, offY float64
}

func fitLayout(w, h int, f game.Field) layout {
	rows := float64(h - 1)
	sx := min(float64(w)/f.W, cellAspect*rows/f.H)
	sy := sx / cellAspect
	return layout{
		sx:   sx,
		sy:   sy,
		offX: (float64(w)-f.W*sx)/2 - f.X*sx,
		offY: (rows-f.H*sy)/2 - f.Y*sy,
	}
}

func (l layout) col(x float64) int { return int(l.offX + x*l.sx) }

func (l layout) row(y float64) int { return int(l.offY + y*l.sy) }

// Draw paints one frame from s.
func (v *View) Draw(s game.Snapshot) {
	w, h := v.screen.Size()
	v.screen.Clear()
	if w <= 0 || h <= 1 {
		v.screen.Show()
		return
	}

	moon, sun := s.Moon, s.Sun
	bg := toTcell(game.Tint(moon, moon+sun, v.palette.Sun, v.palette.Moon))
	base := tcell.StyleDefault.Background(bg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	l := fitLayout(w, h, s.Field)
	side := v.world.Geometry().Side
	for _, c := range s.Cells {
		p := c.Position()
		style := tcell.StyleDefault.Background(toTcell(v.palette.TeamColor(c.Team)))
		for y := l.row(p.Y); y < l.row(p.Y+side); y++ {
			for x := l.col(p.X); x < l.col(p.X+side); x++ {
				v.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}

	for _, t := range s.Tokens {
		x, y := l.col(t.Pos.X), l.row(t.Pos.Y)
		_, _, under, _ := v.screen.GetContent(x, y)
		_, cellBg, _ := under.Decompose()
		style := tcell.StyleDefault.
			Foreground(toTcell(v.palette.TeamColor(t.Team))).
			Background(cellBg)
		v.screen.SetContent(x, y, tokenGlyph, nil, style)
	}

	v.drawScore(w, h, game.FormatScore(moon, sun))
	v.screen.Show()
}

func (v *View) drawScore(w, h int, line string) {
	style := tcell.StyleDefault.Foreground(toTcell(v.palette.Text)).Bold(true)
	x := (w - len(line)) / 2
	for i, r := range line {
		v.screen.SetContent(x+i, h-1, r, nil, style)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
