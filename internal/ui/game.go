package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/moon-and-sun/internal/game"
)

// scoreTextHeight is the scoreboard glyph height in field units (before the
// render scale is applied).
const scoreTextHeight = 40

// Game adapts a game.World to ebiten's per-frame contract.
type Game struct {
	world   *game.World
	cfg     game.Config
	palette game.Palette
	face    *text.GoXFace
	feed    *EventFeed

	width  int // current layout size
	height int
	scale  float64
	offX   float64 // screen position of the field origin
	offY   float64

	bg colorful.Color // displayed background, eases toward the tint
}

// New builds the world and presentation state for a window of the configured
// size.
func New(cfg game.Config, opts ...game.WorldOption) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		palette: pal,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	fw, fh := cfg.FieldSize()
	g.width, g.height = cfg.Window.Width, cfg.Window.Height
	g.scale, g.offX, g.offY = fitField(g.width, g.height, fw, fh)

	var sl *game.SimLog
	if cfg.Features.EventFeed {
		sl = game.NewSimLog(false)
		g.feed = NewEventFeed()
	}
	opts = append([]game.WorldOption{game.WithScale(g.scale), game.WithSimLog(sl)}, opts...)
	g.world = game.NewWorld(cfg, opts...)

	g.bg, _ = colorful.MakeColor(g.targetBackground())
	return g, nil
}

// World exposes the simulation for tests and tools.
func (g *Game) World() *game.World {
	return g.world
}

// fitField returns the largest uniform scale at which a fw×fh field fits a
// w×h window, and the offsets that centre it.
func fitField(w, h int, fw, fh float64) (scale, offX, offY float64) {
	scale = min(float64(w)/fw, float64(h)/fh)
	offX = (float64(w) - fw*scale) / 2
	offY = (float64(h) - fh*scale) / 2
	return scale, offX, offY
}

func (g *Game) Update() error {
	g.world.Step()
	if g.feed != nil {
		g.feed.Sync(g.world.SimLog())
	}
	g.updateBackground()
	return nil
}

// targetBackground is the core tint for the current board.
func (g *Game) targetBackground() color.RGBA {
	moon, sun := g.world.Score()
	return game.Tint(moon, moon+sun, g.palette.Sun, g.palette.Moon)
}

// updateBackground eases the displayed background toward the tint, or snaps
// to it when the transition is disabled.
func (g *Game) updateBackground() {
	target := g.targetBackground()
	if !g.cfg.Features.TintTransition {
		g.bg, _ = colorful.MakeColor(target)
		return
	}
	g.bg = stepBackground(g.bg, target, g.cfg.Tint.TransitionRate)
}

// stepBackground blends cur a fraction rate of the way toward target.
func stepBackground(cur colorful.Color, target color.RGBA, rate float64) colorful.Color {
	t, _ := colorful.MakeColor(target)
	return cur.BlendRgb(t, rate).Clamped()
}

func (g *Game) Draw(screen *ebiten.Image) {
	r, gr, b := g.bg.RGB255()
	screen.Fill(color.RGBA{R: r, G: gr, B: b, A: 255})

	side := float32(g.world.Geometry().Side * g.scale)
	for _, c := range g.world.Cells() {
		p := c.Position()
		x, y := g.toScreen(p.X, p.Y)
		vector.FillRect(screen, x, y, side, side, g.palette.TeamColor(c.Team), false)
	}

	radius := float32(g.world.Geometry().Radius * g.scale)
	for _, t := range g.world.Tokens() {
		x, y := g.toScreen(t.Pos.X, t.Pos.Y)
		vector.FillCircle(screen, x, y, radius, g.palette.TeamColor(t.Team), true)
	}

	g.drawScore(screen)
	if g.feed != nil {
		g.feed.Draw(screen, g.palette)
	}
}

func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(g.offX + x*g.scale), float32(g.offY + y*g.scale)
}

// drawScore renders the scoreboard centred along the bottom edge.
func (g *Game) drawScore(screen *ebiten.Image) {
	line := game.FormatScore(g.world.Score())
	size := scoreTextHeight * g.scale / float64(basicfont.Face7x13.Height)
	w, h := text.Measure(line, g.face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate((float64(g.width)-w*size)/2, float64(g.height)-h*size)
	op.ColorScale.ScaleWithColor(g.palette.Text)
	text.Draw(screen, line, g.face, op)
}

// Layout follows the window when resizing is enabled; otherwise the logical
// screen stays at the configured size and ebiten scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.cfg.Features.Resize {
		return g.cfg.Window.Width, g.cfg.Window.Height
	}
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// resize recomputes the screen transform and hands the new render scale to
// the world before the next tick.
func (g *Game) resize(w, h int) {
	fw, fh := g.cfg.FieldSize()
	g.width, g.height = w, h
	g.scale, g.offX, g.offY = fitField(w, h, fw, fh)
	g.world.Resize(g.world.Field(), g.scale)
}
