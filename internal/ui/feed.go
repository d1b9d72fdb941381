package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/moon-and-sun/internal/game"
)

const (
	feedMaxEntries = 12
	feedLineHeight = 16
	feedWidth      = 220
)

// FeedEntry is a single line in the capture feed.
type FeedEntry struct {
	Tick    int
	Token   string
	Message string
}

// EventFeed is a ring buffer of recent simulation events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(tick int, token, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Token: token, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Sync copies capture events into the feed and empties sl, so the log only
// ever holds one tick's worth of events.
func (f *EventFeed) Sync(sl *game.SimLog) {
	for _, e := range sl.Entries() {
		if e.Category == game.LogCatCapture {
			f.Add(e.Tick, e.Token, e.Value)
		}
	}
	sl.Reset()
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed panel in the top-left corner.
func (f *EventFeed) Draw(screen *ebiten.Image, pal game.Palette) {
	entries := f.Recent()
	if len(entries) == 0 {
		return
	}
	h := float32(len(entries)*feedLineHeight + 8)
	vector.FillRect(screen, 4, 4, feedWidth, h, color.RGBA{R: 10, G: 12, B: 16, A: 200}, false)

	y := 8
	for _, e := range entries {
		dot := pal.Sun
		if e.Token == game.TeamMoon.String() {
			dot = pal.Moon
		}
		vector.FillRect(screen, 9, float32(y+4), 4, 6, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), 18, y)
		y += feedLineHeight
	}
}
