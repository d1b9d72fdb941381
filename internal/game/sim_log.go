package game

import (
	"fmt"
	"strings"
)

// SimLog categories and keys written by World.
const (
	LogCatCapture  = "capture"
	LogCatBoundary = "boundary"
	LogCatField    = "field"
	LogCatMove     = "move"

	LogKeyCell     = "cell"
	LogKeyBounceX  = "bounce_x"
	LogKeyBounceY  = "bounce_y"
	LogKeyResize   = "resize"
	LogKeyPosition = "position"
)

// SimLogEntry is one recorded event.
type SimLogEntry struct {
	Tick     int
	Token    string  // "Moon", "Sun", or "--" for global events
	Category string  // capture, boundary, field, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] Moon capture   cell             #17 Moon → Sun
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Token, e.Category, e.Key, e.Value)
}

// SimLog collects structured events from a World. It is unbounded and
// machine-readable; presentation layers keep their own short history.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick token positions
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, token, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Token:    token,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, token, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, token, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (sl *SimLog) Verbose() bool {
	return sl.verbose
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterToken returns entries for one token label.
func (sl *SimLog) FilterToken(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Token == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reset drops every recorded entry, keeping the verbose setting.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Summary returns a short human-readable summary of the board.
func (sl *SimLog) Summary(tick int, cells []Cell) string {
	var sb strings.Builder
	moon, sun := Score(cells)
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", tick)
	fmt.Fprintf(&sb, "%s\n", FormatScore(moon, sun))
	for _, team := range []Team{TeamMoon, TeamSun} {
		n := 0
		for _, e := range sl.FilterToken(team.String()) {
			if e.Category == LogCatCapture {
				n++
			}
		}
		fmt.Fprintf(&sb, "%s captures: %d\n", team, n)
	}
	fmt.Fprintf(&sb, "Wall bounces: %d\n",
		sl.CountCategory(LogCatBoundary, LogKeyBounceX)+sl.CountCategory(LogCatBoundary, LogKeyBounceY))
	return sb.String()
}
