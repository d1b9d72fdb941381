package game

import "fmt"

// Count returns how many cells team currently owns.
func Count(cells []Cell, team Team) int {
	n := 0
	for i := range cells {
		if cells[i].Team == team {
			n++
		}
	}
	return n
}

// Score returns the cell counts for both teams.
func Score(cells []Cell) (moon, sun int) {
	for i := range cells {
		if cells[i].Team == TeamMoon {
			moon++
		} else {
			sun++
		}
	}
	return moon, sun
}

// FormatScore renders the scoreboard line, e.g. "Moon 003 | Sun 045".
func FormatScore(moon, sun int) string {
	return fmt.Sprintf("%s %03d | %s %03d", TeamMoon, moon, TeamSun, sun)
}
