package domain

import "fmt"

// Defaults applied when a game has no linescore yet (pregame or very early).
const (
	DefaultInning     = "N/A"
	DefaultInningHalf = "Top"
)

// HalfLabel maps an inning half to its display prefix. Anything other than
// "Bottom" renders as "Top of".
func HalfLabel(half string) string {
	if half == "Bottom" {
		return "Bottom of"
	}
	return "Top of"
}

// FormatTitle renders the picker line for a game, e.g.
// "NYY (3) vs BOS (2) | Bottom of 7th".
func FormatTitle(awayAbbr string, awayScore int, homeAbbr string, homeScore int, half, inning string) string {
	return fmt.Sprintf("%s (%d) vs %s (%d) | %s %s", awayAbbr, awayScore, homeAbbr, homeScore, HalfLabel(half), inning)
}

// MatchKey builds the correlation key used to find a game on the streams
// API, e.g. "New York Yankees vs Boston Red Sox". Matching is exact and
// case-sensitive, so no normalization happens here.
func MatchKey(awayName, homeName string) string {
	return fmt.Sprintf("%s vs %s", awayName, homeName)
}
