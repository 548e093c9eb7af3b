package team

import (
	"sort"
	"strings"
)

// Rank orders teams of one conference for the standings table and assigns
// Position from 1. Ties on points fall through to wins, goal difference,
// fewer games played and finally name.
func Rank(teams []Team) []Team {
	out := make([]Team, len(teams))
	copy(out, teams)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed < b.GamesPlayed
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}
