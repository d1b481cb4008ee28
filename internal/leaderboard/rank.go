package leaderboard

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
)

// Rank orders entries by points descending, then by case-folded team name,
// then by team id, and assigns competition ranks: a team's rank is one plus
// the number of teams with strictly more points.
func Rank(entries []Entry) []Row {
	fold := cases.Fold()
	type keyed struct {
		Entry
		name string
	}
	sorted := make([]keyed, len(entries))
	for i, e := range entries {
		sorted[i] = keyed{Entry: e}
		if e.TeamName != nil {
			sorted[i].name = fold.String(*e.TeamName)
		}
	}
	slices.SortStableFunc(sorted, func(a, b keyed) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(a.name, b.name); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})

	rows := make([]Row, len(sorted))
	for i, e := range sorted {
		rank := i + 1
		if i > 0 && e.Points == sorted[i-1].Points {
			rank = rows[i-1].Rank
		}
		rows[i] = Row{Rank: rank, TeamID: e.TeamID, TeamName: e.TeamName, Points: e.Points}
	}
	return rows
}
