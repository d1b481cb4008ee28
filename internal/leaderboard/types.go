package leaderboard

import "github.com/mauv0809/blast-campaigns/internal/campaign"

// View selects how far a division total reaches.
type View string

const (
	// ViewTotal counts the division's own leaderboard key only.
	ViewTotal View = ""
	// ViewScoped also counts the round-group keys nested under it.
	ViewScoped View = "scoped"
)

// ParseView maps a query value to a View. Unknown values mean ViewTotal.
func ParseView(s string) View {
	if View(s) == ViewScoped {
		return ViewScoped
	}
	return ViewTotal
}

// Scope is a fully resolved leaderboard request.
type Scope struct {
	SeasonID       string
	DivisionKey    string
	LeaderboardKey string
	// RoundKey narrows the table to a single component when set.
	RoundKey string
	View     View
}

// Entry is one team's total before ranking.
type Entry struct {
	TeamID   string
	TeamName *string
	Points   float64
}

// Row is a ranked leaderboard line.
type Row struct {
	Rank     int     `json:"rank"`
	TeamID   string  `json:"team_id"`
	TeamName *string `json:"team_name"`
	Points   float64 `json:"points"`
}

// Aggregator computes leaderboards from the campaign store.
type Aggregator struct {
	store campaign.Store
}
