package selector

import "github.com/mauv0809/blast-campaigns/internal/campaign"

// Level is a step of the event > season > division > round hierarchy.
type Level int

const (
	LevelNone Level = iota
	LevelEvent
	LevelSeason
	LevelDivision
	LevelRound
)

func (l Level) String() string {
	switch l {
	case LevelEvent:
		return "event"
	case LevelSeason:
		return "season"
	case LevelDivision:
		return "division"
	case LevelRound:
		return "round"
	}
	return "none"
}

// Request holds the identifiers a caller asked for. Any of them may be empty.
type Request struct {
	EventID     string
	SeasonID    string
	DivisionKey string
	RoundKey    string
}

// Context is the effective selection. Levels that could not be resolved are
// left empty.
type Context struct {
	EventID        string `json:"event_id,omitempty"`
	SeasonID       string `json:"season_id,omitempty"`
	DivisionKey    string `json:"division_key,omitempty"`
	RoundKey       string `json:"round_key,omitempty"`
	LeaderboardKey string `json:"leaderboard_key,omitempty"`
}

// Request turns a resolved context back into a request.
func (c Context) Request() Request {
	return Request{
		EventID:     c.EventID,
		SeasonID:    c.SeasonID,
		DivisionKey: c.DivisionKey,
		RoundKey:    c.RoundKey,
	}
}

// Selection is the outcome of a resolution together with the candidates
// fetched at every level that was reached.
type Selection struct {
	Context   Context
	Events    []campaign.Event
	Seasons   []campaign.Season
	Divisions []campaign.Division
	Rounds    []campaign.Component
	// Division is the resolved division, nil when none was resolved.
	Division *campaign.Division
	// Depth is the deepest level with a resolved identifier.
	Depth Level
}

// ResolveError is a storage failure while fetching the candidates of a level.
type ResolveError struct {
	Level Level
	Err   error
}

func (e *ResolveError) Error() string {
	return "selector: " + e.Level.String() + ": " + e.Err.Error()
}

func (e *ResolveError) Unwrap() error { return e.Err }
