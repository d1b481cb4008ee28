package bundle

import (
	"github.com/alitto/pond/v2"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/leaderboard"
	"github.com/mauv0809/blast-campaigns/internal/metrics"
	"github.com/mauv0809/blast-campaigns/internal/selector"
)

// Query is a possibly partial bundle request.
type Query struct {
	EventID     string
	SeasonID    string
	DivisionKey string
	RoundKey    string
	View        leaderboard.View
}

// Bundle is everything a campaign page needs in one response.
type Bundle struct {
	Context   selector.Context  `json:"context"`
	Selectors Selectors         `json:"selectors"`
	Overview  Overview          `json:"overview"`
	Table     []leaderboard.Row `json:"table"`
}

// Selectors lists the candidates of every level that was reached. The lists
// are never nil.
type Selectors struct {
	Events    []campaign.Event     `json:"events"`
	Seasons   []campaign.Season    `json:"seasons"`
	Divisions []campaign.Division  `json:"divisions"`
	Rounds    []campaign.Component `json:"rounds"`
}

// Overview holds summary counts. A nil field could not be computed.
type Overview struct {
	TeamsTotal       *int `json:"teams_total"`
	SeasonsTotal     *int `json:"seasons_total"`
	DivisionsTotal   *int `json:"divisions_total"`
	RoundsTotal      *int `json:"rounds_total"`
	RegisteredTeams  *int `json:"registered_teams"`
	RosterPlayers    *int `json:"roster_players"`
	ScoredComponents *int `json:"scored_components"`
}

// Assembler builds bundles. It is safe for concurrent use.
type Assembler struct {
	store      campaign.Store
	resolver   *selector.Resolver
	aggregator *leaderboard.Aggregator
	pool       pond.Pool
	metrics    metrics.Metrics
}

// StorageError reports the stage of bundle assembly whose query failed.
type StorageError struct {
	Stage string
	Err   error
}

func (e *StorageError) Error() string {
	return "bundle: " + e.Stage + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
