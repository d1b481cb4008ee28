package campaign

import (
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/uptrace/bun"
)

// store reads campaign data through the schema mapper.
type store struct {
	db     bun.IDB
	mapper *schema.Mapper
}

// Event is the root of the hierarchy.
type Event struct {
	EventID     string  `bun:"event_id" json:"event_id"`
	Name        *string `bun:"name" json:"name"`
	NameZh      *string `bun:"name_zh" json:"name_zh"`
	NameEn      *string `bun:"name_en" json:"name_en"`
	Level       *string `bun:"level" json:"level"`
	Frequency   *string `bun:"frequency" json:"frequency"`
	OfficialURL *string `bun:"official_url" json:"official_url"`
	Description *string `bun:"description" json:"description"`
}

// Season belongs to exactly one event.
type Season struct {
	SeasonID  string  `bun:"season_id" json:"season_id"`
	EventID   string  `bun:"event_id" json:"event_id"`
	Name      *string `bun:"name" json:"name"`
	Year      *int    `bun:"year" json:"year"`
	StartDate *string `bun:"start_date" json:"start_date"`
	EndDate   *string `bun:"end_date" json:"end_date"`
	Status    *string `bun:"status" json:"status"`
	Notes     *string `bun:"notes" json:"notes"`
}

// Division belongs to a season and names the leaderboard scope its total
// view aggregates.
type Division struct {
	DivisionKey    string  `bun:"division_key" json:"division_key"`
	SeasonID       string  `bun:"season_id" json:"season_id"`
	Name           *string `bun:"name" json:"name"`
	LeaderboardKey string  `bun:"leaderboard_key" json:"leaderboard_key"`
	SortOrder      *int    `bun:"sort_order" json:"sort_order"`
	Notes          *string `bun:"notes" json:"notes"`
}

// Component is a scorable round or round group.
type Component struct {
	ComponentID    string  `bun:"component_id" json:"component_id"`
	RoundKey       string  `bun:"-" json:"round_key"`
	LeaderboardKey string  `bun:"leaderboard_key" json:"leaderboard_key"`
	Name           *string `bun:"name" json:"name"`
	ComponentType  *string `bun:"component_type" json:"component_type"`
	Type           *string `bun:"-" json:"type"`
	StartDate      *string `bun:"start_date" json:"start_date"`
	EndDate        *string `bun:"end_date" json:"end_date"`
	SortOrder      *int    `bun:"sort_order" json:"sort_order"`
	Notes          *string `bun:"notes" json:"notes"`
}

const (
	ComponentRound      = "round"
	ComponentRoundGroup = "round_group"
)

// RegistrationScope selects the registrations a leaderboard is built from.
// Registrations without a division apply to every division of the season.
type RegistrationScope struct {
	SeasonID    string
	DivisionKey string
}

// Participant is a team taking part in a registration scope.
type Participant struct {
	TeamID   string  `bun:"team_id"`
	TeamName *string `bun:"team_name"`
}

// TeamPoints is the summed score of one team.
type TeamPoints struct {
	TeamID string  `bun:"team_id"`
	Points float64 `bun:"points"`
}

// CriterionKind tells which points rows count toward a leaderboard.
type CriterionKind int

const (
	// MatchComponent counts points of exactly one component.
	MatchComponent CriterionKind = iota
	// MatchLeaderboard counts points of every component in a leaderboard scope.
	MatchLeaderboard
)

// Criterion filters points rows by the component they were scored for.
type Criterion struct {
	Kind           CriterionKind
	ComponentID    string
	LeaderboardKey string
	IncludeSubKeys bool
}
