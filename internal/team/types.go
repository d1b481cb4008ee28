package team

import (
	"errors"

	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/uptrace/bun"
)

// ErrTeamNotFound is returned when no team has the requested id.
var ErrTeamNotFound = errors.New("team not found")

type store struct {
	db     bun.IDB
	mapper *schema.Mapper
}

type Team struct {
	TeamID            string  `bun:"team_id" json:"team_id"`
	CanonicalName     *string `bun:"canonical_name" json:"canonical_name"`
	ClubID            *string `bun:"club_id" json:"club_id"`
	FirstSeenSeasonID *string `bun:"first_seen_season_id" json:"first_seen_season_id"`
	Note              *string `bun:"note" json:"note"`
}

// Alias is a former or alternative name of a team.
type Alias struct {
	AliasName string  `bun:"alias_name" json:"alias_name"`
	FromDate  *string `bun:"from_date" json:"from_date"`
	ToDate    *string `bun:"to_date" json:"to_date"`
	Note      *string `bun:"note" json:"note"`
}

// RosterEntry is a player rostered for the team in one season.
type RosterEntry struct {
	SeasonID  string  `bun:"season_id" json:"season_id"`
	PlayerID  string  `bun:"player_id" json:"player_id"`
	Nickname  *string `bun:"nickname" json:"nickname"`
	RealName  *string `bun:"real_name" json:"real_name"`
	BirthYear *int    `bun:"birth_year" json:"birth_year"`
	ClubName  *string `bun:"club_name" json:"club_name"`
}

// Registration is a season entry of the team, with the season's metadata.
type Registration struct {
	RegistrationID     string  `bun:"registration_id" json:"registration_id"`
	SeasonID           string  `bun:"season_id" json:"season_id"`
	SeasonName         *string `bun:"season_name" json:"season_name"`
	Year               *int    `bun:"year" json:"year"`
	Status             *string `bun:"status" json:"status"`
	Division           *string `bun:"division" json:"division"`
	RegistrationStatus *string `bun:"registration_status" json:"registration_status"`
}

// ComponentPoints is the team's total for one component of one season.
type ComponentPoints struct {
	SeasonID      string  `bun:"season_id" json:"season_id"`
	ComponentID   string  `bun:"component_id" json:"component_id"`
	ComponentName *string `bun:"component_name" json:"component_name"`
	ComponentType *string `bun:"component_type" json:"component_type"`
	Points        float64 `bun:"points" json:"points"`
}

// Bundle is the team page payload. Lists are never nil.
type Bundle struct {
	Team          Team              `json:"team"`
	Aliases       []Alias           `json:"aliases"`
	Roster        []RosterEntry     `json:"roster"`
	Registrations []Registration    `json:"registrations"`
	Points        []ComponentPoints `json:"points"`
}
