package player

import (
	"errors"

	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/uptrace/bun"
)

var (
	// ErrPlayerNotFound is returned when no player matches the lookup.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrLookupRequired is returned when neither an id nor a query is given.
	ErrLookupRequired = errors.New("player_id or q is required")
)

type store struct {
	db     bun.IDB
	mapper *schema.Mapper
}

// Lookup identifies a player by id or, when PlayerID is empty, by the best
// match for Query.
type Lookup struct {
	PlayerID string
	Query    string
}

type Player struct {
	PlayerID    string  `bun:"player_id" json:"player_id"`
	Nickname    *string `bun:"nickname" json:"nickname"`
	DisplayName *string `bun:"display_name" json:"display_name"`
	RealName    *string `bun:"real_name" json:"real_name"`
	BirthYear   *int    `bun:"birth_year" json:"birth_year"`
	IsActive    *int    `bun:"is_active" json:"is_active"`
	Notes       *string `bun:"notes" json:"notes"`
	ClubName    *string `bun:"club_name" json:"club_name"`
	JoinedAt    *string `bun:"joined_at" json:"joined_at"`
}

// Roster is a team the player was rostered with in one season.
type Roster struct {
	SeasonID string  `bun:"season_id" json:"season_id"`
	TeamID   string  `bun:"team_id" json:"team_id"`
	TeamName *string `bun:"team_name" json:"team_name"`
}

// Season is a season the player appeared in.
type Season struct {
	SeasonID   string  `bun:"season_id" json:"season_id"`
	EventID    *string `bun:"event_id" json:"event_id"`
	SeasonName *string `bun:"season_name" json:"season_name"`
	Year       *int    `bun:"year" json:"year"`
	Status     *string `bun:"status" json:"status"`
}

// Bundle is the player page payload. Lists are never nil.
type Bundle struct {
	Player  Player   `json:"player"`
	Rosters []Roster `json:"rosters"`
	Seasons []Season `json:"seasons"`
}
