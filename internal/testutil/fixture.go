// Package testutil builds throwaway campaign databases for tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mauv0809/blast-campaigns/internal/database"
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// Fixture is a migrated SQLite database living in the test's temp dir.
type Fixture struct {
	t      *testing.T
	DB     *sql.DB
	Bun    *bun.DB
	Mapper *schema.Mapper
}

// NewFixture creates a database with the current schema.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	db, teardown, err := database.InitDB(filepath.Join(t.TempDir(), "campaigns.db"), "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)
	return newFixture(t, db)
}

// NewRawFixture creates an empty database and runs ddl instead of the
// migrations, for tests that need a different schema revision.
func NewRawFixture(t *testing.T, ddl ...string) *Fixture {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "campaigns.db"), "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	for _, stmt := range ddl {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return newFixture(t, db)
}

func newFixture(t *testing.T, db *sql.DB) *Fixture {
	bdb := database.NewBunDB(db)
	return &Fixture{t: t, DB: db, Bun: bdb, Mapper: schema.NewMapper(bdb, nil)}
}

// Exec runs a statement and fails the test on error.
func (f *Fixture) Exec(query string, args ...any) {
	f.t.Helper()
	_, err := f.DB.Exec(query, args...)
	require.NoError(f.t, err)
}

func (f *Fixture) Event(id, name string) *Fixture {
	f.Exec(`INSERT INTO events (event_id, name_en) VALUES (?, ?)`, id, name)
	return f
}

func (f *Fixture) Season(id, eventID string, year int, status string) *Fixture {
	f.Exec(`INSERT INTO seasons (season_id, event_id, name, year, status) VALUES (?, ?, ?, ?, ?)`,
		id, eventID, id+" season", year, status)
	return f
}

func (f *Fixture) Division(seasonID, key, leaderboardKey string, sortOrder int) *Fixture {
	f.Exec(`INSERT INTO divisions (division_key, season_id, name, leaderboard_key, sort_order) VALUES (?, ?, ?, ?, ?)`,
		key, seasonID, key, leaderboardKey, sortOrder)
	return f
}

func (f *Fixture) Component(id, leaderboardKey, componentType string, sortOrder int) *Fixture {
	f.Exec(`INSERT INTO score_components (component_id, leaderboard_key, name, component_type, sort_order) VALUES (?, ?, ?, ?, ?)`,
		id, leaderboardKey, id, componentType, sortOrder)
	return f
}

func (f *Fixture) Team(id, name string) *Fixture {
	f.Exec(`INSERT INTO teams (team_id, canonical_name) VALUES (?, ?)`, id, nullable(name))
	return f
}

// Registration enrolls a team in a season. An empty division leaves the
// column NULL.
func (f *Fixture) Registration(id, seasonID, teamID, division, status string) *Fixture {
	if status == "" {
		status = "confirmed"
	}
	f.Exec(`INSERT INTO registrations (registration_id, season_id, team_id, division, status) VALUES (?, ?, ?, ?, ?)`,
		id, seasonID, teamID, nullable(division), status)
	return f
}

func (f *Fixture) Points(registrationID, componentID string, points float64) *Fixture {
	f.Exec(`INSERT INTO team_component_points (registration_id, component_id, points) VALUES (?, ?, ?)`,
		registrationID, componentID, points)
	return f
}

func (f *Fixture) Player(id, nickname, realName string) *Fixture {
	f.Exec(`INSERT INTO players (player_id, nickname, display_name, real_name) VALUES (?, ?, ?, ?)`,
		id, nickname, nickname, realName)
	return f
}

func (f *Fixture) Roster(seasonID, teamID, playerID string) *Fixture {
	f.Exec(`INSERT INTO rosters (season_id, team_id, player_id) VALUES (?, ?, ?)`, seasonID, teamID, playerID)
	return f
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
