package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(filepath.Join(t.TempDir(), "campaigns.db"), "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{
		"events", "seasons", "divisions", "score_components", "teams",
		"team_aliases", "players", "rosters", "registrations", "team_component_points",
	} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "The '%s' table should be created", table)
	}
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaigns.db")

	_, teardown, err := InitDB(path, "", "")
	require.NoError(t, err)
	teardown()

	db, teardown, err := InitDB(path, "", "")
	require.NoError(t, err, "running migrations twice should be a no-op")
	defer teardown()

	bdb := NewBunDB(db)
	var count int
	require.NoError(t, bdb.NewRaw("SELECT COUNT(*) FROM events").Scan(t.Context(), &count))
	assert.Equal(t, 0, count)
}
