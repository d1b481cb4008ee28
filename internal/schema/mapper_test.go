package schema_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mauv0809/blast-campaigns/internal/database"
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// setupTestDB opens an empty SQLite file without running migrations so each
// test can shape its own tables.
func setupTestDB(t *testing.T, ddl ...string) *bun.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "schema.db"), "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range ddl {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return database.NewBunDB(db)
}

func TestResolveColumn(t *testing.T) {
	cols := schema.ColumnSet{"season_id": {}, "season_name": {}, "year": {}}

	t.Run("first matching candidate wins", func(t *testing.T) {
		col, ok := schema.ResolveColumn(cols, []string{"name", "season_name", "year"})
		assert.True(t, ok)
		assert.Equal(t, "season_name", col)
	})

	t.Run("absent when nothing matches", func(t *testing.T) {
		col, ok := schema.ResolveColumn(cols, []string{"status", "season_status"})
		assert.False(t, ok)
		assert.Empty(t, col)
	})

	t.Run("absent for empty candidate list", func(t *testing.T) {
		_, ok := schema.ResolveColumn(cols, nil)
		assert.False(t, ok)
	})
}

func TestMapper_ResolvesAcrossNamingDrift(t *testing.T) {
	ctx := t.Context()
	oldDB := setupTestDB(t, `CREATE TABLE seasons (season_id TEXT, event_id TEXT, name TEXT, year INTEGER)`)
	newDB := setupTestDB(t, `CREATE TABLE seasons (season_id TEXT, event_id TEXT, season_name TEXT)`)

	oldCol, ok, err := schema.NewMapper(oldDB, nil).Resolve(ctx, schema.Seasons, "name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "name", oldCol)

	newMapper := schema.NewMapper(newDB, nil)
	newCol, ok, err := newMapper.Resolve(ctx, schema.Seasons, "name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "season_name", newCol)

	_, ok, err = newMapper.Resolve(ctx, schema.Seasons, "year")
	require.NoError(t, err)
	assert.False(t, ok, "year is not part of the newer schema")
}

func TestMapper_MissingTableHasNoColumns(t *testing.T) {
	m := schema.NewMapper(setupTestDB(t), nil)

	cols, err := m.Columns(t.Context(), schema.Rosters)
	require.NoError(t, err)
	assert.Empty(t, cols)

	r, err := m.Table(t.Context(), schema.Rosters, "r")
	require.NoError(t, err)
	assert.False(t, r.Has("team_id"))
}

func TestMapper_CachesColumnsForProcessLifetime(t *testing.T) {
	db := setupTestDB(t, `CREATE TABLE teams (team_id TEXT, canonical_name TEXT)`)
	m := schema.NewMapper(db, nil)

	col, ok, err := m.Resolve(t.Context(), schema.Teams, "name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "canonical_name", col)

	_, err = db.Exec(`ALTER TABLE teams RENAME COLUMN canonical_name TO team_name`)
	require.NoError(t, err)

	col, ok, err = m.Resolve(t.Context(), schema.Teams, "name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "canonical_name", col, "schema changes require a restart")

	fresh := schema.NewMapper(db, nil)
	col, _, err = fresh.Resolve(t.Context(), schema.Teams, "name")
	require.NoError(t, err)
	assert.Equal(t, "team_name", col)
}

func TestMapper_ConcurrentFirstAccess(t *testing.T) {
	db := setupTestDB(t, `CREATE TABLE divisions (division_key TEXT, season_id TEXT, leaderboard_key TEXT, sort_order INTEGER)`)
	m := schema.NewMapper(db, nil)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			col, _, err := m.Resolve(t.Context(), schema.Divisions, "sort_order")
			assert.NoError(t, err)
			results[i] = col
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "sort_order", r)
	}
}

func TestResolved_SelectProjectsNullForMissingFields(t *testing.T) {
	db := setupTestDB(t,
		`CREATE TABLE seasons (season_id TEXT, event_id TEXT, season_name TEXT)`,
		`INSERT INTO seasons VALUES ('s1', 'hpl', 'Spring')`,
	)
	m := schema.NewMapper(db, nil)
	r, err := m.Table(t.Context(), schema.Seasons, "s")
	require.NoError(t, err)

	type row struct {
		SeasonID string `bun:"season_id"`
		Name     string `bun:"name"`
		Status   string `bun:"status"`
		Year     *int   `bun:"year"`
	}
	var rows []row
	from, args := r.From()
	q := db.NewSelect().TableExpr(from, args...)
	q = r.Select(q, "season_id", "name", "status", "year")
	require.NoError(t, q.Scan(t.Context(), &rows))

	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].SeasonID)
	assert.Equal(t, "Spring", rows[0].Name)
	assert.Empty(t, rows[0].Status)
	assert.Nil(t, rows[0].Year)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		c, err := schema.LoadCatalog("")
		require.NoError(t, err)
		assert.Equal(t, schema.DefaultCatalog(), c)
	})

	t.Run("overrides are tried first", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "aliases.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seasons:\n  name: [title, name]\nrosters:\n  jersey: [shirt_no]\n"), 0o600))

		c, err := schema.LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"title", "name", "season_name"}, c.Candidates(schema.Seasons, "name"))
		assert.Equal(t, []string{"shirt_no"}, c.Candidates(schema.Rosters, "jersey"))
		assert.Equal(t, []string{"season_id", "id"}, c.Candidates(schema.Seasons, "season_id"))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := schema.LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
