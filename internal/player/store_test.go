package player_test

import (
	"testing"

	"github.com/mauv0809/blast-campaigns/internal/player"
	"github.com/mauv0809/blast-campaigns/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlayers(t *testing.T) player.Store {
	f := testutil.NewFixture(t)
	f.Event("hpl", "HPL").
		Season("S1", "hpl", 2024, "closed").
		Season("S2", "hpl", 2025, "ongoing")
	f.Team("teamA", "Alpha").Team("teamB", "Bravo")
	f.Player("p1", "Ace", "Ann Archer").
		Player("p2", "Bolt", "Ben Ace").
		Player("ace", "Zed", "Zoe")
	f.Roster("S1", "teamB", "p1").Roster("S2", "teamA", "p1").Roster("S2", "teamB", "p1")
	return player.New(f.Bun, f.Mapper)
}

func TestGetBundle_ById(t *testing.T) {
	store := seedPlayers(t)

	b, err := store.GetBundle(t.Context(), player.Lookup{PlayerID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, "p1", b.Player.PlayerID)
	require.NotNil(t, b.Player.IsActive)
	assert.Equal(t, 1, *b.Player.IsActive)

	rosters := make([][2]string, len(b.Rosters))
	for i, r := range b.Rosters {
		rosters[i] = [2]string{r.SeasonID, r.TeamID}
	}
	assert.Equal(t, [][2]string{{"S2", "teamA"}, {"S2", "teamB"}, {"S1", "teamB"}}, rosters)
	require.NotNil(t, b.Rosters[0].TeamName)
	assert.Equal(t, "Alpha", *b.Rosters[0].TeamName)

	require.Len(t, b.Seasons, 2, "seasons are distinct")
	assert.Equal(t, "S2", b.Seasons[0].SeasonID)
	require.NotNil(t, b.Seasons[0].EventID)
	assert.Equal(t, "hpl", *b.Seasons[0].EventID)
}

func TestGetBundle_ByQuery(t *testing.T) {
	store := seedPlayers(t)

	tests := []struct {
		query string
		want  string
	}{
		{query: "ace", want: "ace"},   // exact id wins
		{query: "Ben", want: "p2"},    // real name
		{query: "Archer", want: "p1"}, // real name substring
		{query: "o", want: "p2"},      // Bolt sorts before Zed
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			b, err := store.GetBundle(t.Context(), player.Lookup{Query: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Player.PlayerID)
			assert.NotNil(t, b.Rosters)
			assert.NotNil(t, b.Seasons)
		})
	}
}

func TestGetBundle_Errors(t *testing.T) {
	store := seedPlayers(t)

	_, err := store.GetBundle(t.Context(), player.Lookup{})
	assert.ErrorIs(t, err, player.ErrLookupRequired)

	_, err = store.GetBundle(t.Context(), player.Lookup{PlayerID: "nobody"})
	assert.ErrorIs(t, err, player.ErrPlayerNotFound)

	_, err = store.GetBundle(t.Context(), player.Lookup{Query: "qqq"})
	assert.ErrorIs(t, err, player.ErrPlayerNotFound)
}
