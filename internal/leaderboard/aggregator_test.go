package leaderboard_test

import (
	"testing"

	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/leaderboard"
	"github.com/mauv0809/blast-campaigns/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedEliteRookie builds a season where teamA and teamB play elite and
// teamC plays rookie. Only teamA has elite points.
func seedEliteRookie(t *testing.T) *testutil.Fixture {
	f := testutil.NewFixture(t)
	f.Event("hpl", "HPL").Season("S1", "hpl", 2025, "ongoing")
	f.Division("S1", "elite", "S1_elite", 1).Division("S1", "rookie", "S1_rookie", 2)
	f.Component("S1_elite_r1", "S1_elite", campaign.ComponentRound, 1).
		Component("S1_elite_r2", "S1_elite", campaign.ComponentRound, 2).
		Component("S1_rookie_r1", "S1_rookie", campaign.ComponentRound, 1)
	f.Team("teamA", "Alpha").Team("teamB", "Bravo").Team("teamC", "Charlie")
	f.Registration("regA", "S1", "teamA", "elite", "").
		Registration("regB", "S1", "teamB", "elite", "").
		Registration("regC", "S1", "teamC", "rookie", "")
	f.Points("regA", "S1_elite_r1", 10).
		Points("regA", "S1_elite_r2", 20).
		Points("regC", "S1_rookie_r1", 50)
	return f
}

func tableOf(rows []leaderboard.Row) map[string][2]float64 {
	m := make(map[string][2]float64, len(rows))
	for _, r := range rows {
		m[r.TeamID] = [2]float64{float64(r.Rank), r.Points}
	}
	return m
}

func TestCompute_EliteTotal(t *testing.T) {
	f := seedEliteRookie(t)
	agg := leaderboard.NewAggregator(campaign.New(f.Bun, f.Mapper))

	rows, err := agg.Compute(t.Context(), leaderboard.Scope{
		SeasonID: "S1", DivisionKey: "elite", LeaderboardKey: "S1_elite",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string][2]float64{
		"teamA": {1, 30},
		"teamB": {2, 0},
	}, tableOf(rows))
	require.NotNil(t, rows[0].TeamName)
	assert.Equal(t, "Alpha", *rows[0].TeamName)
}

func TestCompute_RoundIsExact(t *testing.T) {
	f := seedEliteRookie(t)
	agg := leaderboard.NewAggregator(campaign.New(f.Bun, f.Mapper))

	rows, err := agg.Compute(t.Context(), leaderboard.Scope{
		SeasonID: "S1", DivisionKey: "elite", LeaderboardKey: "S1_elite", RoundKey: "S1_elite_r1",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][2]float64{"teamA": {1, 10}, "teamB": {2, 0}}, tableOf(rows))
}

func TestCompute_UnmatchedKeyIsAllZero(t *testing.T) {
	f := seedEliteRookie(t)
	agg := leaderboard.NewAggregator(campaign.New(f.Bun, f.Mapper))

	rows, err := agg.Compute(t.Context(), leaderboard.Scope{
		SeasonID: "S1", DivisionKey: "elite", LeaderboardKey: "S9_nothing",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][2]float64{"teamA": {1, 0}, "teamB": {1, 0}}, tableOf(rows))
}

func TestCompute_UnknownSeasonIsEmpty(t *testing.T) {
	f := seedEliteRookie(t)
	agg := leaderboard.NewAggregator(campaign.New(f.Bun, f.Mapper))

	rows, err := agg.Compute(t.Context(), leaderboard.Scope{SeasonID: "S9", DivisionKey: "elite", LeaderboardKey: "S1_elite"})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rows, err = agg.Compute(t.Context(), leaderboard.Scope{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestCompute_ScopedViewIncludesSubKeys(t *testing.T) {
	f := seedEliteRookie(t)
	f.Component("S1_elite_g1_r1", "S1_elite_g1", campaign.ComponentRoundGroup, 3).
		Points("regB", "S1_elite_g1_r1", 40)
	agg := leaderboard.NewAggregator(campaign.New(f.Bun, f.Mapper))
	scope := leaderboard.Scope{SeasonID: "S1", DivisionKey: "elite", LeaderboardKey: "S1_elite"}

	rows, err := agg.Compute(t.Context(), scope)
	require.NoError(t, err)
	assert.Equal(t, map[string][2]float64{"teamA": {1, 30}, "teamB": {2, 0}}, tableOf(rows))

	scope.View = leaderboard.ViewScoped
	rows, err = agg.Compute(t.Context(), scope)
	require.NoError(t, err)
	assert.Equal(t, map[string][2]float64{"teamB": {1, 40}, "teamA": {2, 30}}, tableOf(rows))
}

func TestCriterionFor_DistinctPredicates(t *testing.T) {
	round := leaderboard.CriterionFor(leaderboard.Scope{LeaderboardKey: "S1_elite", RoundKey: "S1_elite_r1"})
	total := leaderboard.CriterionFor(leaderboard.Scope{LeaderboardKey: "S1_elite"})

	assert.Equal(t, campaign.MatchComponent, round.Kind)
	assert.Equal(t, campaign.MatchLeaderboard, total.Kind)

	// A row of another round in the same leaderboard separates the two.
	assert.False(t, round.Matches("S1_elite_r2", "S1_elite"))
	assert.True(t, total.Matches("S1_elite_r2", "S1_elite"))
	// Round matching never widens to a prefix.
	assert.False(t, round.Matches("S1_elite_r1_extra", "S1_elite"))
}

func TestCompute_UsesMockStore(t *testing.T) {
	m := campaign.NewMock()
	m.ListParticipantsFunc = func(campaign.RegistrationScope) ([]campaign.Participant, error) {
		return []campaign.Participant{{TeamID: "x"}, {TeamID: "y"}}, nil
	}
	m.SumPointsFunc = func(_ campaign.RegistrationScope, c campaign.Criterion) ([]campaign.TeamPoints, error) {
		return []campaign.TeamPoints{{TeamID: "y", Points: 2.5}, {TeamID: "ghost", Points: 99}}, nil
	}

	rows, err := leaderboard.NewAggregator(m).Compute(t.Context(), leaderboard.Scope{
		SeasonID: "S1", DivisionKey: "d", LeaderboardKey: "k", View: leaderboard.ViewScoped,
	})
	require.NoError(t, err)
	assert.Equal(t, []leaderboard.Row{
		{Rank: 1, TeamID: "y", Points: 2.5},
		{Rank: 2, TeamID: "x", Points: 0},
	}, rows, "points of non-participants are ignored")
	require.Len(t, m.SumPointsCalls, 1)
	assert.Equal(t, campaign.LeaderboardScope("k", true), m.SumPointsCalls[0])
}
