package selector_test

import (
	"errors"
	"testing"

	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newHierarchyMock() *campaign.MockStore {
	m := campaign.NewMock()
	m.ListEventsFunc = func() ([]campaign.Event, error) {
		return []campaign.Event{{EventID: "bjl"}, {EventID: "hpl"}}, nil
	}
	m.ListSeasonsFunc = func(eventID string) ([]campaign.Season, error) {
		if eventID != "hpl" {
			return nil, nil
		}
		return []campaign.Season{
			{SeasonID: "S3", EventID: "hpl", Year: ptr(2026), Status: ptr("planned")},
			{SeasonID: "S2", EventID: "hpl", Year: ptr(2025), Status: ptr("Ongoing")},
			{SeasonID: "S1", EventID: "hpl", Year: ptr(2024), Status: ptr("closed")},
		}, nil
	}
	m.ListDivisionsFunc = func(seasonID string) ([]campaign.Division, error) {
		return []campaign.Division{
			{DivisionKey: "elite", SeasonID: seasonID, LeaderboardKey: seasonID + "_elite", SortOrder: ptr(1)},
			{DivisionKey: "rookie", SeasonID: seasonID, LeaderboardKey: seasonID + "_rookie", SortOrder: ptr(2)},
		}, nil
	}
	m.ListComponentsFunc = func(key string, _ bool) ([]campaign.Component, error) {
		if key != "S2_elite" {
			return nil, nil
		}
		return []campaign.Component{{ComponentID: "S2_elite_r1"}, {ComponentID: "S2_elite_r2"}}, nil
	}
	return m
}

func TestResolve_Defaults(t *testing.T) {
	r := selector.NewResolver(newHierarchyMock(), "hpl")

	sel, err := r.Resolve(t.Context(), selector.Request{})
	require.NoError(t, err)

	assert.Equal(t, selector.Context{
		EventID:        "hpl",
		SeasonID:       "S2",
		DivisionKey:    "elite",
		RoundKey:       "S2_elite_r2",
		LeaderboardKey: "S2_elite",
	}, sel.Context)
	assert.Equal(t, selector.LevelRound, sel.Depth)
	require.NotNil(t, sel.Division)
	assert.Equal(t, "S2_elite", sel.Division.LeaderboardKey)
	assert.Len(t, sel.Events, 2)
	assert.Len(t, sel.Seasons, 3)
	assert.Len(t, sel.Divisions, 2)
	assert.Len(t, sel.Rounds, 2)
}

func TestResolve_IsIdempotent(t *testing.T) {
	r := selector.NewResolver(newHierarchyMock(), "hpl")

	requests := []selector.Request{
		{},
		{SeasonID: "S1"},
		{DivisionKey: "rookie"},
		{EventID: "bjl"},
		{EventID: "nope", SeasonID: "nope", DivisionKey: "nope", RoundKey: "nope"},
		{RoundKey: "S2_elite_r1"},
	}
	for _, req := range requests {
		first, err := r.Resolve(t.Context(), req)
		require.NoError(t, err)
		second, err := r.Resolve(t.Context(), first.Context.Request())
		require.NoError(t, err)
		assert.Equal(t, first.Context, second.Context, "request %+v", req)
	}
}

func TestResolve_UnknownIdFallsBackSilently(t *testing.T) {
	r := selector.NewResolver(newHierarchyMock(), "hpl")

	sel, err := r.Resolve(t.Context(), selector.Request{SeasonID: "S9", RoundKey: "S2_elite_r1"})
	require.NoError(t, err)
	assert.Equal(t, "S2", sel.Context.SeasonID)
	assert.Equal(t, "S2_elite_r1", sel.Context.RoundKey, "a valid id below a fallback is still honoured")
}

func TestResolve_EmptyLevelStopsTheWalk(t *testing.T) {
	m := newHierarchyMock()
	r := selector.NewResolver(m, "hpl")

	sel, err := r.Resolve(t.Context(), selector.Request{EventID: "bjl"})
	require.NoError(t, err)

	assert.Equal(t, selector.Context{EventID: "bjl"}, sel.Context)
	assert.Equal(t, selector.LevelEvent, sel.Depth)
	assert.NotNil(t, sel.Seasons)
	assert.Empty(t, sel.Seasons)
	assert.NotNil(t, sel.Divisions)
	assert.NotNil(t, sel.Rounds)
	assert.Nil(t, sel.Division)
	assert.Empty(t, m.ListDivisionsCalls)
	assert.Empty(t, m.ListComponentsCalls)
}

func TestResolve_NoEvents(t *testing.T) {
	m := campaign.NewMock()
	sel, err := selector.NewResolver(m, "hpl").Resolve(t.Context(), selector.Request{EventID: "hpl"})
	require.NoError(t, err)
	assert.Equal(t, selector.Context{}, sel.Context)
	assert.Equal(t, selector.LevelNone, sel.Depth)
	assert.Empty(t, m.ListSeasonsCalls)
}

func TestResolve_NoRoundsLeavesRoundEmpty(t *testing.T) {
	r := selector.NewResolver(newHierarchyMock(), "hpl")

	sel, err := r.Resolve(t.Context(), selector.Request{DivisionKey: "rookie"})
	require.NoError(t, err)
	assert.Equal(t, "S2_rookie", sel.Context.LeaderboardKey)
	assert.Empty(t, sel.Context.RoundKey)
	assert.Equal(t, selector.LevelDivision, sel.Depth)
}

func TestResolve_StorageErrorNamesLevel(t *testing.T) {
	m := newHierarchyMock()
	boom := errors.New("disk on fire")
	m.ListDivisionsFunc = func(string) ([]campaign.Division, error) { return nil, boom }

	_, err := selector.NewResolver(m, "hpl").Resolve(t.Context(), selector.Request{})
	require.Error(t, err)

	var re *selector.ResolveError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, selector.LevelDivision, re.Level)
	assert.ErrorIs(t, err, boom)
}

func TestDefaultEvent(t *testing.T) {
	events := []campaign.Event{{EventID: "zeta"}, {EventID: "alpha"}, {EventID: "hpl"}}
	assert.Equal(t, "hpl", selector.DefaultEvent(events, "hpl"))
	assert.Equal(t, "alpha", selector.DefaultEvent(events, "missing"))
	assert.Equal(t, "alpha", selector.DefaultEvent(events, ""))
	assert.Empty(t, selector.DefaultEvent(nil, "hpl"))
}

func TestDefaultSeason(t *testing.T) {
	tests := []struct {
		name    string
		seasons []campaign.Season
		want    string
	}{
		{
			name: "ongoing wins over newer years",
			seasons: []campaign.Season{
				{SeasonID: "S3", Year: ptr(2026)},
				{SeasonID: "S1", Year: ptr(2024), Status: ptr(" ONGOING ")},
			},
			want: "S1",
		},
		{
			name: "greatest year",
			seasons: []campaign.Season{
				{SeasonID: "S1", Year: ptr(2024)},
				{SeasonID: "S2", Year: ptr(2025)},
			},
			want: "S2",
		},
		{
			name: "year ties broken by larger id",
			seasons: []campaign.Season{
				{SeasonID: "2025a", Year: ptr(2025)},
				{SeasonID: "2025b", Year: ptr(2025)},
			},
			want: "2025b",
		},
		{
			name: "no year concept keeps returned order",
			seasons: []campaign.Season{
				{SeasonID: "b"},
				{SeasonID: "c"},
				{SeasonID: "a"},
			},
			want: "b",
		},
		{
			name: "empty",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selector.DefaultSeason(tt.seasons))
		})
	}
}

func TestDefaultDivision(t *testing.T) {
	divisions := []campaign.Division{
		{DivisionKey: "rookie", SortOrder: ptr(2)},
		{DivisionKey: "open"},
		{DivisionKey: "elite", SortOrder: ptr(1)},
		{DivisionKey: "amateur", SortOrder: ptr(1)},
	}
	assert.Equal(t, "amateur", selector.DefaultDivision(divisions))
	assert.Equal(t, "open", selector.DefaultDivision(divisions[1:2]))
	assert.Empty(t, selector.DefaultDivision(nil))
}

func TestDefaultRound(t *testing.T) {
	rounds := []campaign.Component{{ComponentID: "r1"}, {ComponentID: "r2"}, {ComponentID: "r3"}}
	assert.Equal(t, "r3", selector.DefaultRound(rounds))
	assert.Empty(t, selector.DefaultRound(nil))
}
