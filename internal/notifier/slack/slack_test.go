package slack

import (
	"encoding/json"
	"testing"

	"github.com/mauv0809/blast-campaigns/internal/bundle"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/leaderboard"
	"github.com/mauv0809/blast-campaigns/internal/selector"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func testBundle() *bundle.Bundle {
	return &bundle.Bundle{
		Context: selector.Context{EventID: "hpl", SeasonID: "S1", DivisionKey: "elite", RoundKey: "S1_elite_r2", LeaderboardKey: "S1_elite"},
		Selectors: bundle.Selectors{
			Divisions: []campaign.Division{{DivisionKey: "elite", Name: str("Elite")}},
			Rounds:    []campaign.Component{{ComponentID: "S1_elite_r2", Name: str("Round 2")}},
		},
		Table: []leaderboard.Row{
			{Rank: 1, TeamID: "teamA", TeamName: str("Alpha"), Points: 30},
			{Rank: 1, TeamID: "teamB", TeamName: str("Bravo"), Points: 30},
			{Rank: 3, TeamID: "teamC", Points: 12.5},
			{Rank: 4, TeamID: "teamD", TeamName: str("Delta"), Points: 0},
		},
	}
}

func TestFormatLeaderboard(t *testing.T) {
	n := NewNotifier()
	msg := n.formatLeaderboard(testBundle(), 3)

	require.Len(t, msg.Blocks.BlockSet, 4)
	assert.Equal(t, slackapi.ResponseTypeInChannel, msg.ResponseType)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🏆 Elite 🏆", header.Text.Text)

	section, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "1. 🥇 Alpha: 30 pts\n1. 🥇 Bravo: 30 pts\n3. 🥉 teamC: 12.5 pts", section.Text.Text)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Round: Round 2")
	assert.Contains(t, string(raw), "and 1 more")
}

func TestFormatLeaderboard_EmptyTable(t *testing.T) {
	b := testBundle()
	b.Table = nil
	b.Context.RoundKey = ""

	msg := NewNotifier().formatLeaderboard(b, 10)
	require.Len(t, msg.Blocks.BlockSet, 3)
	section, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "No teams registered yet.", section.Text.Text)
}

func TestFormatErrorResponse(t *testing.T) {
	resp, err := NewNotifier().FormatErrorResponse("Campaign data is unavailable")
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	assert.Equal(t, slackapi.ResponseTypeEphemeral, msg.ResponseType)
}
