package slack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauv0809/blast-campaigns/internal/bundle"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/notifier"
	"github.com/slack-go/slack"
)

var _ notifier.Notifier = &Notifier{}

// Notifier renders campaign data as Slack Block Kit messages.
type Notifier struct{}

// NewNotifier creates a new Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(b *bundle.Bundle, limit int) (any, error) {
	return s.formatLeaderboard(b, limit), nil
}

// FormatErrorResponse formats a short, user-facing failure message.
func (s *Notifier) FormatErrorResponse(text string) (any, error) {
	msg := slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "⚠️ "+text, true, false), nil, nil),
	)
	msg.ResponseType = slack.ResponseTypeEphemeral
	return msg, nil
}

// formatLeaderboard creates the Slack message for a division table. At most
// limit rows are listed when limit is positive.
func (s *Notifier) formatLeaderboard(b *bundle.Bundle, limit int) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 "+leaderboardTitle(b)+" 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	scope := "Total"
	if b.Context.RoundKey != "" {
		scope = "Round: " + componentName(b.Selectors.Rounds, b.Context.RoundKey)
	}
	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("Season *%s* | %s", b.Context.SeasonID, scope), false, false)))

	if len(b.Table) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No teams registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	rows := b.Table
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		name := row.TeamID
		if row.TeamName != nil && *row.TeamName != "" {
			name = *row.TeamName
		}
		prefix := strconv.Itoa(row.Rank) + "."
		if m := medal(row.Rank); m != "" {
			prefix += " " + m
		}
		lines = append(lines, fmt.Sprintf("%s %s: %s pts", prefix, name, formatPoints(row.Points)))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	if hidden := len(b.Table) - len(rows); hidden > 0 {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("…and %d more", hidden), true, false)))
	}

	msg := slack.NewBlockMessage(blocks...)
	msg.ResponseType = slack.ResponseTypeInChannel
	return msg
}

func leaderboardTitle(b *bundle.Bundle) string {
	for _, d := range b.Selectors.Divisions {
		if d.DivisionKey == b.Context.DivisionKey && d.Name != nil && *d.Name != "" {
			return *d.Name
		}
	}
	if b.Context.DivisionKey != "" {
		return b.Context.DivisionKey
	}
	return "Leaderboard"
}

func componentName(rounds []campaign.Component, id string) string {
	for _, c := range rounds {
		if c.ComponentID == id && c.Name != nil && *c.Name != "" {
			return *c.Name
		}
	}
	return id
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
