// Package leaderboard ranks the teams of a division by their points.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
)

func NewAggregator(store campaign.Store) *Aggregator {
	return &Aggregator{store: store}
}

// CriterionFor returns the points filter for a scope. A round selects that
// component only; without one the whole leaderboard key counts.
func CriterionFor(scope Scope) campaign.Criterion {
	if scope.RoundKey != "" {
		return campaign.ComponentExact(scope.RoundKey)
	}
	return campaign.LeaderboardScope(scope.LeaderboardKey, scope.View == ViewScoped)
}

// Compute returns the ranked table for scope. Every participating team is
// listed, with zero points when nothing matched.
func (a *Aggregator) Compute(ctx context.Context, scope Scope) ([]Row, error) {
	if scope.SeasonID == "" || scope.DivisionKey == "" {
		return []Row{}, nil
	}
	reg := campaign.RegistrationScope{SeasonID: scope.SeasonID, DivisionKey: scope.DivisionKey}

	participants, err := a.store.ListParticipants(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("leaderboard.Compute: participants: %w", err)
	}
	if len(participants) == 0 {
		return []Row{}, nil
	}

	criterion := CriterionFor(scope)
	totals, err := a.store.SumPoints(ctx, reg, criterion)
	if err != nil {
		return nil, fmt.Errorf("leaderboard.Compute: points: %w", err)
	}
	points := make(map[string]float64, len(totals))
	for _, t := range totals {
		points[t.TeamID] += t.Points
	}

	entries := make([]Entry, 0, len(participants))
	for _, p := range participants {
		entries = append(entries, Entry{TeamID: p.TeamID, TeamName: p.TeamName, Points: points[p.TeamID]})
	}
	log.Debug("Computed leaderboard", "season", scope.SeasonID, "division", scope.DivisionKey,
		"criterion", criterion.Kind, "teams", len(entries), "scored", len(totals))
	return Rank(entries), nil
}
