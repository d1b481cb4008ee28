package campaign

import "context"

// Store is the read-only view of the campaign hierarchy and its scores.
type Store interface {
	ListEvents(ctx context.Context) ([]Event, error)
	ListSeasons(ctx context.Context, eventID string) ([]Season, error)
	ListDivisions(ctx context.Context, seasonID string) ([]Division, error)
	ListComponents(ctx context.Context, leaderboardKey string, includeSubKeys bool) ([]Component, error)
	ListParticipants(ctx context.Context, scope RegistrationScope) ([]Participant, error)
	SumPoints(ctx context.Context, scope RegistrationScope, criterion Criterion) ([]TeamPoints, error)
	CountRegisteredTeams(ctx context.Context, seasonID string) (int, error)
	CountRosterPlayers(ctx context.Context, seasonID string) (int, error)
	CountScoredComponents(ctx context.Context, leaderboardKey string) (int, error)
}
