package campaign

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use. Methods without a Func return empty results.
type MockStore struct {
	mu sync.Mutex

	ListEventsFunc            func() ([]Event, error)
	ListSeasonsFunc           func(eventID string) ([]Season, error)
	ListDivisionsFunc         func(seasonID string) ([]Division, error)
	ListComponentsFunc        func(leaderboardKey string, includeSubKeys bool) ([]Component, error)
	ListParticipantsFunc      func(scope RegistrationScope) ([]Participant, error)
	SumPointsFunc             func(scope RegistrationScope, criterion Criterion) ([]TeamPoints, error)
	CountRegisteredTeamsFunc  func(seasonID string) (int, error)
	CountRosterPlayersFunc    func(seasonID string) (int, error)
	CountScoredComponentsFunc func(leaderboardKey string) (int, error)

	// Call records
	ListSeasonsCalls    []string
	ListDivisionsCalls  []string
	ListComponentsCalls []string
	SumPointsCalls      []Criterion
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListEvents(ctx context.Context) ([]Event, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) ListSeasons(ctx context.Context, eventID string) ([]Season, error) {
	m.mu.Lock()
	m.ListSeasonsCalls = append(m.ListSeasonsCalls, eventID)
	m.mu.Unlock()
	if m.ListSeasonsFunc != nil {
		return m.ListSeasonsFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) ListDivisions(ctx context.Context, seasonID string) ([]Division, error) {
	m.mu.Lock()
	m.ListDivisionsCalls = append(m.ListDivisionsCalls, seasonID)
	m.mu.Unlock()
	if m.ListDivisionsFunc != nil {
		return m.ListDivisionsFunc(seasonID)
	}
	return nil, nil
}

func (m *MockStore) ListComponents(ctx context.Context, leaderboardKey string, includeSubKeys bool) ([]Component, error) {
	m.mu.Lock()
	m.ListComponentsCalls = append(m.ListComponentsCalls, leaderboardKey)
	m.mu.Unlock()
	if m.ListComponentsFunc != nil {
		return m.ListComponentsFunc(leaderboardKey, includeSubKeys)
	}
	return nil, nil
}

func (m *MockStore) ListParticipants(ctx context.Context, scope RegistrationScope) ([]Participant, error) {
	if m.ListParticipantsFunc != nil {
		return m.ListParticipantsFunc(scope)
	}
	return nil, nil
}

func (m *MockStore) SumPoints(ctx context.Context, scope RegistrationScope, criterion Criterion) ([]TeamPoints, error) {
	m.mu.Lock()
	m.SumPointsCalls = append(m.SumPointsCalls, criterion)
	m.mu.Unlock()
	if m.SumPointsFunc != nil {
		return m.SumPointsFunc(scope, criterion)
	}
	return nil, nil
}

func (m *MockStore) CountRegisteredTeams(ctx context.Context, seasonID string) (int, error) {
	if m.CountRegisteredTeamsFunc != nil {
		return m.CountRegisteredTeamsFunc(seasonID)
	}
	return 0, nil
}

func (m *MockStore) CountRosterPlayers(ctx context.Context, seasonID string) (int, error) {
	if m.CountRosterPlayersFunc != nil {
		return m.CountRosterPlayersFunc(seasonID)
	}
	return 0, nil
}

func (m *MockStore) CountScoredComponents(ctx context.Context, leaderboardKey string) (int, error) {
	if m.CountScoredComponentsFunc != nil {
		return m.CountScoredComponentsFunc(leaderboardKey)
	}
	return 0, nil
}
