package team

import "context"

// Store reads everything known about a single team.
type Store interface {
	GetBundle(ctx context.Context, teamID string) (*Bundle, error)
}
