package player

import "context"

// Store reads the player page.
type Store interface {
	GetBundle(ctx context.Context, lookup Lookup) (*Bundle, error)
}
