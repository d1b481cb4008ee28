package notifier

import "github.com/mauv0809/blast-campaigns/internal/bundle"

// Notifier formats campaign data for a chat provider.
// This decouples the rest of the application from the specific provider (e.g., Slack).
type Notifier interface {
	// For formatting responses for slash commands
	FormatLeaderboardResponse(b *bundle.Bundle, limit int) (any, error)
	FormatErrorResponse(text string) (any, error)
}
