package notifier

import (
	"sync"

	"github.com/mauv0809/blast-campaigns/internal/bundle"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for format functions
	FormatLeaderboardResponseFunc func(b *bundle.Bundle, limit int) (any, error)
	FormatErrorResponseFunc       func(text string) (any, error)

	// Call records
	FormatLeaderboardResponseCalls []*bundle.Bundle
	FormatErrorResponseCalls       []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) FormatLeaderboardResponse(b *bundle.Bundle, limit int) (any, error) {
	m.mu.Lock()
	m.FormatLeaderboardResponseCalls = append(m.FormatLeaderboardResponseCalls, b)
	m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		return m.FormatLeaderboardResponseFunc(b, limit)
	}
	return nil, nil
}

func (m *Mock) FormatErrorResponse(text string) (any, error) {
	m.mu.Lock()
	m.FormatErrorResponseCalls = append(m.FormatErrorResponseCalls, text)
	m.mu.Unlock()
	if m.FormatErrorResponseFunc != nil {
		return m.FormatErrorResponseFunc(text)
	}
	return nil, nil
}
