package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
)

// Ensure SearchLogStore implements the interface.
var _ driven.SearchLogStore = (*SearchLogStore)(nil)

// SearchLogStore is an in-memory implementation of driven.SearchLogStore.
type SearchLogStore struct {
	mu   sync.RWMutex
	logs []domain.SearchLog
}

// NewSearchLogStore creates a new in-memory search log store.
func NewSearchLogStore() *SearchLogStore {
	return &SearchLogStore{}
}

// Append records a search log entry.
func (s *SearchLogStore) Append(_ context.Context, entry domain.SearchLog) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *SearchLogStore) Recent(_ context.Context, limit int) ([]domain.SearchLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.logs)
	if limit > n {
		limit = n
	}
	out := make([]domain.SearchLog, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.logs[i])
	}
	return out, nil
}
