package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
)

// Ensure SectionStore implements the interface.
var _ driven.SectionStore = (*SectionStore)(nil)

// SectionStore is an in-memory implementation of driven.SectionStore.
type SectionStore struct {
	mu       sync.RWMutex
	sections map[string][]domain.Section
}

// NewSectionStore creates a new in-memory section store.
func NewSectionStore() *SectionStore {
	return &SectionStore{
		sections: make(map[string][]domain.Section),
	}
}

// ListSections returns the sections of a corpus sorted by ordinal.
func (s *SectionStore) ListSections(_ context.Context, corpus string) ([]domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.sections[corpus]
	if !ok {
		return nil, nil
	}

	out := make([]domain.Section, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out, nil
}

// ReplaceSections replaces the full section set of a corpus.
func (s *SectionStore) ReplaceSections(_ context.Context, corpus string, sections []domain.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.Section, len(sections))
	copy(stored, sections)
	s.sections[corpus] = stored
	return nil
}

// Corpora returns the identifiers of every corpus with sections, sorted.
func (s *SectionStore) Corpora(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	corpora := make([]string, 0, len(s.sections))
	for id, stored := range s.sections {
		if len(stored) == 0 {
			continue
		}
		corpora = append(corpora, id)
	}
	sort.Strings(corpora)
	return corpora, nil
}

// Close is a no-op for the in-memory store.
func (s *SectionStore) Close() error {
	return nil
}
