package driven

import (
	"context"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// SectionStore holds statute section metadata, per corpus.
//
// Ordinals must be unique per corpus and stable across calls: the
// vector index is positionally aligned to the ordinal ordering, so any
// re-ordering between an index build and a later read silently breaks
// that alignment.
type SectionStore interface {
	// ListSections returns every section of a corpus, sorted by
	// ordinal ascending. A corpus with no sections returns an empty
	// slice, not an error.
	ListSections(ctx context.Context, corpus string) ([]domain.Section, error)

	// ReplaceSections atomically replaces all sections of a corpus.
	// Ordinals are assigned by the caller; imports are full replaces,
	// never incremental.
	ReplaceSections(ctx context.Context, corpus string, sections []domain.Section) error

	// Corpora returns the identifiers of every corpus with at least
	// one imported section.
	Corpora(ctx context.Context) ([]string, error)

	// Close releases resources.
	Close() error
}

// SearchLogStore records executed queries for auditing.
type SearchLogStore interface {
	// Append stores one search log entry.
	Append(ctx context.Context, entry domain.SearchLog) error

	// Recent returns the most recent entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SearchLog, error)
}
