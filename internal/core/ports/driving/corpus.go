package driving

import (
	"context"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// CorpusInfo describes one corpus's import and index state.
type CorpusInfo struct {
	// ID is the corpus identifier.
	ID string

	// Sections is the number of imported sections.
	Sections int

	// Indexed reports whether a vector index has been built.
	Indexed bool
}

// CorpusService manages corpus metadata: imports and listing.
type CorpusService interface {
	// Import replaces a corpus's sections from raw source records,
	// assigning ordinals in input order. Returns the number imported.
	Import(ctx context.Context, corpus string, records []domain.Section) (int, error)

	// List reports every configured corpus with its current state.
	List(ctx context.Context) ([]CorpusInfo, error)

	// History returns the most recent search log entries, newest first.
	History(ctx context.Context, limit int) ([]domain.SearchLog, error)
}
