package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable. No search or index build can run
	// without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrCorpusEmpty indicates an index build was requested for a
	// corpus with no imported sections.
	ErrCorpusEmpty = errors.New("corpus has no sections")

	// ErrCorpusMisaligned indicates the section metadata and the
	// vector index for a corpus have different lengths. The index
	// must be rebuilt; serving results would pair scores with the
	// wrong section text.
	ErrCorpusMisaligned = errors.New("corpus metadata and vector index are misaligned")
)

// DimensionMismatchError indicates a query vector's dimension does not
// match the dimension a corpus was indexed with. This is a fatal
// configuration error (wrong embedding model or stale index), never a
// zero-score.
type DimensionMismatchError struct {
	// Corpus is the corpus whose index disagreed with the query.
	Corpus string

	// Got is the query vector's dimension.
	Got int

	// Want is the corpus index's dimension.
	Want int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("corpus %q: query vector has dimension %d, index has dimension %d",
		e.Corpus, e.Got, e.Want)
}
