package driven

import "context"

// VectorStore persists the offline-built vector index, one ordered
// array of vectors per corpus.
//
// The array is positionally aligned to the section store's ordinal
// ordering for that corpus: the vector at position i is the embedding
// of the section at ordinal position i. The store itself does not
// verify this; alignment is guaranteed by the index builder writing
// both in the same order and checked by length at load time.
type VectorStore interface {
	// Load reads the vector array for a corpus. An unbuilt corpus
	// returns domain.ErrNotFound; content that exists but cannot be
	// parsed is a distinct, fatal error.
	Load(ctx context.Context, corpus string) ([][]float32, error)

	// Save atomically replaces the vector array for a corpus.
	// A failed save must not leave a partial array behind.
	Save(ctx context.Context, corpus string, vectors [][]float32) error
}
