package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
	"github.com/sanhita-labs/sanhita-cli/internal/logger"
)

// IndexedCorpus pairs a corpus's section metadata with its vector
// index. The two slices are always the same length and aligned by
// position: Vectors[i] is the embedding of Sections[i]. Instances are
// only constructed by CorpusCache, which verifies the alignment on
// load; the pair is never handed around as two loose slices.
type IndexedCorpus struct {
	Sections []domain.Section
	Vectors  [][]float32
}

// Len returns the number of sections in the corpus.
func (c *IndexedCorpus) Len() int {
	return len(c.Sections)
}

// Dimensions returns the vector dimension of the corpus index,
// or 0 for an empty corpus.
func (c *IndexedCorpus) Dimensions() int {
	if len(c.Vectors) == 0 {
		return 0
	}
	return len(c.Vectors[0])
}

// CorpusCache lazily loads and retains the aligned (sections, vectors)
// pair for each corpus. Entries live for the process lifetime and are
// never refreshed; a re-imported corpus or rebuilt index takes effect
// on restart. The corpora are small fixed reference texts, so nothing
// is ever evicted.
type CorpusCache struct {
	sections driven.SectionStore
	vectors  driven.VectorStore

	group  singleflight.Group
	mu     sync.RWMutex
	loaded map[string]*IndexedCorpus
}

// NewCorpusCache creates a corpus cache over the given stores.
func NewCorpusCache(sections driven.SectionStore, vectors driven.VectorStore) *CorpusCache {
	return &CorpusCache{
		sections: sections,
		vectors:  vectors,
		loaded:   make(map[string]*IndexedCorpus),
	}
}

// Get returns the indexed corpus for the given identifier, loading it
// on first use. Concurrent first requests for the same corpus share a
// single load. An unbuilt or unknown corpus returns domain.ErrNotFound;
// a section/vector length mismatch or a ragged vector index returns
// domain.ErrCorpusMisaligned rather than serving wrong results.
func (c *CorpusCache) Get(ctx context.Context, corpus string) (*IndexedCorpus, error) {
	c.mu.RLock()
	cached, ok := c.loaded[corpus]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(corpus, func() (any, error) {
		// Re-check under the flight: a previous flight may have
		// populated the entry between our read and Do.
		c.mu.RLock()
		cached, ok := c.loaded[corpus]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		return c.load(ctx, corpus)
	})
	if err != nil {
		return nil, err
	}
	return v.(*IndexedCorpus), nil
}

func (c *CorpusCache) load(ctx context.Context, corpus string) (*IndexedCorpus, error) {
	logger.Debug("Loading corpus %q", corpus)

	vectors, err := c.vectors.Load(ctx, corpus)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Corpus %q has no vector index", corpus)
			return nil, fmt.Errorf("corpus %q: %w", corpus, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("loading vectors for corpus %q: %w", corpus, err)
	}

	sections, err := c.sections.ListSections(ctx, corpus)
	if err != nil {
		return nil, fmt.Errorf("loading sections for corpus %q: %w", corpus, err)
	}

	if len(sections) != len(vectors) {
		return nil, fmt.Errorf("corpus %q: %d sections but %d vectors: %w",
			corpus, len(sections), len(vectors), domain.ErrCorpusMisaligned)
	}

	// A ragged index would hand Cosine mismatched rows and surface as
	// silent zero scores, so reject it here instead.
	if len(vectors) > 0 {
		want := len(vectors[0])
		for i, vec := range vectors {
			if len(vec) != want {
				return nil, fmt.Errorf("corpus %q: vector %d has dimension %d, index has dimension %d: %w",
					corpus, i, len(vec), want, domain.ErrCorpusMisaligned)
			}
		}
	}

	ic := &IndexedCorpus{Sections: sections, Vectors: vectors}

	c.mu.Lock()
	c.loaded[corpus] = ic
	c.mu.Unlock()

	logger.Info("Loaded corpus %q: %d sections, %d dimensions", corpus, ic.Len(), ic.Dimensions())
	return ic, nil
}
