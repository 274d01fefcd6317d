package services

import (
	"context"
	"sync"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// --- Mock implementations of driven ports ---

// mockSectionStore implements driven.SectionStore with an access
// counter so tests can observe how often the store is actually read.
type mockSectionStore struct {
	mu       sync.Mutex
	sections map[string][]domain.Section
	listErr  error
	calls    int
}

func newMockSectionStore() *mockSectionStore {
	return &mockSectionStore{sections: make(map[string][]domain.Section)}
}

func (m *mockSectionStore) ListSections(_ context.Context, corpus string) ([]domain.Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sections[corpus], nil
}

func (m *mockSectionStore) ReplaceSections(_ context.Context, corpus string, sections []domain.Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections[corpus] = sections
	return nil
}

func (m *mockSectionStore) Corpora(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.sections))
	for id := range m.sections {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *mockSectionStore) Close() error { return nil }

func (m *mockSectionStore) listCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockVectorStore implements driven.VectorStore in memory.
type mockVectorStore struct {
	mu      sync.Mutex
	vectors map[string][][]float32
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func newMockVectorStore() *mockVectorStore {
	return &mockVectorStore{vectors: make(map[string][][]float32)}
}

func (m *mockVectorStore) Load(_ context.Context, corpus string) ([][]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	vectors, ok := m.vectors[corpus]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return vectors, nil
}

func (m *mockVectorStore) Save(_ context.Context, corpus string, vectors [][]float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.vectors[corpus] = vectors
	return nil
}

func (m *mockVectorStore) loadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

func (m *mockVectorStore) saved(corpus string) ([][]float32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vectors, ok := m.vectors[corpus]
	return vectors, ok
}

// mockEmbedder implements driven.EmbeddingService. Embeddings are
// looked up by text; unknown texts fall back to the default vector.
type mockEmbedder struct {
	byText   map[string][]float32
	fallback []float32
	embedErr error
	dims     int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if vec, ok := m.byText[text]; ok {
		return vec, nil
	}
	return m.fallback, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int              { return m.dims }
func (m *mockEmbedder) ModelName() string            { return "mock-embedder" }
func (m *mockEmbedder) Ping(_ context.Context) error { return nil }
func (m *mockEmbedder) Close() error                 { return nil }

// mockSearchLogStore implements driven.SearchLogStore.
type mockSearchLogStore struct {
	mu        sync.Mutex
	entries   []domain.SearchLog
	appendErr error
}

func (m *mockSearchLogStore) Append(_ context.Context, entry domain.SearchLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockSearchLogStore) Recent(_ context.Context, limit int) ([]domain.SearchLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]domain.SearchLog, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *mockSearchLogStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// seedCorpus populates both stores with an aligned corpus.
func seedCorpus(
	sections *mockSectionStore, vectors *mockVectorStore,
	corpus string, secs []domain.Section, vecs [][]float32,
) {
	sections.sections[corpus] = secs
	vectors.vectors[corpus] = vecs
}

// threeSectionCorpus builds the canonical test corpus: three sections
// with embeddings [1,0], [0,1], [0.7,0.7] at ordinals 0, 1, 2.
func threeSectionCorpus(corpus string) ([]domain.Section, [][]float32) {
	secs := []domain.Section{
		{Corpus: corpus, Number: "1", Title: "First", Description: "first section", Ordinal: 0},
		{Corpus: corpus, Number: "2", Title: "Second", Description: "second section", Ordinal: 1},
		{Corpus: corpus, Number: "2A", Title: "Third", Description: "third section", Ordinal: 2},
	}
	vecs := [][]float32{{1, 0}, {0, 1}, {0.7, 0.7}}
	return secs, vecs
}
