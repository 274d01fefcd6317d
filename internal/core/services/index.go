package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
	"github.com/sanhita-labs/sanhita-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// DefaultEmbedRate is the sustained embedding-call rate during index
// builds. Local providers tolerate far more; hosted APIs do not.
const DefaultEmbedRate = 10.0

// IndexService builds per-corpus vector indexes offline.
type IndexService struct {
	sections driven.SectionStore
	vectors  driven.VectorStore
	embedder driven.EmbeddingService
	limiter  *rate.Limiter
	corpora  []string
}

// IndexOption configures an IndexService.
type IndexOption func(*IndexService)

// WithEmbedRate overrides the embedding-call rate limit
// (calls per second). Zero or negative disables limiting.
func WithEmbedRate(callsPerSecond float64) IndexOption {
	return func(s *IndexService) {
		if callsPerSecond <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(callsPerSecond), 1)
	}
}

// NewIndexService creates a new index builder over the given stores.
// The corpora slice is the fixed enumeration used by BuildAll.
func NewIndexService(
	sections driven.SectionStore,
	vectors driven.VectorStore,
	embedder driven.EmbeddingService,
	corpora []string,
	opts ...IndexOption,
) *IndexService {
	s := &IndexService{
		sections: sections,
		vectors:  vectors,
		embedder: embedder,
		limiter:  rate.NewLimiter(rate.Limit(DefaultEmbedRate), 1),
		corpora:  corpora,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// canonicalText forms the text that gets embedded for a section. The
// field order is fixed; changing it changes every vector, so a change
// here requires rebuilding all corpora.
func canonicalText(sec domain.Section) string {
	return fmt.Sprintf("Section %s %s %s", sec.Number, sec.Title, sec.Description)
}

// Build embeds every section of a corpus, in ordinal order, and
// replaces the corpus's vector index. Any embedding failure aborts the
// whole build before anything is written: a partial array would pair
// vectors with the wrong sections forever after.
func (s *IndexService) Build(ctx context.Context, corpus string) (int, error) {
	logger.Section("Index Build")
	logger.Info("Building corpus %q with model %s", corpus, s.embedder.ModelName())

	sections, err := s.sections.ListSections(ctx, corpus)
	if err != nil {
		return 0, fmt.Errorf("listing sections for corpus %q: %w", corpus, err)
	}
	if len(sections) == 0 {
		return 0, fmt.Errorf("corpus %q: %w", corpus, domain.ErrCorpusEmpty)
	}

	logger.Debug("Embedding %d sections", len(sections))

	dims := s.embedder.Dimensions()
	vectors := make([][]float32, 0, len(sections))
	for i, sec := range sections {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return 0, fmt.Errorf("build cancelled: %w", err)
			}
		}

		vec, err := s.embedder.Embed(ctx, canonicalText(sec))
		if err != nil {
			return 0, fmt.Errorf("embedding section %s of corpus %q: %w", sec.Number, corpus, err)
		}
		if len(vec) != dims {
			return 0, fmt.Errorf("embedding section %s of corpus %q: got %d dimensions, model reports %d",
				sec.Number, corpus, len(vec), dims)
		}
		vectors = append(vectors, vec)

		if (i+1)%50 == 0 {
			logger.Debug("Embedded %d/%d", i+1, len(sections))
		}
	}

	if err := s.vectors.Save(ctx, corpus, vectors); err != nil {
		return 0, fmt.Errorf("saving index for corpus %q: %w", corpus, err)
	}

	logger.Info("Built corpus %q: %d vectors, %d dimensions", corpus, len(vectors), dims)
	return len(vectors), nil
}

// BuildAll builds every configured corpus. Corpora without imported
// sections are skipped with a warning; any other failure stops the run.
func (s *IndexService) BuildAll(ctx context.Context) (int, error) {
	total := 0
	for _, corpus := range s.corpora {
		n, err := s.Build(ctx, corpus)
		if err != nil {
			if errors.Is(err, domain.ErrCorpusEmpty) {
				logger.Warn("Skipping corpus %q: no sections imported", corpus)
				continue
			}
			return total, err
		}
		total += n
	}
	return total, nil
}
