package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
	"github.com/sanhita-labs/sanhita-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// searchLogTimeout bounds the fire-and-forget audit write so an
// unhealthy log store cannot pile up goroutines.
const searchLogTimeout = 5 * time.Second

// SearchService answers free-text statute queries using the corpus
// cache and the embedding provider.
type SearchService struct {
	embedder driven.EmbeddingService
	cache    *CorpusCache
	logs     driven.SearchLogStore
	corpora  []string
}

// NewSearchService creates a new search service. The corpora slice is
// the fixed enumeration of known corpus identifiers used for
// all-corpora queries. The log store is optional (can be nil).
func NewSearchService(
	embedder driven.EmbeddingService,
	cache *CorpusCache,
	corpora []string,
	logs driven.SearchLogStore,
) *SearchService {
	return &SearchService{
		embedder: embedder,
		cache:    cache,
		logs:     logs,
		corpora:  corpora,
	}
}

// Search embeds the query and ranks it against the scoped corpora.
func (s *SearchService) Search(
	ctx context.Context, query string, scope domain.Scope, opts domain.SearchOptions,
) ([]domain.Match, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q, scope: %s", query, scope)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.Match{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	logger.Debug("Limit: %d", limit)

	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logger.Warn("Query embedding failed: %v", err)
		return nil, fmt.Errorf("generate query embedding: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(queryVec))

	var matches []domain.Match
	if scope.All {
		matches, err = s.searchAll(ctx, queryVec, limit)
	} else {
		matches, err = s.searchCorpus(ctx, scope.Corpus, queryVec, limit)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Final results: %d", len(matches))
	s.logQuery(query, scope)

	return matches, nil
}

// searchCorpus ranks one corpus. An unknown or unbuilt corpus behaves
// like a corpus with zero matches.
func (s *SearchService) searchCorpus(
	ctx context.Context, corpus string, queryVec []float32, k int,
) ([]domain.Match, error) {
	ic, err := s.cache.Get(ctx, corpus)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Corpus %q not available, returning no results", corpus)
			return []domain.Match{}, nil
		}
		return nil, err
	}

	matches, err := rankCorpus(ic, queryVec, k)
	if err != nil {
		return nil, err
	}

	logger.Debug("Corpus %q: %d matches", corpus, len(matches))
	return matches, nil
}

// searchAll fans out over every configured corpus concurrently and
// merges the per-corpus rankings into one global top-k. Each corpus
// contributes its own top-k before the merge; since at most k winners
// can come from any single corpus, the merged cut is exactly the
// global top-k.
func (s *SearchService) searchAll(
	ctx context.Context, queryVec []float32, k int,
) ([]domain.Match, error) {
	logger.Debug("Fan-out search over %d corpora", len(s.corpora))

	perCorpus := make([][]domain.Match, len(s.corpora))

	g, gctx := errgroup.WithContext(ctx)
	for i, corpus := range s.corpora {
		g.Go(func() error {
			matches, err := s.searchCorpus(gctx, corpus, queryVec, k)
			if err != nil {
				return err
			}
			perCorpus[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Match
	for _, matches := range perCorpus {
		all = append(all, matches...)
	}
	if all == nil {
		all = []domain.Match{}
	}

	return mergeMatches(all, k), nil
}

// logQuery records the completed query without blocking the response.
// Audit failures are reported but never surface to the caller.
func (s *SearchService) logQuery(query string, scope domain.Scope) {
	if s.logs == nil {
		return
	}

	entry := domain.SearchLog{
		ID:        uuid.NewString(),
		Query:     query,
		Corpus:    scope.String(),
		Timestamp: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), searchLogTimeout)
		defer cancel()

		if err := s.logs.Append(ctx, entry); err != nil {
			logger.Warn("Failed to log search: %v", err)
		}
	}()
}
