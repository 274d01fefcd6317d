package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
	"github.com/sanhita-labs/sanhita-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService manages corpus imports and reporting.
type CorpusService struct {
	sections driven.SectionStore
	vectors  driven.VectorStore
	logs     driven.SearchLogStore
	corpora  []string
}

// NewCorpusService creates a new corpus management service.
func NewCorpusService(
	sections driven.SectionStore,
	vectors driven.VectorStore,
	logs driven.SearchLogStore,
	corpora []string,
) *CorpusService {
	return &CorpusService{
		sections: sections,
		vectors:  vectors,
		logs:     logs,
		corpora:  corpora,
	}
}

// Import replaces a corpus's sections. Ordinals are assigned from the
// input order, starting at zero; the existing vector index (if any)
// becomes stale and must be rebuilt.
func (s *CorpusService) Import(
	ctx context.Context, corpus string, records []domain.Section,
) (int, error) {
	corpus = strings.TrimSpace(corpus)
	if corpus == "" {
		return 0, fmt.Errorf("corpus identifier: %w", domain.ErrInvalidInput)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("no records to import: %w", domain.ErrInvalidInput)
	}

	sections := make([]domain.Section, len(records))
	for i, rec := range records {
		if rec.Number == "" {
			rec.Number = fmt.Sprintf("%d", i+1)
		}
		if rec.Title == "" {
			rec.Title = "Untitled"
		}
		sections[i] = domain.Section{
			Corpus:      corpus,
			Number:      rec.Number,
			Title:       rec.Title,
			Description: rec.Description,
			Ordinal:     i,
		}
	}

	if err := s.sections.ReplaceSections(ctx, corpus, sections); err != nil {
		return 0, fmt.Errorf("importing corpus %q: %w", corpus, err)
	}

	logger.Info("Imported %d sections for corpus %q", len(sections), corpus)
	return len(sections), nil
}

// List reports the state of every configured corpus, plus any imported
// corpus that is not in the configured enumeration.
func (s *CorpusService) List(ctx context.Context) ([]driving.CorpusInfo, error) {
	ids := append([]string(nil), s.corpora...)

	imported, err := s.sections.Corpora(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpora: %w", err)
	}
	for _, id := range imported {
		if !containsString(ids, id) {
			ids = append(ids, id)
		}
	}

	infos := make([]driving.CorpusInfo, 0, len(ids))
	for _, id := range ids {
		sections, err := s.sections.ListSections(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("listing sections for corpus %q: %w", id, err)
		}

		indexed := true
		if _, err := s.vectors.Load(ctx, id); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("checking index for corpus %q: %w", id, err)
			}
			indexed = false
		}

		infos = append(infos, driving.CorpusInfo{
			ID:       id,
			Sections: len(sections),
			Indexed:  indexed,
		})
	}

	return infos, nil
}

// History returns the most recent search log entries, newest first.
func (s *CorpusService) History(ctx context.Context, limit int) ([]domain.SearchLog, error) {
	if s.logs == nil {
		return []domain.SearchLog{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	entries, err := s.logs.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading search history: %w", err)
	}
	return entries, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
