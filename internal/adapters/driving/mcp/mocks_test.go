package mcp

import (
	"context"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	matches   []domain.Match
	err       error
	lastScope domain.Scope
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	scope domain.Scope,
	opts domain.SearchOptions,
) ([]domain.Match, error) {
	m.lastScope = scope
	m.lastOpts = opts
	return m.matches, m.err
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	infos   []driving.CorpusInfo
	history []domain.SearchLog
	err     error
}

func (m *mockCorpusService) Import(_ context.Context, _ string, records []domain.Section) (int, error) {
	return len(records), m.err
}

func (m *mockCorpusService) List(_ context.Context) ([]driving.CorpusInfo, error) {
	return m.infos, m.err
}

func (m *mockCorpusService) History(_ context.Context, _ int) ([]domain.SearchLog, error) {
	return m.history, m.err
}
