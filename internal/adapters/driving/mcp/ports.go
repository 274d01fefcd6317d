package mcp

import (
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks statute sections against a query.
	Search driving.SearchService

	// Corpus reports corpus state and search history.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Corpus is optional; the corpora resource degrades to an empty list.
	return nil
}
