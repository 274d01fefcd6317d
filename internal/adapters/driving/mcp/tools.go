package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// SearchInput is the input schema for the search_statutes tool.
type SearchInput struct {
	Query  string `json:"query" jsonschema:"natural language description of the offence or situation"`
	Corpus string `json:"corpus,omitempty" jsonschema:"corpus identifier to restrict the search to (e.g. ipc), or \"all\""`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the search_statutes tool.
type SearchOutput struct {
	Results []SectionMatch `json:"results"`
	Count   int            `json:"count"`
}

// SectionMatch represents a single matched statute section.
type SectionMatch struct {
	Corpus      string  `json:"corpus"`
	Section     string  `json:"section"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_statutes",
		Description: "Find statute sections relevant to a described offence or legal situation",
	}, s.handleSearch)
}

// handleSearch handles the search_statutes tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	scope := domain.AllCorpora()
	if input.Corpus != "" && input.Corpus != "all" {
		scope = domain.SingleCorpus(input.Corpus)
	}

	opts := domain.SearchOptions{Limit: input.Limit}
	matches, err := s.ports.Search.Search(ctx, input.Query, scope, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SectionMatch, len(matches)),
		Count:   len(matches),
	}

	for i, m := range matches {
		output.Results[i] = SectionMatch{
			Corpus:      m.Corpus,
			Section:     m.Number,
			Title:       m.Title,
			Description: m.Description,
			Score:       m.Score,
		}
	}

	return nil, output, nil
}
