package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Sanhita resources.
	uriScheme = "sanhita://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpora",
		Name:        "corpora",
		Description: "Configured statute corpora with their import and index state",
		MIMEType:    "application/json",
	}, s.handleCorporaResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recently executed search queries",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleCorporaResource returns the configured corpora and their state.
func (s *Server) handleCorporaResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	infos, err := s.ports.Corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpora: %w", err)
	}

	type corpusInfo struct {
		ID       string `json:"id"`
		Sections int    `json:"sections"`
		Indexed  bool   `json:"indexed"`
	}

	out := make([]corpusInfo, len(infos))
	for i, info := range infos {
		out[i] = corpusInfo{
			ID:       info.ID,
			Sections: info.Sections,
			Indexed:  info.Indexed,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpora: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns recent search log entries.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return emptyJSONResource(req.Params.URI), nil
	}

	entries, err := s.ports.Corpus.History(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	type historyEntry struct {
		Query     string `json:"query"`
		Corpus    string `json:"corpus"`
		Timestamp string `json:"timestamp"`
	}

	out := make([]historyEntry, len(entries))
	for i, entry := range entries {
		out[i] = historyEntry{
			Query:     entry.Query,
			Corpus:    entry.Corpus,
			Timestamp: entry.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// emptyJSONResource returns an empty JSON array for resources whose
// backing port is not wired.
func emptyJSONResource(uri string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     "[]",
		}},
	}
}
