// Package mcp provides an MCP (Model Context Protocol) server adapter for Sanhita.
// It lets AI assistants search statute law through the local vector index.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
