package driving

import (
	"context"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// SearchService provides statute search capabilities to external actors.
type SearchService interface {
	// Search embeds the query text and returns the top matches for
	// the given scope, sorted by score descending. An unknown or
	// unbuilt corpus yields an empty result list, not an error.
	Search(ctx context.Context, query string, scope domain.Scope, opts domain.SearchOptions) ([]domain.Match, error)
}
