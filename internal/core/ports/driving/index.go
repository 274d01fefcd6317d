package driving

import "context"

// IndexService builds the per-corpus vector indexes consumed by search.
type IndexService interface {
	// Build embeds every section of a corpus and replaces its vector
	// index. The build is all-or-nothing: any embedding failure
	// aborts without writing, so a stale index is never replaced by a
	// misaligned one.
	Build(ctx context.Context, corpus string) (int, error)

	// BuildAll builds every configured corpus in turn and returns the
	// total number of sections indexed. It stops at the first corpus
	// that fails.
	BuildAll(ctx context.Context) (int, error)
}
