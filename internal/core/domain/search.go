package domain

// DefaultLimit is the number of matches returned when no limit is given.
const DefaultLimit = 5

// Scope selects which corpora a query runs against. Construct it with
// SingleCorpus or AllCorpora; the zero value is not a valid scope.
type Scope struct {
	// Corpus is the target corpus identifier when All is false.
	Corpus string

	// All requests a fan-out search across every configured corpus.
	All bool
}

// SingleCorpus returns a scope targeting one corpus identifier.
func SingleCorpus(id string) Scope {
	return Scope{Corpus: id}
}

// AllCorpora returns a scope targeting every configured corpus.
func AllCorpora() Scope {
	return Scope{All: true}
}

// String renders the scope the way it is recorded in search logs.
func (s Scope) String() string {
	if s.All {
		return "all"
	}
	return s.Corpus
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of matches to return (top-K).
	// Values below 1 fall back to DefaultLimit.
	Limit int
}
