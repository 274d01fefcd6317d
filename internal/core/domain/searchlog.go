package domain

import "time"

// SearchLog is an audit record of one executed query. Logging is a
// side effect of search; it never blocks or fails the query itself.
type SearchLog struct {
	// ID is the unique identifier for the log entry.
	ID string

	// Query is the raw query text as the caller supplied it.
	Query string

	// Corpus is the scope the query ran against ("all" for fan-out).
	Corpus string

	// Timestamp is when the query completed.
	Timestamp time.Time
}
