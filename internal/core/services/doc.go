// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The retrieval pipeline lives here: the lazily-populated corpus
// cache, the cosine similarity ranker, the all-corpora fan-out and
// the offline index builder.
//
// Services are pure Go with no CGO or external I/O of their own.
package services
