// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports).
//
// These are the contracts the search core expects its collaborators to
// honour: the embedding provider, the section metadata store, the
// vector index store, the search log and the config store. The core
// services depend only on these interfaces, never on concrete adapters.
package driven
