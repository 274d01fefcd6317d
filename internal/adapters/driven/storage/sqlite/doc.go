// Package sqlite provides the SQLite-backed metadata stores.
//
// A single database file holds both the section metadata and the
// search log. The wrapper accessors on Store hand out the port
// interfaces so wiring code never touches *sql.DB directly.
// Migrations are embedded and applied on open.
package sqlite
