package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.sanhita/data/metadata.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sanhita", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "metadata.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SectionStore returns a SectionStore interface backed by this store.
func (s *Store) SectionStore() driven.SectionStore {
	return &sectionStore{store: s}
}

// SearchLogStore returns a SearchLogStore interface backed by this store.
func (s *Store) SearchLogStore() driven.SearchLogStore {
	return &searchLogStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Section Store ====================

// sectionStore implements driven.SectionStore.
type sectionStore struct {
	store *Store
}

var _ driven.SectionStore = (*sectionStore)(nil)

// ListSections returns all sections of a corpus ordered by ordinal.
func (s *sectionStore) ListSections(ctx context.Context, corpus string) ([]domain.Section, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT corpus, number, title, description, ordinal
		FROM sections WHERE corpus = ?
		ORDER BY ordinal
	`, corpus)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sec domain.Section
		if err := rows.Scan(&sec.Corpus, &sec.Number, &sec.Title, &sec.Description, &sec.Ordinal); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, sec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}

	return sections, nil
}

// ReplaceSections atomically replaces the full section set of a corpus.
func (s *sectionStore) ReplaceSections(ctx context.Context, corpus string, sections []domain.Section) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE corpus = ?", corpus); err != nil {
		return fmt.Errorf("clearing corpus %s: %w", corpus, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sections (corpus, number, title, description, ordinal, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, sec := range sections {
		if _, err := stmt.ExecContext(ctx, corpus, sec.Number, sec.Title,
			sec.Description, sec.Ordinal, now); err != nil {
			return fmt.Errorf("inserting section %s: %w", sec.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Corpora returns the distinct corpus identifiers present in the store.
func (s *sectionStore) Corpora(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT DISTINCT corpus FROM sections ORDER BY corpus
	`)
	if err != nil {
		return nil, fmt.Errorf("querying corpora: %w", err)
	}
	defer rows.Close()

	var corpora []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning corpus id: %w", err)
		}
		corpora = append(corpora, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating corpora: %w", err)
	}

	return corpora, nil
}

// Close is a no-op; the underlying connection is owned by Store.
func (s *sectionStore) Close() error {
	return nil
}

// ==================== Search Log Store ====================

// searchLogStore implements driven.SearchLogStore.
type searchLogStore struct {
	store *Store
}

var _ driven.SearchLogStore = (*searchLogStore)(nil)

// Append records a search query.
func (s *searchLogStore) Append(ctx context.Context, log domain.SearchLog) error {
	if log.ID == "" {
		return domain.ErrInvalidInput
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO search_logs (id, query, corpus, created_at)
		VALUES (?, ?, ?, ?)
	`, log.ID, log.Query, log.Corpus, log.Timestamp)

	if err != nil {
		return fmt.Errorf("appending search log: %w", err)
	}
	return nil
}

// Recent returns up to limit log entries, newest first.
func (s *searchLogStore) Recent(ctx context.Context, limit int) ([]domain.SearchLog, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, query, corpus, created_at
		FROM search_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying search logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.SearchLog //nolint:prealloc // size unknown from query
	for rows.Next() {
		var log domain.SearchLog
		if err := rows.Scan(&log.ID, &log.Query, &log.Corpus, &log.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning search log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search logs: %w", err)
	}

	return logs, nil
}
