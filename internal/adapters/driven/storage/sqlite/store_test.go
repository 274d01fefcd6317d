package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testSections(corpus string, n int) []domain.Section {
	sections := make([]domain.Section, 0, n)
	for i := 0; i < n; i++ {
		sections = append(sections, domain.Section{
			Corpus:      corpus,
			Number:      string(rune('1' + i)),
			Title:       "Title " + string(rune('A'+i)),
			Description: "Description " + string(rune('A'+i)),
			Ordinal:     i,
		})
	}
	return sections
}

// ==================== Store Creation Tests ====================

func TestNewStore_Success(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sanhita-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "metadata.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_MigrationsIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var version int
	err = store.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

// ==================== Section Store Tests ====================

func TestSectionStore_ReplaceAndList(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	want := testSections("ipc", 3)
	require.NoError(t, sections.ReplaceSections(ctx, "ipc", want))

	got, err := sections.ListSections(ctx, "ipc")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSectionStore_ListOrdersByOrdinal(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	// Insert in reverse ordinal order.
	input := []domain.Section{
		{Corpus: "ipc", Number: "302", Title: "Murder", Description: "Punishment for murder", Ordinal: 2},
		{Corpus: "ipc", Number: "300", Title: "Murder defined", Description: "When culpable homicide is murder", Ordinal: 0},
		{Corpus: "ipc", Number: "301", Title: "Transfer of malice", Description: "Culpable homicide by causing death of person other than person whose death was intended", Ordinal: 1},
	}
	require.NoError(t, sections.ReplaceSections(ctx, "ipc", input))

	got, err := sections.ListSections(ctx, "ipc")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "300", got[0].Number)
	assert.Equal(t, "301", got[1].Number)
	assert.Equal(t, "302", got[2].Number)
}

func TestSectionStore_ReplaceClearsPrevious(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	require.NoError(t, sections.ReplaceSections(ctx, "ipc", testSections("ipc", 5)))

	replacement := testSections("ipc", 2)
	require.NoError(t, sections.ReplaceSections(ctx, "ipc", replacement))

	got, err := sections.ListSections(ctx, "ipc")
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestSectionStore_ReplaceIsolatedPerCorpus(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	require.NoError(t, sections.ReplaceSections(ctx, "ipc", testSections("ipc", 3)))
	require.NoError(t, sections.ReplaceSections(ctx, "crpc", testSections("crpc", 2)))

	// Replacing one corpus leaves the other untouched.
	require.NoError(t, sections.ReplaceSections(ctx, "ipc", testSections("ipc", 1)))

	got, err := sections.ListSections(ctx, "crpc")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSectionStore_ReplaceRejectsDuplicateNumber(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	dupes := []domain.Section{
		{Corpus: "ipc", Number: "29A", Title: "Electronic record", Ordinal: 0},
		{Corpus: "ipc", Number: "29A", Title: "Electronic record (dup)", Ordinal: 1},
	}
	err := sections.ReplaceSections(ctx, "ipc", dupes)
	require.Error(t, err)

	// The failed replace must not leave partial rows behind.
	got, err := sections.ListSections(ctx, "ipc")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSectionStore_SameNumberAcrossCorporaAllowed(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	require.NoError(t, sections.ReplaceSections(ctx, "ipc",
		[]domain.Section{{Corpus: "ipc", Number: "302", Title: "Murder", Ordinal: 0}}))
	require.NoError(t, sections.ReplaceSections(ctx, "crpc",
		[]domain.Section{{Corpus: "crpc", Number: "302", Title: "Permission to conduct prosecution", Ordinal: 0}}))

	got, err := sections.Corpora(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"crpc", "ipc"}, got)
}

func TestSectionStore_ListEmptyCorpus(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.SectionStore().ListSections(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSectionStore_Corpora(t *testing.T) {
	store := setupTestStore(t)
	sections := store.SectionStore()
	ctx := context.Background()

	got, err := sections.Corpora(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, sections.ReplaceSections(ctx, "mv_act", testSections("mv_act", 1)))
	require.NoError(t, sections.ReplaceSections(ctx, "ipc", testSections("ipc", 1)))

	got, err = sections.Corpora(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ipc", "mv_act"}, got)
}

// ==================== Search Log Store Tests ====================

func TestSearchLogStore_AppendAndRecent(t *testing.T) {
	store := setupTestStore(t)
	logs := store.SearchLogStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := logs.Append(ctx, domain.SearchLog{
			ID:        string(rune('a' + i)),
			Query:     "query " + string(rune('a'+i)),
			Corpus:    "all",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := logs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
	assert.Equal(t, "query c", got[0].Query)
	assert.Equal(t, "all", got[0].Corpus)
}

func TestSearchLogStore_RecentHonorsLimit(t *testing.T) {
	store := setupTestStore(t)
	logs := store.SearchLogStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := logs.Append(ctx, domain.SearchLog{
			ID:        string(rune('a' + i)),
			Query:     "q",
			Corpus:    "ipc",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	got, err := logs.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
}

func TestSearchLogStore_AppendRejectsEmptyID(t *testing.T) {
	store := setupTestStore(t)

	err := store.SearchLogStore().Append(context.Background(), domain.SearchLog{Query: "q"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchLogStore_AppendFillsTimestamp(t *testing.T) {
	store := setupTestStore(t)
	logs := store.SearchLogStore()
	ctx := context.Background()

	require.NoError(t, logs.Append(ctx, domain.SearchLog{ID: "x", Query: "q", Corpus: "all"}))

	got, err := logs.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Timestamp.IsZero())
}
