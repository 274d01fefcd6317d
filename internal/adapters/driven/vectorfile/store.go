// Package vectorfile stores per-corpus vector indexes as JSON files.
//
// Each corpus gets one file, <dir>/<corpus>.json, holding a single
// JSON array of vectors in section-ordinal order. The format carries
// no structure beyond the array; positional alignment with the section
// store is the whole contract.
package vectorfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sanhita-labs/sanhita-cli/internal/core/domain"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store reads and writes corpus vector files under a base directory.
type Store struct {
	dir string
}

// NewStore creates a vector file store rooted at dir.
// If dir is empty, defaults to ~/.sanhita/index.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".sanhita", "index")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the base directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads the vector array for a corpus. A missing file is
// domain.ErrNotFound; a file that exists but cannot be parsed is a
// fatal error, never an empty result.
func (s *Store) Load(ctx context.Context, corpus string) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(corpus)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no index for corpus %q: %w", corpus, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading index for corpus %q: %w", corpus, err)
	}

	var vectors [][]float32
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("corrupt index file %s: %w", path, err)
	}

	return vectors, nil
}

// Save atomically replaces the vector array for a corpus. The array is
// written to a temp file first and renamed into place, so a crashed or
// failed build never leaves a partial index behind.
func (s *Store) Save(ctx context.Context, corpus string, vectors [][]float32) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(corpus)
	if err != nil {
		return err
	}

	data, err := json.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("marshalling index for corpus %q: %w", corpus, err)
	}

	tmp, err := os.CreateTemp(s.dir, corpus+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp index file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing index for corpus %q: %w", corpus, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp index file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing index for corpus %q: %w", corpus, err)
	}

	return nil
}

// path validates the corpus identifier and maps it to a file path.
// Identifiers are plain names; path separators would escape the store
// directory.
func (s *Store) path(corpus string) (string, error) {
	if corpus == "" || strings.ContainsAny(corpus, `/\`) || corpus != filepath.Base(corpus) {
		return "", fmt.Errorf("corpus identifier %q: %w", corpus, domain.ErrInvalidInput)
	}
	return filepath.Join(s.dir, corpus+".json"), nil
}
