package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/config/file"
	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/embedding/ollama"
	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/embedding/openai"
	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/storage/sqlite"
	"github.com/sanhita-labs/sanhita-cli/internal/adapters/driven/vectorfile"
	"github.com/sanhita-labs/sanhita-cli/internal/core/ports/driven"
	"github.com/sanhita-labs/sanhita-cli/internal/core/services"
	"github.com/sanhita-labs/sanhita-cli/internal/logger"
)

// initServices builds the full service graph from configuration.
// Safe to call more than once; later calls are no-ops.
func initServices() error {
	if searchService != nil {
		return nil
	}

	base := dataDir
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		base = filepath.Join(home, ".sanhita")
	}

	cfg, err := file.NewConfigStore(base)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = cfg
	logger.Debug("Config loaded from %s", cfg.Path())

	store, err := sqlite.NewStore(filepath.Join(base, "data"))
	if err != nil {
		return fmt.Errorf("opening metadata store: %w", err)
	}

	vectors, err := vectorfile.NewStore(indexDirFrom(cfg, base))
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("configuring embedding service: %w", err)
	}
	logger.Debug("Embedding model: %s (%d dimensions)", embedder.ModelName(), embedder.Dimensions())

	corpora := cfg.GetStringSlice(file.KeyCorpora)
	if len(corpora) == 0 {
		corpora = file.DefaultCorpora
	}

	sections := store.SectionStore()
	logs := store.SearchLogStore()
	cache := services.NewCorpusCache(sections, vectors)

	searchService = services.NewSearchService(embedder, cache, corpora, logs)
	indexService = services.NewIndexService(sections, vectors, embedder, corpora)
	corpusService = services.NewCorpusService(sections, vectors, logs, corpora)

	return nil
}

// indexDirFrom resolves the vector index directory, preferring the
// configured value over the default under the base directory.
func indexDirFrom(cfg driven.ConfigStore, base string) string {
	if dir := cfg.GetString(file.KeyIndexDir); dir != "" {
		return dir
	}
	return filepath.Join(base, "index")
}

// buildEmbedder constructs the configured embedding provider.
// Defaults to a local Ollama instance.
func buildEmbedder(cfg driven.ConfigStore) (driven.EmbeddingService, error) {
	provider := cfg.GetString(file.KeyEmbeddingProvider)

	switch provider {
	case "", "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL:    cfg.GetString(file.KeyEmbeddingBaseURL),
			Model:      cfg.GetString(file.KeyEmbeddingModel),
			Dimensions: cfg.GetInt(file.KeyEmbeddingDimensions),
		}), nil
	case "openai":
		apiKey := cfg.GetString(file.KeyEmbeddingAPIKey)
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		return openai.NewEmbeddingService(openai.Config{
			APIKey:     apiKey,
			BaseURL:    cfg.GetString(file.KeyEmbeddingBaseURL),
			Model:      cfg.GetString(file.KeyEmbeddingModel),
			Dimensions: cfg.GetInt(file.KeyEmbeddingDimensions),
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", provider)
	}
}
