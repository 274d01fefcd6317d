package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The service must return vectors of one fixed dimension for the
// lifetime of a deployment; Dimensions reports it. Vectors are
// expected to be pre-normalised to unit length (the ranker
// re-normalises defensively through the cosine computation).
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Local models via inference servers
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768, 1536).
	// This is determined by the model and must match the built indexes.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to an operation.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
