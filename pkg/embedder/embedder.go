package embedder

import "context"

// Default settings applied when the corresponding Config field is unset.
const (
	DefaultModel     = "text-embedding-3-small"
	DefaultBatchSize = 100
)

// Client generates vector embeddings for text.
type Client interface {
	// Embed generates embeddings for the given texts, preserving order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the number of dimensions in the embeddings.
	Dimensions() int

	// Close cleans up any resources.
	Close() error
}

// Config holds configuration for embedding clients.
type Config struct {
	// Model is the embedding model name. Defaults to DefaultModel.
	Model string

	// BaseURL overrides the provider endpoint, for OpenAI-compatible
	// services such as Ollama or vLLM.
	BaseURL string

	// BatchSize caps how many texts are sent per request. Defaults to
	// DefaultBatchSize.
	BatchSize int

	// Dimensions declares the vector size. Defaults to the known size of
	// Model.
	Dimensions int
}

// modelDimensions maps known models to their vector sizes.
var modelDimensions = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
}

func dimensionsForModel(model string) int {
	if dims, ok := modelDimensions[model]; ok {
		return dims
	}
	return 1536
}
