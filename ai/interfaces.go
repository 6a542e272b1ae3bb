package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Ranker asks a generative model to select and explain the best matches
// among a serialized set of candidate profiles.
// Implementations must be thread-safe for concurrent use.
type Ranker interface {
	// RankCandidates submits the user query and the serialized candidate
	// context to the generator and returns its ranked matches, in the
	// generator's order. The matches are untrusted: identifiers must be
	// re-validated by the caller before use.
	//
	// A transport or service failure is reported as an error wrapping
	// ErrGeneratorUnavailable. Output that cannot be parsed into the
	// expected contract is reported as a *MalformedOutputError carrying
	// the raw text.
	RankCandidates(ctx context.Context, query string, contextJSON string) ([]RankedMatch, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Ranker instances, ensuring they share configuration appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Ranker returns the generative ranking service.
	// The returned Ranker is safe for concurrent use.
	Ranker() Ranker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
