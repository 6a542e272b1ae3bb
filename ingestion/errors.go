package ingestion

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrDocumentRepositoryRequired is returned when a document repository is not provided.
	ErrDocumentRepositoryRequired = errors.New("document repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrNoProfiles is returned when indexing is attempted with an empty
	// dataset. Rebuilds are destructive, an empty input is more likely a
	// caller bug than an intent to wipe the index.
	ErrNoProfiles = errors.New("no profiles to index")
)
