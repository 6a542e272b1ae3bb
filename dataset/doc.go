// Package dataset generates and persists founder profile datasets.
// The generator is seeded and deterministic so test fixtures and demo
// data stay reproducible. CSV is the interchange format between the
// data producer and the indexing pipeline.
package dataset
