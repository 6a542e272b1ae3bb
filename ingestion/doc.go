// Package ingestion builds the search index from a profile dataset.
//
// Indexing is a wholesale rebuild: the pipeline validates every profile,
// embeds the rendered documents concurrently, then atomically replaces
// the stored profiles, documents, and dataset fingerprint. A failed run
// leaves the previous index untouched.
package ingestion
