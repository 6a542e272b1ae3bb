// Package mock provides test doubles for the ai service contracts.
// The defaults are deterministic so tests that exercise the full
// retrieval and ranking pipeline stay reproducible without a model
// server.
package mock
