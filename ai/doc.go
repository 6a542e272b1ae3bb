// Package ai defines the contracts for the external model services the
// matchmaking pipeline depends on: text embedding and generative
// candidate ranking. Production implementations live in ai/openai; test
// doubles live in ai/mock.
package ai
