// Package openai implements the ai service contracts against any
// OpenAI-compatible API (OpenAI, Ollama, LocalAI, vLLM) via langchaingo.
package openai
