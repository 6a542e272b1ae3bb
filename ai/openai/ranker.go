// Copyright 2026 Veridian Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/veridian-labs/cofoundry/ai"
)

// Ranker implements ai.Ranker using OpenAI-compatible chat APIs.
type Ranker struct {
	client llms.Model
	logger *slog.Logger
}

// newRanker is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRanker(config *ai.Config) (*Ranker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/ranking
	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Ranker{
		client: client,
		logger: slog.Default().With("component", "openai-ranker"),
	}, nil
}

// NewRanker creates a new ranker using the provided configuration.
//
// Returns ai.Ranker interface to enforce abstraction.
func NewRanker(config *ai.Config) (ai.Ranker, error) {
	return newRanker(config)
}

// RankCandidates asks the generator to pick and explain the best matches
// from the supplied candidate context. Transport failures are wrapped with
// ai.ErrGeneratorUnavailable; unparseable model output is returned as an
// *ai.MalformedOutputError so callers can distinguish the two.
func (r *Ranker) RankCandidates(ctx context.Context, query string, contextJSON string) ([]ai.RankedMatch, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(rankSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRankPrompt(query, contextJSON)),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		r.logger.Error("failed to generate ranking", "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrGeneratorUnavailable, err)
	}

	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model")
		return []ai.RankedMatch{}, nil
	}

	matches, err := parseRankedMatches(response.Choices[0].Content)
	if err != nil {
		r.logger.Warn("error parsing ranker response", "err", err)
		return nil, err
	}

	r.logger.Debug("ranked candidates", "matches", len(matches))
	return matches, nil
}

// parseRankedMatches extracts ranked matches from raw model output.
// It tolerates markdown code fences and a single bare object where an
// array was expected. Anything else is a malformed output error.
func parseRankedMatches(raw string) ([]ai.RankedMatch, error) {
	// Strip markdown code fences if present
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	// Try to repair common JSON issues
	text = repairJSON(text)

	var matches []ai.RankedMatch
	if err := json.Unmarshal([]byte(text), &matches); err == nil {
		return matches, nil
	}

	// Some models return a single object instead of a one-element array
	var single ai.RankedMatch
	if err := json.Unmarshal([]byte(text), &single); err != nil {
		return nil, &ai.MalformedOutputError{Raw: raw, Err: err}
	}
	if single.Id == "" {
		return nil, &ai.MalformedOutputError{Raw: raw, Err: fmt.Errorf("object output has no id")}
	}
	return []ai.RankedMatch{single}, nil
}
