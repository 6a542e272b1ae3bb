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


package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/veridian-labs/cofoundry/ai"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/query"
	"github.com/veridian-labs/cofoundry/storage"
)

const (
	defaultTopK             = 20
	defaultContextLimit     = 10
	defaultResultLimit      = 5
	defaultGeneratorTimeout = 30 * time.Second
)

// Searcher runs natural-language matchmaking queries over indexed
// founder profiles.
type Searcher struct {
	profiles         storage.ProfileRepository
	documents        storage.DocumentRepository
	embedder         ai.Embedder
	ranker           ai.Ranker
	retry            ai.RetryPolicy
	logger           *slog.Logger
	topK             int
	contextLimit     int
	resultLimit      int
	generatorTimeout time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithTopK sets how many candidates vector retrieval returns.
// Default is 20.
func WithTopK(k int) Option {
	return func(s *Searcher) error {
		if k > 0 {
			s.topK = k
		}
		return nil
	}
}

// WithContextLimit caps how many candidates are shown to the generator.
// Default is 10.
func WithContextLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit > 0 {
			s.contextLimit = limit
		}
		return nil
	}
}

// WithResultLimit caps how many matches a query returns.
// Default is 5.
func WithResultLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit > 0 {
			s.resultLimit = limit
		}
		return nil
	}
}

// WithRetryPolicy sets the retry policy for generator transport failures.
func WithRetryPolicy(policy ai.RetryPolicy) Option {
	return func(s *Searcher) error {
		s.retry = policy
		return nil
	}
}

// WithGeneratorTimeout bounds a single ranking pass, including retries.
// Default is 30s. Zero disables the bound.
func WithGeneratorTimeout(timeout time.Duration) Option {
	return func(s *Searcher) error {
		s.generatorTimeout = timeout
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	profiles storage.ProfileRepository,
	documents storage.DocumentRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		profiles:         profiles,
		documents:        documents,
		embedder:         provider.Embedder(),
		ranker:           provider.Ranker(),
		retry:            ai.DefaultRetryPolicy(),
		logger:           slog.Default(),
		topK:             defaultTopK,
		contextLimit:     defaultContextLimit,
		resultLimit:      defaultResultLimit,
		generatorTimeout: defaultGeneratorTimeout,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs the full matchmaking pipeline for a query.
// Returns up to the configured result limit, best matches first.
func (s *Searcher) Search(ctx context.Context, queryText string) ([]*core.MatchResult, error) {
	return s.SearchWithMonitor(ctx, queryText, nil)
}

// SearchWithMonitor runs the pipeline with stage callbacks.
// The monitor receives the intermediate product of each stage.
func (s *Searcher) SearchWithMonitor(ctx context.Context, queryText string, monitor SearchMonitor) ([]*core.MatchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	queryText = strings.TrimSpace(queryText)
	if queryText == "" {
		return nil, ErrEmptyQuery
	}

	// Refuse to search against an index that was never built
	if _, err := s.documents.Fingerprint(ctx); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}

	monitor.Start(queryText)

	// 1. Pull hard filters out of the query text
	cleaned, filter := query.ExtractFilters(queryText)
	if cleaned == "" {
		// Query was nothing but filter tokens, embed the original
		cleaned = queryText
	}
	monitor.AfterFilterExtraction(cleaned, filter)

	// 2. Embed the cleaned query and retrieve candidates
	embedding, err := s.embedder.EmbedText(ctx, cleaned)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", cleaned, "err", err)
		return nil, err
	}

	candidates, err := s.documents.FindSimilar(ctx, embedding, filter, s.topK)
	if err != nil {
		s.logger.Error("error retrieving candidates", "err", err)
		return nil, err
	}
	monitor.AfterRetrieval(candidates)

	// Nothing survived the hard filter, skip the generator entirely
	if len(candidates) == 0 {
		s.logger.Debug("no candidates after retrieval", "location", filter.Location, "stage", filter.Stage)
		results := []*core.MatchResult{}
		monitor.Finish(results)
		return results, nil
	}

	// 3. Build the bounded context and re-rank with the generator
	contextJSON, err := buildContext(candidates, s.contextLimit)
	if err != nil {
		return nil, err
	}

	ranked, degraded := s.rank(ctx, queryText, contextJSON, candidates)
	monitor.AfterRerank(ranked, degraded)

	// 4. Compile ranked ids into validated results
	results := s.compile(ctx, ranked, filter)
	monitor.Finish(results)

	return results, nil
}

// rank calls the generator with retries for transport failures. Malformed
// output and exhausted retries are both non-fatal: malformed output ranks
// nothing, transport exhaustion degrades to the retrieval order.
func (s *Searcher) rank(ctx context.Context, queryText string, contextJSON string, candidates []*core.Candidate) ([]ai.RankedMatch, bool) {
	rankCtx := ctx
	if s.generatorTimeout > 0 {
		var cancel context.CancelFunc
		rankCtx, cancel = context.WithTimeout(ctx, s.generatorTimeout)
		defer cancel()
	}

	var ranked []ai.RankedMatch
	var malformed error
	err := s.retry.Do(rankCtx, func() error {
		matches, rankErr := s.ranker.RankCandidates(rankCtx, queryText, contextJSON)
		if rankErr != nil {
			if ai.IsMalformedOutput(rankErr) {
				// Deterministic failure, a retry would get the same answer
				malformed = rankErr
				return nil
			}
			return rankErr
		}
		malformed = nil
		ranked = matches
		return nil
	})

	if err != nil {
		s.logger.Warn("generator unavailable, degrading to retrieval order", "err", err)
		degraded := make([]ai.RankedMatch, 0, s.resultLimit)
		for _, c := range candidates {
			if len(degraded) >= s.resultLimit {
				break
			}
			degraded = append(degraded, ai.RankedMatch{
				Id:          string(c.Document.Id),
				Explanation: ai.PlaceholderExplanation,
			})
		}
		return degraded, true
	}

	if malformed != nil {
		s.logger.Warn("generator produced unparseable output, returning no matches", "err", malformed)
		return nil, false
	}

	return ranked, false
}

// compile resolves ranked ids into full match results, in generator
// order. Unknown ids, duplicates, and profiles that contradict the
// extracted filters are dropped rather than surfaced.
func (s *Searcher) compile(ctx context.Context, ranked []ai.RankedMatch, filter core.Filter) []*core.MatchResult {
	results := make([]*core.MatchResult, 0, s.resultLimit)
	seen := make(map[string]bool, len(ranked))

	for _, match := range ranked {
		if len(results) >= s.resultLimit {
			break
		}
		if match.Id == "" || seen[match.Id] {
			continue
		}
		seen[match.Id] = true

		profile, err := s.profiles.GetProfile(ctx, core.ID(match.Id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				s.logger.Warn("generator returned unknown id", "id", match.Id)
				continue
			}
			s.logger.Error("error resolving profile", "id", match.Id, "err", err)
			continue
		}

		// The generator only saw filtered candidates, but its ids are
		// re-checked against the live profile anyway
		if !filter.Matches(profile.Location, profile.Stage) {
			s.logger.Warn("generator returned id outside filter scope",
				"id", match.Id,
				"location", profile.Location,
				"stage", profile.Stage)
			continue
		}

		explanation := strings.TrimSpace(match.Explanation)
		if explanation == "" {
			explanation = ai.PlaceholderExplanation
		}

		results = append(results, &core.MatchResult{
			Id:               profile.Id,
			FounderName:      profile.FounderName,
			Role:             profile.Role,
			Company:          profile.Company,
			Location:         profile.Location,
			Idea:             profile.Idea,
			About:            profile.About,
			Keywords:         profile.Keywords,
			Stage:            profile.Stage,
			LinkedIn:         profile.LinkedIn,
			Notes:            profile.Notes,
			MatchExplanation: explanation,
			Provenance: core.Provenance{
				MatchedOnFields: core.SearchFields,
				SourceId:        profile.Id,
			},
		})
	}

	return results
}
