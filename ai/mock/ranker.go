package mock

import (
	"context"
	"encoding/json"

	"github.com/veridian-labs/cofoundry/ai"
)

// MockRanker is a test double for ai.Ranker.
// It allows custom behavior injection via function fields.
type MockRanker struct {
	// RankFunc is called by RankCandidates if set.
	// If nil, uses default behavior of echoing context ids in order.
	RankFunc func(ctx context.Context, query string, contextJSON string) ([]ai.RankedMatch, error)

	callCount int
}

// NewMockRanker creates a mock ranker with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockRanker().
func NewMockRanker() *MockRanker {
	return &MockRanker{}
}

// RankCandidates returns mock ranked matches.
// Default behavior: parses the candidate context and returns up to 5 ids
// in their original order with a canned explanation.
func (m *MockRanker) RankCandidates(ctx context.Context, query string, contextJSON string) ([]ai.RankedMatch, error) {
	m.callCount++

	if m.RankFunc != nil {
		return m.RankFunc(ctx, query, contextJSON)
	}

	var entries []struct {
		Id string `json:"id"`
	}
	if err := json.Unmarshal([]byte(contextJSON), &entries); err != nil {
		return nil, &ai.MalformedOutputError{Raw: contextJSON, Err: err}
	}

	matches := make([]ai.RankedMatch, 0, 5)
	for _, entry := range entries {
		if len(matches) >= 5 {
			break
		}
		matches = append(matches, ai.RankedMatch{
			Id:          entry.Id,
			Explanation: "Matched by mock ranker for query: " + query,
		})
	}
	return matches, nil
}

// CallCount returns the number of times RankCandidates was called.
func (m *MockRanker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRanker) Reset() {
	m.callCount = 0
	m.RankFunc = nil
}
