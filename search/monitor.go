package search

import (
	"github.com/veridian-labs/cofoundry/ai"
	"github.com/veridian-labs/cofoundry/core"
)

// SearchMonitor provides hooks to observe the matchmaking pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterFilterExtraction(cleaned string, filter core.Filter)
	AfterRetrieval(candidates []*core.Candidate)
	AfterRerank(matches []ai.RankedMatch, degraded bool)
	Finish(results []*core.MatchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                               {}
func (n *noopMonitor) AfterFilterExtraction(_ string, _ core.Filter) {}
func (n *noopMonitor) AfterRetrieval(_ []*core.Candidate)           {}
func (n *noopMonitor) AfterRerank(_ []ai.RankedMatch, _ bool)       {}
func (n *noopMonitor) Finish(_ []*core.MatchResult)                 {}
