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


package ai

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig holds the circuit breaker settings for the generator.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that trips the
	// circuit. Default: 3
	MaxFailures uint32

	// OpenTimeout is how long the circuit stays open before allowing a
	// probe request. Default: 30s
	OpenTimeout time.Duration
}

// DefaultBreakerConfig returns the settings used for generator calls.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{MaxFailures: 3, OpenTimeout: 30 * time.Second}
}

// BreakerRanker decorates a Ranker with a circuit breaker so a failing
// generator is not hammered with doomed requests. While the circuit is
// open, calls fail fast with ErrCircuitOpen.
type BreakerRanker struct {
	inner   Ranker
	breaker *gobreaker.CircuitBreaker
}

var _ Ranker = (*BreakerRanker)(nil)

// NewBreakerRanker wraps a Ranker with a circuit breaker.
func NewBreakerRanker(inner Ranker, config BreakerConfig) *BreakerRanker {
	if config.MaxFailures == 0 {
		config.MaxFailures = 3
	}
	if config.OpenTimeout <= 0 {
		config.OpenTimeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "generator",
		Timeout: config.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// Malformed output is the generator answering, just badly;
			// only transport-class failures should trip the circuit.
			return err == nil || IsMalformedOutput(err)
		},
	}

	return &BreakerRanker{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// RankCandidates delegates to the wrapped Ranker through the breaker.
func (b *BreakerRanker) RankCandidates(ctx context.Context, query string, contextJSON string) ([]RankedMatch, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return b.inner.RankCandidates(ctx, query, contextJSON)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}
	matches, _ := result.([]RankedMatch)
	return matches, nil
}
