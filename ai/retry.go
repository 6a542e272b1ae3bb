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
	"log/slog"
	"time"
)

// RetryPolicy is a bounded retry with exponential backoff, applied at
// the generator-call boundary. It lives outside the pipeline logic so it
// can be tested and tuned independently.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of attempts (must be > 0).
	MaxAttempts int

	// BaseDelay is the delay after the first failure; it doubles on each
	// subsequent retry.
	BaseDelay time.Duration
}

// DefaultRetryPolicy returns the policy used for generator calls:
// 3 attempts with 500ms base delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond}
}

// Do runs the operation, retrying failures with exponential backoff.
// Returns the error from the last attempt if all attempts fail. Context
// cancellation is honored both before an attempt and while backing off.
func (p RetryPolicy) Do(ctx context.Context, operation func() error) error {
	if p.MaxAttempts <= 0 {
		return ErrInvalidRetryPolicy
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		slog.Debug("operation failed, will retry",
			"attempt", attempt, "maxAttempts", p.MaxAttempts, "error", lastErr)

		if attempt == p.MaxAttempts {
			break
		}

		// baseDelay * 2^(attempt-1)
		delay := p.BaseDelay
		for i := 1; i < attempt; i++ {
			delay *= 2
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
