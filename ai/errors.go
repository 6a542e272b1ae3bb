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
	"errors"
	"fmt"
)

var (
	// ErrGeneratorUnavailable indicates the generator service was
	// unreachable, timed out, or returned a service error. Callers may
	// retry these.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrCircuitOpen is returned when the ranker circuit breaker rejects
	// a call to prevent hammering a failing generator.
	ErrCircuitOpen = errors.New("generator circuit breaker is open")

	// ErrInvalidRetryPolicy indicates a retry policy with no attempts.
	ErrInvalidRetryPolicy = errors.New("retry policy requires at least one attempt")
)

// MalformedOutputError reports generator output that could not be parsed
// into the expected contract. It carries the raw text for diagnostics.
// Parse failures are not retryable at the transport level and callers
// must treat them as non-fatal: log and degrade to zero matches.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generator output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// IsMalformedOutput reports whether err is (or wraps) a MalformedOutputError.
func IsMalformedOutput(err error) bool {
	var moe *MalformedOutputError
	return errors.As(err, &moe)
}
