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


package storage

import (
	"context"

	"github.com/veridian-labs/cofoundry/core"
)

// ProfileRepository is the record store: full profile records keyed by
// their producer-assigned identifier. The pipeline only reads profiles;
// writes happen during (re)indexing.
// Implementations must be safe for concurrent use.
type ProfileRepository interface {
	// PutProfiles stores one or more profiles, replacing existing records
	// with the same id. Profiles are validated before storage.
	PutProfiles(ctx context.Context, profiles ...*core.Profile) error

	// GetProfile returns the profile with the given id.
	// Returns ErrNotFound if no such profile exists.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// CountProfiles returns the number of stored profiles.
	CountProfiles(ctx context.Context) (int, error)

	// Clear removes all stored profiles. Used for wholesale rebuilds.
	Clear(ctx context.Context) error

	// Close releases resources held by the repository.
	Close() error
}

// DocumentRepository is the vector index: embedded document projections
// with the metadata needed for hard filtering, plus the dataset
// fingerprint written at index time.
// Implementations must be safe for concurrent use.
type DocumentRepository interface {
	// PutDocuments stores one or more indexed documents, replacing
	// existing entries with the same id.
	PutDocuments(ctx context.Context, documents ...*core.Document) error

	// FindSimilar returns up to limit documents ranked by similarity to
	// the query vector. The filter is an equality conjunction evaluated
	// before ranking: non-matching documents are excluded entirely, not
	// down-ranked. Ties in score keep the index's native id order.
	FindSimilar(ctx context.Context, vector []float32, filter core.Filter, limit int) ([]*core.Candidate, error)

	// CountDocuments returns the number of indexed documents.
	CountDocuments(ctx context.Context) (int, error)

	// Fingerprint returns the dataset fingerprint recorded by the last
	// index build, or ErrNotFound if the index was never built.
	Fingerprint(ctx context.Context) (string, error)

	// SetFingerprint records the dataset fingerprint for the current
	// index contents.
	SetFingerprint(ctx context.Context, fp string) error

	// Clear removes all indexed documents and the fingerprint.
	Clear(ctx context.Context) error

	// Close releases resources held by the repository.
	Close() error
}
