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


package badger

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/storage"
)

// DocumentRepository implements storage.DocumentRepository on BadgerDB.
// Similarity search is a brute-force cosine scan over all stored
// documents; the dataset is small (hundreds of records) so there is no
// approximate index.
type DocumentRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a document repository on the given backend.
func NewDocumentRepository(backend *Backend) (*DocumentRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &DocumentRepository{
		backend: backend,
		logger:  slog.Default().With("component", "document-repository"),
	}, nil
}

// PutDocuments stores one or more indexed documents, replacing existing
// entries with the same id.
func (r *DocumentRepository) PutDocuments(ctx context.Context, documents ...*core.Document) error {
	for _, d := range documents {
		if err := core.ValidateDocument(d); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, d := range documents {
			key := makeDocumentKey(d.Id)
			if err := tx.Set(key, storage.MarshalDocument(d)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// FindSimilar returns up to limit documents ranked by cosine similarity
// to the query vector. The filter is evaluated before ranking: documents
// that fail the equality conjunction never enter the candidate set.
// Score ties keep the scan's id order.
func (r *DocumentRepository) FindSimilar(ctx context.Context, vector []float32, filter core.Filter, limit int) ([]*core.Candidate, error) {
	if len(vector) == 0 || limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var candidates []*core.Candidate
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.Document
			err := iter.Item().Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			if doc == nil || len(doc.Vector) == 0 {
				continue
			}

			// Hard filter: excluded entirely, not down-ranked.
			if !filter.Matches(doc.Location, doc.Stage) {
				continue
			}

			candidates = append(candidates, &core.Candidate{
				Document: doc,
				Score:    dotProduct(vector, doc.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Stable sort preserves scan (id) order among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// CountDocuments returns the number of indexed documents.
func (r *DocumentRepository) CountDocuments(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(documentRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// Fingerprint returns the dataset fingerprint recorded at index time, or
// storage.ErrNotFound when the index was never built.
func (r *DocumentRepository) Fingerprint(ctx context.Context) (string, error) {
	var fp string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(indexMetaFingerprint))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			fp = string(val)
			return nil
		})
	}, false)
	return fp, err
}

// SetFingerprint records the dataset fingerprint for the current index.
func (r *DocumentRepository) SetFingerprint(ctx context.Context, fp string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(indexMetaFingerprint), []byte(fp)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Clear removes all indexed documents and the fingerprint.
func (r *DocumentRepository) Clear(ctx context.Context) error {
	if err := r.backend.deletePrefix([]byte(documentRecordPrefix)); err != nil {
		return err
	}
	return r.backend.deletePrefix([]byte(indexMetaFingerprint))
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *DocumentRepository) Close() error {
	return nil
}

// dotProduct computes the dot product of two vectors. Embedding vectors
// are unit-normalized, so this equals cosine similarity. Mismatched
// lengths compare over the shorter prefix.
func dotProduct(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
