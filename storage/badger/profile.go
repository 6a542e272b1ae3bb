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

	"github.com/dgraph-io/badger/v4"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/storage"
)

// ProfileRepository implements storage.ProfileRepository on BadgerDB.
type ProfileRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository creates a profile repository on the given backend.
func NewProfileRepository(backend *Backend) (*ProfileRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &ProfileRepository{
		backend: backend,
		logger:  slog.Default().With("component", "profile-repository"),
	}, nil
}

// PutProfiles stores one or more profiles, replacing existing records
// with the same id. Every profile is validated first; nothing is written
// if any profile fails validation.
func (r *ProfileRepository) PutProfiles(ctx context.Context, profiles ...*core.Profile) error {
	for _, p := range profiles {
		if err := core.ValidateProfile(p); err != nil {
			return err
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, p := range profiles {
			key := makeProfileKey(p.Id)
			if err := tx.Set(key, storage.MarshalProfile(p)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProfile returns the profile with the given id, or storage.ErrNotFound.
func (r *ProfileRepository) GetProfile(ctx context.Context, id core.ID) (*core.Profile, error) {
	if id == "" {
		return nil, storage.ErrInvalidQuery
	}

	var profile *core.Profile
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProfileKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			profile, err = storage.UnmarshalProfile(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// CountProfiles returns the number of stored profiles.
func (r *ProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileRecordPrefix)
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

// Clear removes all stored profiles.
func (r *ProfileRepository) Clear(ctx context.Context) error {
	return r.backend.deletePrefix([]byte(profileRecordPrefix))
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *ProfileRepository) Close() error {
	return nil
}
