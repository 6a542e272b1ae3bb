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


package cofoundry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/veridian-labs/cofoundry/ai"
	"github.com/veridian-labs/cofoundry/ai/openai"
	"github.com/veridian-labs/cofoundry/ingestion"
	"github.com/veridian-labs/cofoundry/search"
	"github.com/veridian-labs/cofoundry/storage"
	"github.com/veridian-labs/cofoundry/storage/badger"
)

// Service wires the storage backend, repositories, and AI provider into
// one owner with a single Close.
type Service struct {
	backend      *badger.Backend
	profileRepo  storage.ProfileRepository
	documentRepo storage.DocumentRepository
	provider     ai.AIProvider
	logger       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithAIProvider injects a pre-built AI provider, bypassing the OpenAI
// client construction. Used by tests and embedders with custom stacks.
func WithAIProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps all data in memory instead of on disk.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens the database at filePath and wires the full stack.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	profileRepo, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	documentRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		profileRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			documentRepo.Close()
			profileRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		backend:      backend,
		profileRepo:  profileRepo,
		documentRepo: documentRepo,
		provider:     provider,
		logger:       slog.Default(),
	}, nil
}

// Close releases the AI provider, repositories, and backend.
func (s *Service) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.documentRepo.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := s.profileRepo.Close(); err != nil {
		s.logger.Error("error closing profile repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ProfileRepository exposes the profile record store.
func (s *Service) ProfileRepository() storage.ProfileRepository {
	return s.profileRepo
}

// DocumentRepository exposes the document index store.
func (s *Service) DocumentRepository() storage.DocumentRepository {
	return s.documentRepo
}

// Initialized reports whether an index has been built in this database.
func (s *Service) Initialized(ctx context.Context) (bool, error) {
	_, err := s.documentRepo.Fingerprint(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Stale reports whether the stored index was built from a different
// dataset than the given one.
func (s *Service) Stale(ctx context.Context, fingerprint string) (bool, error) {
	stored, err := s.documentRepo.Fingerprint(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return stored != fingerprint, nil
}

// NewIngestionPipeline builds an ingestion pipeline over this service's
// repositories and provider.
func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.profileRepo, s.documentRepo, s.provider, opts...)
}

// NewSearcher builds a searcher over this service's repositories and
// provider.
func (s *Service) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(s.profileRepo, s.documentRepo, s.provider, opts...)
}
