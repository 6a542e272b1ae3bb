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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/veridian-labs/cofoundry/ai"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/storage"
)

const defaultBatchSize = 32

// Pipeline orchestrates index builds from a profile dataset.
// Embedding batches run concurrently on a worker pool.
type Pipeline struct {
	profiles  storage.ProfileRepository
	documents storage.DocumentRepository
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are embedded per request.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.batchSize = size
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	profiles storage.ProfileRepository,
	documents storage.DocumentRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profiles:  profiles,
		documents: documents,
		embedder:  provider.Embedder(),
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IndexProfiles rebuilds the index from the given dataset.
// Every profile is validated before any write happens; embedding runs
// in concurrent batches. On success the stored profiles, documents, and
// fingerprint all reflect the new dataset. On failure nothing is
// replaced. Returns the number of documents indexed.
func (p *Pipeline) IndexProfiles(ctx context.Context, dataset []*core.Profile) (int, error) {
	if len(dataset) == 0 {
		return 0, ErrNoProfiles
	}

	for _, profile := range dataset {
		if err := core.ValidateProfile(profile); err != nil {
			return 0, err
		}
	}

	p.logger.Info("building index", "profiles", len(dataset))
	start := time.Now()

	docs := make([]*core.Document, len(dataset))
	for i, profile := range dataset {
		docs[i] = core.RenderDocument(profile)
	}

	if err := p.embedDocuments(ctx, docs); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, doc := range docs {
		doc.IndexedAt = now
	}

	// All embeddings succeeded, replace the old index
	if err := p.documents.Clear(ctx); err != nil {
		return 0, err
	}
	if err := p.profiles.Clear(ctx); err != nil {
		return 0, err
	}
	if err := p.profiles.PutProfiles(ctx, dataset...); err != nil {
		return 0, err
	}
	if err := p.documents.PutDocuments(ctx, docs...); err != nil {
		return 0, err
	}
	if err := p.documents.SetFingerprint(ctx, core.FingerprintProfiles(dataset)); err != nil {
		return 0, err
	}

	p.logger.Info("index built",
		"documents", len(docs),
		"duration", time.Since(start))
	return len(docs), nil
}

// embedDocuments fills in the vector of every document, batching
// requests across the worker pool. The first batch error wins.
func (p *Pipeline) embedDocuments(ctx context.Context, docs []*core.Document) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(docs); start += p.batchSize {
		end := start + p.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, doc := range batch {
				texts[i] = doc.Text
			}

			vectors, err := p.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(vectors) != len(batch) {
				err = fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(vectors))
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			for i := range vectors {
				batch[i].Vector = vectors[i]
			}
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
	}

	wg.Wait()
	return firstErr
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
