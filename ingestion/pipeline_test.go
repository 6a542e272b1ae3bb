package ingestion

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/ai/mock"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/storage"
	"github.com/veridian-labs/cofoundry/storage/badger"
)

func newDatasetProfile(id string) *core.Profile {
	return &core.Profile{
		Id:          core.ID(id),
		FounderName: "Founder " + id,
		Email:       id + "@example.com",
		Role:        core.RoleFounder,
		Company:     "Company " + id,
		Location:    "Berlin, Germany",
		Idea:        "Developer tooling for data teams",
		About:       "Second-time founder.",
		Keywords:    "devtools, saas",
		Stage:       core.StageSeed,
	}
}

func TestNewPipeline_Validation(t *testing.T) {
	profileRepo, documentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	provider := mock.NewMockProvider()

	t.Run("valid", func(t *testing.T) {
		p, err := NewPipeline(profileRepo, documentRepo, provider)
		require.NoError(t, err)
		defer p.Release()
		assert.NotNil(t, p)
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewPipeline(nil, documentRepo, provider)
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})

	t.Run("nil document repository", func(t *testing.T) {
		_, err := NewPipeline(profileRepo, nil, provider)
		assert.Equal(t, ErrDocumentRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(profileRepo, documentRepo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestIndexProfiles_BuildsIndex(t *testing.T) {
	profileRepo, documentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	p, err := NewPipeline(profileRepo, documentRepo, mock.NewMockProvider(), WithBatchSize(2))
	require.NoError(t, err)
	defer p.Release()

	dataset := []*core.Profile{
		newDatasetProfile("f1"),
		newDatasetProfile("f2"),
		newDatasetProfile("f3"),
	}

	ctx := context.Background()
	indexed, err := p.IndexProfiles(ctx, dataset)
	require.NoError(t, err)
	assert.Equal(t, 3, indexed)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	docCount, err := documentRepo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, docCount)

	fp, err := documentRepo.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.FingerprintProfiles(dataset), fp)
}

func TestIndexProfiles_EmptyDataset(t *testing.T) {
	profileRepo, documentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	p, err := NewPipeline(profileRepo, documentRepo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	_, err = p.IndexProfiles(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoProfiles)
}

func TestIndexProfiles_InvalidProfileRejected(t *testing.T) {
	profileRepo, documentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	p, err := NewPipeline(profileRepo, documentRepo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	bad := newDatasetProfile("f1")
	bad.Location = "Atlantis"

	ctx := context.Background()
	_, err = p.IndexProfiles(ctx, []*core.Profile{bad})
	assert.ErrorIs(t, err, core.ErrInvalidLocation)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIndexProfiles_EmbeddingFailurePreservesIndex(t *testing.T) {
	profileRepo, documentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	provider := mock.NewMockProvider().(*mock.MockProvider)
	p, err := NewPipeline(profileRepo, documentRepo, provider)
	require.NoError(t, err)
	defer p.Release()

	ctx := context.Background()

	// First build succeeds
	first := []*core.Profile{newDatasetProfile("f1")}
	_, err = p.IndexProfiles(ctx, first)
	require.NoError(t, err)

	// Second build fails during embedding
	provider.GetMockEmbedder().EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, fmt.Errorf("embedding service down")
	}
	_, err = p.IndexProfiles(ctx, []*core.Profile{newDatasetProfile("f2")})
	require.Error(t, err)

	// Old index is intact
	_, err = profileRepo.GetProfile(ctx, "f1")
	require.NoError(t, err)
	fp, err := documentRepo.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.FingerprintProfiles(first), fp)
}

func TestIndexProfiles_RebuildReplacesDataset(t *testing.T) {
	profileRepo, documentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	p, err := NewPipeline(profileRepo, documentRepo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	ctx := context.Background()

	_, err = p.IndexProfiles(ctx, []*core.Profile{newDatasetProfile("f1"), newDatasetProfile("f2")})
	require.NoError(t, err)

	replacement := []*core.Profile{newDatasetProfile("f9")}
	_, err = p.IndexProfiles(ctx, replacement)
	require.NoError(t, err)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = profileRepo.GetProfile(ctx, "f1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	fp, err := documentRepo.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.FingerprintProfiles(replacement), fp)
}
