package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/storage"
)

func newDocument(id core.ID, location string, stage core.Stage, vector []float32) *core.Document {
	return &core.Document{
		Id:        id,
		Location:  location,
		Stage:     stage,
		Text:      "Founder: " + string(id) + ".",
		Vector:    vector,
		IndexedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestDocumentRepository_FindSimilar_Ranking(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, documentRepo.PutDocuments(ctx,
		newDocument("d1", "London, UK", core.StageSeed, []float32{1, 0, 0}),
		newDocument("d2", "London, UK", core.StageSeed, []float32{0.5, 0.5, 0}),
		newDocument("d3", "London, UK", core.StageSeed, []float32{0, 1, 0}),
	))

	candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0}, core.Filter{}, 10)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, core.ID("d1"), candidates[0].Document.Id)
	assert.Equal(t, core.ID("d2"), candidates[1].Document.Id)
	assert.Equal(t, core.ID("d3"), candidates[2].Document.Id)
	assert.Greater(t, candidates[0].Score, candidates[1].Score)
}

func TestDocumentRepository_FindSimilar_HardFilter(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, documentRepo.PutDocuments(ctx,
		newDocument("d1", "London, UK", core.StageSeed, []float32{1, 0, 0}),
		newDocument("d2", "Paris, France", core.StageSeed, []float32{1, 0, 0}),
		newDocument("d3", "London, UK", core.StageGrowth, []float32{1, 0, 0}),
	))

	t.Run("location filter", func(t *testing.T) {
		candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0}, core.Filter{Location: "Paris, France"}, 10)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, core.ID("d2"), candidates[0].Document.Id)
	})

	t.Run("stage filter", func(t *testing.T) {
		candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0}, core.Filter{Stage: core.StageGrowth}, 10)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, core.ID("d3"), candidates[0].Document.Id)
	})

	t.Run("conjunction", func(t *testing.T) {
		candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0},
			core.Filter{Location: "London, UK", Stage: core.StageSeed}, 10)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, core.ID("d1"), candidates[0].Document.Id)
	})

	t.Run("filter with no survivors yields empty set", func(t *testing.T) {
		candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0},
			core.Filter{Stage: core.StagePreSeed}, 10)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}

func TestDocumentRepository_FindSimilar_TieBreakById(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	// Insert out of id order; identical vectors give identical scores.
	require.NoError(t, documentRepo.PutDocuments(ctx,
		newDocument("d3", "London, UK", core.StageSeed, []float32{1, 0, 0}),
		newDocument("d1", "London, UK", core.StageSeed, []float32{1, 0, 0}),
		newDocument("d2", "London, UK", core.StageSeed, []float32{1, 0, 0}),
	))

	candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0}, core.Filter{}, 10)
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, core.ID("d1"), candidates[0].Document.Id)
	assert.Equal(t, core.ID("d2"), candidates[1].Document.Id)
	assert.Equal(t, core.ID("d3"), candidates[2].Document.Id)
}

func TestDocumentRepository_FindSimilar_Limit(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	docs := make([]*core.Document, 0, 8)
	for _, id := range []core.ID{"a", "b", "c", "d", "e", "f", "g", "h"} {
		docs = append(docs, newDocument(id, "London, UK", core.StageSeed, []float32{1, 0, 0}))
	}
	require.NoError(t, documentRepo.PutDocuments(ctx, docs...))

	candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0}, core.Filter{}, 5)
	require.NoError(t, err)
	assert.Len(t, candidates, 5)
}

func TestDocumentRepository_FindSimilar_SkipsUnembedded(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, documentRepo.PutDocuments(ctx,
		newDocument("d1", "London, UK", core.StageSeed, []float32{1, 0, 0}),
		newDocument("d2", "London, UK", core.StageSeed, nil),
	))

	candidates, err := documentRepo.FindSimilar(ctx, []float32{1, 0, 0}, core.Filter{}, 10)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, core.ID("d1"), candidates[0].Document.Id)
}

func TestDocumentRepository_FindSimilar_InvalidArgs(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	_, err = documentRepo.FindSimilar(ctx, nil, core.Filter{}, 10)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)

	_, err = documentRepo.FindSimilar(ctx, []float32{1}, core.Filter{}, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestDocumentRepository_Fingerprint(t *testing.T) {
	_, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	_, err = documentRepo.Fingerprint(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound, "fingerprint should be absent before indexing")

	require.NoError(t, documentRepo.SetFingerprint(ctx, "abc123"))

	fp, err := documentRepo.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", fp)

	require.NoError(t, documentRepo.Clear(ctx))
	_, err = documentRepo.Fingerprint(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound, "clear should drop the fingerprint")
}

func TestDocumentRepository_ClearLeavesProfiles(t *testing.T) {
	profileRepo, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, profileRepo.PutProfiles(ctx, newProfile("p1", "Mira Solis", "London, UK", core.StageSeed)))
	require.NoError(t, documentRepo.PutDocuments(ctx, newDocument("p1", "London, UK", core.StageSeed, []float32{1})))

	require.NoError(t, documentRepo.Clear(ctx))

	count, err := documentRepo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	profiles, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, profiles)
}
