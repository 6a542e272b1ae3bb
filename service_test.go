package cofoundry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/ai/mock"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/dataset"
	"github.com/veridian-labs/cofoundry/search"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService("", WithInMemoryStorage(), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestService_IndexThenSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	initialized, err := svc.Initialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	profiles := dataset.NewGenerator(42).Generate(30)

	pipeline, err := svc.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	indexed, err := pipeline.IndexProfiles(ctx, profiles)
	require.NoError(t, err)
	assert.Equal(t, 30, indexed)

	initialized, err = svc.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)

	searcher, err := svc.NewSearcher()
	require.NoError(t, err)

	results, err := searcher.Search(ctx, "experienced technical founders")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 5)
	for _, r := range results {
		assert.Equal(t, core.SearchFields, r.Provenance.MatchedOnFields)
	}
}

func TestService_SearchBeforeIndex(t *testing.T) {
	svc := newTestService(t)

	searcher, err := svc.NewSearcher()
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), "anyone at all")
	assert.ErrorIs(t, err, search.ErrNotInitialized)
}

func TestService_Staleness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profiles := dataset.NewGenerator(1).Generate(5)

	stale, err := svc.Stale(ctx, core.FingerprintProfiles(profiles))
	require.NoError(t, err)
	assert.True(t, stale, "missing index is stale")

	pipeline, err := svc.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()
	_, err = pipeline.IndexProfiles(ctx, profiles)
	require.NoError(t, err)

	stale, err = svc.Stale(ctx, core.FingerprintProfiles(profiles))
	require.NoError(t, err)
	assert.False(t, stale)

	changed := dataset.NewGenerator(2).Generate(5)
	stale, err = svc.Stale(ctx, core.FingerprintProfiles(changed))
	require.NoError(t, err)
	assert.True(t, stale)
}
