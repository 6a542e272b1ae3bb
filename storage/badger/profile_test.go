package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/storage"
)

func newProfile(id core.ID, name string, location string, stage core.Stage) *core.Profile {
	return &core.Profile{
		Id:          id,
		FounderName: name,
		Role:        core.RoleFounder,
		Company:     name + " Inc",
		Location:    location,
		Stage:       stage,
	}
}

func TestProfileRepository_PutGet(t *testing.T) {
	profileRepo, documentRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		documentRepo.Close()
		profileRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	p := newProfile("p1", "Mira Solis", "London, UK", core.StageSeed)
	p.Keywords = "fintech, saas"
	p.LinkedIn = "https://linkedin.com/in/mira-solis"

	require.NoError(t, profileRepo.PutProfiles(ctx, p))

	got, err := profileRepo.GetProfile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProfileRepository_GetMissing(t *testing.T) {
	profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = profileRepo.GetProfile(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProfileRepository_GetEmptyId(t *testing.T) {
	profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	_, err = profileRepo.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestProfileRepository_PutInvalid(t *testing.T) {
	profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	bad := newProfile("p1", "Mira Solis", "Atlantis", core.StageSeed)

	err = profileRepo.PutProfiles(ctx, bad)
	assert.ErrorIs(t, err, core.ErrInvalidProfile)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing should be written when validation fails")
}

func TestProfileRepository_Replace(t *testing.T) {
	profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, profileRepo.PutProfiles(ctx, newProfile("p1", "Mira Solis", "London, UK", core.StageSeed)))

	updated := newProfile("p1", "Mira Solis", "Paris, France", core.StageGrowth)
	require.NoError(t, profileRepo.PutProfiles(ctx, updated))

	got, err := profileRepo.GetProfile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", got.Location)

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProfileRepository_CountAndClear(t *testing.T) {
	profileRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, profileRepo.PutProfiles(ctx,
		newProfile("p1", "Mira Solis", "London, UK", core.StageSeed),
		newProfile("p2", "Tomas Reyes", "Paris, France", core.StageNone),
		newProfile("p3", "Aiko Tanaka", "Toronto, Canada", core.StageGrowth),
	))

	count, err := profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, profileRepo.Clear(ctx))

	count, err = profileRepo.CountProfiles(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
