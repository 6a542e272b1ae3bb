package dataset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/core"
)

func TestGenerate_ProducesValidProfiles(t *testing.T) {
	profiles := NewGenerator(42).Generate(100)
	require.Len(t, profiles, 100)

	seen := make(map[core.ID]bool, len(profiles))
	for _, p := range profiles {
		require.NoError(t, core.ValidateProfile(p))
		assert.False(t, seen[p.Id], "duplicate id %s", p.Id)
		seen[p.Id] = true
		assert.NotEmpty(t, p.Idea)
		assert.NotEmpty(t, p.Keywords)
		assert.Contains(t, p.LinkedIn, "linkedin.com/in/")
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a := NewGenerator(7).Generate(20)
	b := NewGenerator(7).Generate(20)
	require.Equal(t, a, b)

	c := NewGenerator(8).Generate(20)
	assert.NotEqual(t, a, c)
}

func TestCSV_RoundTrip(t *testing.T) {
	profiles := NewGenerator(1).Generate(25)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, profiles))

	loaded, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, profiles, loaded)
}

func TestReadCSV_MissingColumn(t *testing.T) {
	in := bytes.NewBufferString("id,founder_name\nf1,Ada\n")
	_, err := ReadCSV(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadCSV_InvalidRow(t *testing.T) {
	profiles := NewGenerator(3).Generate(1)
	profiles[0].Location = "Atlantis"

	var buf bytes.Buffer
	// Bypass generator validation by writing the bad row directly
	require.NoError(t, WriteCSV(&buf, profiles))

	_, err := ReadCSV(&buf)
	assert.ErrorIs(t, err, core.ErrInvalidLocation)
}
