package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veridian-labs/cofoundry/ai"
)

func TestParseRankedMatches_PlainArray(t *testing.T) {
	raw := `[{"id": "f1", "match_explanation": "Strong fintech overlap."}, {"id": "f2", "match_explanation": "Same stage and market."}]`

	matches, err := parseRankedMatches(raw)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "f1", matches[0].Id)
	assert.Equal(t, "Strong fintech overlap.", matches[0].Explanation)
	assert.Equal(t, "f2", matches[1].Id)
}

func TestParseRankedMatches_FencedArray(t *testing.T) {
	raw := "```json\n[{\"id\": \"f3\", \"match_explanation\": \"Complementary skills.\"}]\n```"

	matches, err := parseRankedMatches(raw)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "f3", matches[0].Id)
}

func TestParseRankedMatches_EmptyArray(t *testing.T) {
	matches, err := parseRankedMatches("[]")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestParseRankedMatches_SingleObject(t *testing.T) {
	raw := `{"id": "f7", "match_explanation": "Only plausible match."}`

	matches, err := parseRankedMatches(raw)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "f7", matches[0].Id)
}

func TestParseRankedMatches_Malformed(t *testing.T) {
	matches, err := parseRankedMatches("I think the best candidates are f1 and f2.")
	require.Error(t, err)
	assert.Nil(t, matches)
	assert.True(t, ai.IsMalformedOutput(err))

	var malformed *ai.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, "best candidates")
}

func TestParseRankedMatches_ObjectWithoutId(t *testing.T) {
	matches, err := parseRankedMatches(`{"match_explanation": "no id here"}`)
	require.Error(t, err)
	assert.Nil(t, matches)
	assert.True(t, ai.IsMalformedOutput(err))
}

func TestRepairJSON_MissingOpeningQuote(t *testing.T) {
	broken := `[{"id": "f1", match_explanation": "Fits the query."}]`
	repaired := repairJSON(broken)
	assert.Equal(t, `[{"id": "f1", "match_explanation": "Fits the query."}]`, repaired)
}

func TestRepairJSON_WellFormedUnchanged(t *testing.T) {
	good := `[{"id": "f1", "match_explanation": "Fits."}]`
	assert.Equal(t, good, repairJSON(good))
}
