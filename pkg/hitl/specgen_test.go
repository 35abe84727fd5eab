package hitl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/models"
)

func TestParseSpecReply(t *testing.T) {
	t.Run("valid spec with surrounding prose", func(t *testing.T) {
		spec, err := parseSpecReply("Here is the spec:\n```json\n" + `{
			"title": "URL Shortener",
			"summary": "Shortens links.",
			"features": [
				{"id": "shorten", "title": "Shorten endpoint",
				 "acceptance": [{"id": "shorten-ac-1", "text": "POST /api/shorten returns a code"}]}
			],
			"acceptance": ["service boots and serves traffic"]
		}` + "\n```")
		require.NoError(t, err)
		assert.Equal(t, "URL Shortener", spec.Title)
		require.Len(t, spec.Features, 1)
		assert.Equal(t, "shorten", spec.Features[0].ID)
		require.Len(t, spec.Features[0].Acceptance, 1)
	})

	t.Run("structurally invalid spec is rejected", func(t *testing.T) {
		_, err := parseSpecReply(`{"title": "No Features", "features": []}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no features")
	})

	t.Run("prose is rejected", func(t *testing.T) {
		_, err := parseSpecReply("I would build a URL shortener with two endpoints.")
		require.Error(t, err)
	})
}

func TestSpecMapRoundTrip(t *testing.T) {
	spec := &models.Spec{
		Title:   "URL Shortener",
		Summary: "Shortens links.",
		Goals:   []string{"fast redirects"},
		Features: []models.SpecFeature{{
			ID:    "shorten",
			Title: "Shorten endpoint",
			Acceptance: []models.AcceptanceCriterion{
				{ID: "shorten-ac-1", Text: "POST /api/shorten returns a code", Status: models.CriterionPending},
			},
		}},
		Acceptance: []string{"service boots"},
	}

	blob, err := specToMap(spec)
	require.NoError(t, err)
	assert.Equal(t, "URL Shortener", blob["title"])

	back, err := specFromMap(blob)
	require.NoError(t, err)
	assert.Equal(t, spec, back)

	_, err = specFromMap(nil)
	require.Error(t, err)
}
