package hitl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/models"
)

func TestParseTurnReply(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		reply, err := parseTurnReply(`{
			"message": "Which database do you want?",
			"gathered": {"tech_stack": {"language": "go"}},
			"progress": 40,
			"ready_for_spec": false,
			"next_category": "scale"
		}`)
		require.NoError(t, err)
		assert.Equal(t, "Which database do you want?", reply.Message)
		assert.Equal(t, "go", reply.Gathered["tech_stack"]["language"])
		assert.Equal(t, 40, reply.Progress)
		assert.False(t, reply.ReadyForSpec)
		assert.Equal(t, "scale", reply.NextCategory)
	})

	t.Run("tolerates prose and markdown fences", func(t *testing.T) {
		reply, err := parseTurnReply("Sure, here it is:\n```json\n" +
			`{"message": "How many users?", "gathered": {"scale": {"rps": "100"}}}` +
			"\n```\nHope that helps.")
		require.NoError(t, err)
		assert.Equal(t, "How many users?", reply.Message)
		assert.Equal(t, "100", reply.Gathered["scale"]["rps"])
	})

	t.Run("rejects a reply with no message", func(t *testing.T) {
		_, err := parseTurnReply(`{"gathered": {"scale": {"rps": "100"}}}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no message")
	})

	t.Run("rejects prose with no JSON object", func(t *testing.T) {
		_, err := parseTurnReply("I think you should use Postgres.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no JSON object")
	})

	t.Run("rejects broken JSON", func(t *testing.T) {
		_, err := parseTurnReply(`{"message": "hi", "gathered": }`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})
}

func TestMergeGathered(t *testing.T) {
	prior := models.GatheredContext{
		"scale": {"rps": "100", "region": "us-east-1"},
	}
	update := models.GatheredContext{
		"scale":      {"rps": "500", "storage": "s3"},
		"tech_stack": {"language": "go"},
	}

	merged, err := mergeGathered(prior, update)
	require.NoError(t, err)

	// This turn's answer wins, older facts survive.
	assert.Equal(t, "500", merged["scale"]["rps"])
	assert.Equal(t, "us-east-1", merged["scale"]["region"])
	assert.Equal(t, "s3", merged["scale"]["storage"])
	assert.Equal(t, "go", merged["tech_stack"]["language"])

	// The prior snapshot is not mutated.
	assert.Equal(t, "100", prior["scale"]["rps"])
	assert.NotContains(t, prior["scale"], "storage")
	assert.NotContains(t, prior, "tech_stack")
}

func TestComputeCoverage(t *testing.T) {
	weights := config.DefaultHITLConfig().CategoryWeights

	t.Run("empty context scores zero", func(t *testing.T) {
		cov := computeCoverage(models.GatheredContext{}, weights)
		assert.Equal(t, 0, cov.Total)
		for cat := range weights {
			assert.Equal(t, 0, cov.Categories[cat])
		}
	})

	t.Run("one field is a third of its category", func(t *testing.T) {
		cov := computeCoverage(models.GatheredContext{
			"scale": {"rps": "100"},
		}, weights)
		assert.Equal(t, 33, cov.Categories["scale"])
		// scale carries weight 15, so 33% of it rounds down to 4 overall.
		assert.Equal(t, 4, cov.Total)
	})

	t.Run("categories saturate at the target field count", func(t *testing.T) {
		cov := computeCoverage(models.GatheredContext{
			"features": {"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"},
		}, weights)
		assert.Equal(t, 100, cov.Categories["features"])
		assert.Equal(t, 25, cov.Total)
	})

	t.Run("empty values and unknown categories do not count", func(t *testing.T) {
		cov := computeCoverage(models.GatheredContext{
			"constraints": {"budget": "", "region": nil, "notes": []any{}},
			"deployment":  {"target": "ecs"},
		}, weights)
		assert.Equal(t, 0, cov.Categories["constraints"])
		assert.NotContains(t, cov.Categories, "deployment")
		assert.Equal(t, 0, cov.Total)
	})

	t.Run("three fields everywhere is full coverage", func(t *testing.T) {
		full := models.GatheredContext{}
		for cat := range weights {
			full[cat] = map[string]any{"a": "1", "b": "2", "c": "3"}
		}
		cov := computeCoverage(full, weights)
		assert.Equal(t, 100, cov.Total)
	})
}

func TestWeakestCategory(t *testing.T) {
	weights := map[string]int{"alpha": 10, "beta": 30, "gamma": 30}

	t.Run("lowest score wins", func(t *testing.T) {
		cov := models.Coverage{Categories: map[string]int{"alpha": 50, "beta": 20, "gamma": 80}}
		assert.Equal(t, "beta", weakestCategory(cov, weights))
	})

	t.Run("score ties break on weight, then name", func(t *testing.T) {
		cov := models.Coverage{Categories: map[string]int{"alpha": 0, "beta": 0, "gamma": 0}}
		assert.Equal(t, "beta", weakestCategory(cov, weights))
	})

	t.Run("fresh session points at the heaviest default category", func(t *testing.T) {
		defaults := config.DefaultHITLConfig().CategoryWeights
		assert.Equal(t, config.CategoryFeatures, weakestCategory(models.Coverage{}, defaults))
	})
}

func TestCoverageFromSession(t *testing.T) {
	sess := &ent.Session{
		Progress: 42,
		Coverage: map[string]interface{}{
			"total": float64(42),
			"categories": map[string]any{
				"scale":      float64(66),
				"tech_stack": 33,
			},
		},
	}
	cov := coverageFromSession(sess)
	assert.Equal(t, 42, cov.Total)
	assert.Equal(t, 66, cov.Categories["scale"])
	assert.Equal(t, 33, cov.Categories["tech_stack"])

	bare := coverageFromSession(&ent.Session{Progress: 7})
	assert.Equal(t, 7, bare.Total)
	assert.Nil(t, bare.Categories)
}

func TestGatheredFromSession(t *testing.T) {
	sess := &ent.Session{GatheredContext: map[string]interface{}{
		"scale":   map[string]any{"rps": "100"},
		"garbage": "not a category map",
	}}
	g := gatheredFromSession(sess)
	assert.Equal(t, models.GatheredContext{"scale": {"rps": "100"}}, g)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "url-shortener", slugify("URL Shortener!"))
	assert.Equal(t, "chat-app-v2", slugify("  Chat App (v2) "))
	assert.Equal(t, "untitled", slugify("!!!"))
}
