package ticketgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
)

func buildableSpec() *models.Spec {
	return &models.Spec{
		Title:   "URL shortener",
		Summary: "Shorten URLs and redirect visitors",
		Features: []models.SpecFeature{
			{
				ID:    "shorten",
				Title: "Shorten endpoint",
				Acceptance: []models.AcceptanceCriterion{
					{ID: "ac-short-code", Text: "POST /shorten returns a short code"},
					{Text: "short codes are unique"},
				},
			},
			{
				Title: "Redirect endpoint",
				Acceptance: []models.AcceptanceCriterion{
					{Text: "GET /:code responds with a 302 to the original URL"},
				},
			},
		},
		Acceptance: []string{
			"shorten then redirect round-trips",
			"unknown codes return 404",
		},
	}
}

func seedsByKind(seeds []models.TicketSeed, kind string) []models.TicketSeed {
	var out []models.TicketSeed
	for _, s := range seeds {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestGenerate_EmitsStandingStructure(t *testing.T) {
	seeds, err := Generate(buildableSpec(), Options{MaxAttempts: 5})
	require.NoError(t, err)
	require.Len(t, seeds, 5, "epic + two features + verification + packaging")

	ids := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		assert.True(t, strings.HasPrefix(s.ID, "tkt-"), "id %s", s.ID)
		assert.False(t, ids[s.ID], "id %s reused", s.ID)
		ids[s.ID] = true
		assert.Equal(t, 5, s.MaxAttempts)
	}

	epic := seeds[0]
	require.Equal(t, models.TicketKindEpic, epic.Kind)
	assert.Equal(t, "URL shortener", epic.Title)
	assert.Equal(t, "Shorten URLs and redirect visitors", epic.Description)
	assert.Equal(t, models.AssigneeHuman, epic.AssigneeKind)
	assert.Empty(t, epic.ParentID)
	rest := make([]string, 0, 4)
	for _, s := range seeds[1:] {
		rest = append(rest, s.ID)
	}
	assert.ElementsMatch(t, rest, epic.DependsOn, "epic tracks every other ticket")

	features := seedsByKind(seeds, models.TicketKindFeature)
	require.Len(t, features, 2)

	shorten := features[0]
	assert.Equal(t, "Shorten endpoint", shorten.Title)
	assert.Equal(t, "shorten", shorten.FeatureID)
	assert.Equal(t, epic.ID, shorten.ParentID)
	assert.Empty(t, shorten.DependsOn, "features are independent roots")
	require.Len(t, shorten.AcceptanceCriteria, 2)
	assert.Equal(t, "ac-short-code", shorten.AcceptanceCriteria[0].ID)
	assert.Equal(t, models.CriterionPending, shorten.AcceptanceCriteria[0].Status)
	assert.Equal(t, "shorten-ac-2", shorten.AcceptanceCriteria[1].ID)

	redirect := features[1]
	assert.Equal(t, "feat-2", redirect.FeatureID, "unnamed features get positional ids")
	require.Len(t, redirect.AcceptanceCriteria, 1)
	assert.Equal(t, "feat-2-ac-1", redirect.AcceptanceCriteria[0].ID)

	verifications := seedsByKind(seeds, models.TicketKindVerification)
	require.Len(t, verifications, 1)
	verify := verifications[0]
	assert.ElementsMatch(t, []string{features[0].ID, features[1].ID}, verify.DependsOn)
	require.Len(t, verify.AcceptanceCriteria, 2)
	assert.Equal(t, "spec-ac-1", verify.AcceptanceCriteria[0].ID)
	assert.Equal(t, "shorten then redirect round-trips", verify.AcceptanceCriteria[0].Text)

	packagings := seedsByKind(seeds, models.TicketKindPackaging)
	require.Len(t, packagings, 1)
	assert.Equal(t, []string{verify.ID}, packagings[0].DependsOn,
		"packaging waits for verification alone")
}

func TestGenerate_SingleFeature(t *testing.T) {
	spec := &models.Spec{
		Title:    "health probe",
		Features: []models.SpecFeature{{Title: "liveness endpoint"}},
	}

	seeds, err := Generate(spec, Options{})
	require.NoError(t, err)
	require.Len(t, seeds, 4)

	features := seedsByKind(seeds, models.TicketKindFeature)
	require.Len(t, features, 1)
	assert.Equal(t, "feat-1", features[0].FeatureID)
	assert.Empty(t, features[0].AcceptanceCriteria)

	verify := seedsByKind(seeds, models.TicketKindVerification)[0]
	assert.Equal(t, []string{features[0].ID}, verify.DependsOn)
	assert.Empty(t, verify.AcceptanceCriteria, "no spec-level acceptance to carry")
	assert.Len(t, seeds[0].DependsOn, 3)
}

func TestGenerate_RejectsUnbuildableSpec(t *testing.T) {
	cases := []struct {
		name string
		spec *models.Spec
	}{
		{"nil spec", nil},
		{"untitled", &models.Spec{Features: []models.SpecFeature{{Title: "x"}}}},
		{"no features", &models.Spec{Title: "empty"}},
		{"untitled feature", &models.Spec{Title: "x", Features: []models.SpecFeature{{Description: "no title"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seeds, err := Generate(tc.spec, Options{})
			require.Error(t, err)
			assert.Equal(t, fault.Fatal, fault.ClassOf(err))
			assert.Nil(t, seeds)
		})
	}
}

func TestValidateDAG(t *testing.T) {
	seed := func(id string, deps ...string) models.TicketSeed {
		return models.TicketSeed{ID: id, Kind: models.TicketKindFeature, Title: id, DependsOn: deps}
	}

	t.Run("chain and diamond pass", func(t *testing.T) {
		require.NoError(t, ValidateDAG([]models.TicketSeed{
			seed("tkt-a"), seed("tkt-b", "tkt-a"), seed("tkt-c", "tkt-b"),
		}))
		require.NoError(t, ValidateDAG([]models.TicketSeed{
			seed("tkt-a"),
			seed("tkt-b", "tkt-a"),
			seed("tkt-c", "tkt-a"),
			seed("tkt-d", "tkt-b", "tkt-c"),
		}))
	})

	t.Run("cycle is fatal and names the stuck tickets", func(t *testing.T) {
		err := ValidateDAG([]models.TicketSeed{
			seed("tkt-a", "tkt-c"),
			seed("tkt-b", "tkt-a"),
			seed("tkt-c", "tkt-b"),
		})
		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
		for _, id := range []string{"tkt-a", "tkt-b", "tkt-c"} {
			assert.ErrorContains(t, err, id)
		}
	})

	t.Run("self dependency is a cycle", func(t *testing.T) {
		err := ValidateDAG([]models.TicketSeed{seed("tkt-a", "tkt-a")})
		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	})

	t.Run("unknown reference", func(t *testing.T) {
		err := ValidateDAG([]models.TicketSeed{seed("tkt-a", "tkt-ghost")})
		require.Error(t, err)
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
		assert.ErrorContains(t, err, "unknown ticket tkt-ghost")
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := ValidateDAG([]models.TicketSeed{seed("tkt-a"), seed("tkt-a")})
		require.Error(t, err)
		assert.ErrorContains(t, err, "duplicate ticket id")
	})

	t.Run("duplicate edge", func(t *testing.T) {
		err := ValidateDAG([]models.TicketSeed{
			seed("tkt-a"), seed("tkt-b", "tkt-a", "tkt-a"),
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "twice")
	})
}
