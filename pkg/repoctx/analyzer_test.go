package repoctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
)

func testConfig() *config.RepoContextConfig {
	return &config.RepoContextConfig{
		CacheTTL:       time.Minute,
		AllowedDomains: []string{"github.com"},
		MaxFileBytes:   64,
	}
}

// fakeGitHub serves the two API routes the analyzer touches.
func fakeGitHub(t *testing.T, readmeStatus int, readme string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/site", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"full_name": "acme/site",
			"description": "storefront monolith",
			"language": "Go",
			"topics": ["commerce", "web"],
			"default_branch": "main",
			"archived": false
		}`))
	})
	mux.HandleFunc("/repos/acme/site/readme", func(w http.ResponseWriter, _ *http.Request) {
		if readmeStatus != http.StatusOK {
			w.WriteHeader(readmeStatus)
			return
		}
		_, _ = w.Write([]byte(readme))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestAnalyzer_Analyze(t *testing.T) {
	srv, _ := fakeGitHub(t, http.StatusOK, "# Site\nA storefront.")

	a := NewAnalyzer(testConfig(), "")
	a.apiBase = srv.URL

	analysis, err := a.Analyze(context.Background(), "https://github.com/acme/site")
	require.NoError(t, err)

	assert.Equal(t, "acme/site", analysis["full_name"])
	assert.Equal(t, "Go", analysis["language"])
	assert.Equal(t, "main", analysis["default_branch"])
	assert.Contains(t, analysis["readme"], "A storefront")
}

func TestAnalyzer_MissingReadmeTolerated(t *testing.T) {
	srv, _ := fakeGitHub(t, http.StatusNotFound, "")

	a := NewAnalyzer(testConfig(), "")
	a.apiBase = srv.URL

	analysis, err := a.Analyze(context.Background(), "https://github.com/acme/site")
	require.NoError(t, err)
	assert.Equal(t, "acme/site", analysis["full_name"])
	assert.NotContains(t, analysis, "readme")
}

func TestAnalyzer_ReadmeCappedAtLimit(t *testing.T) {
	srv, _ := fakeGitHub(t, http.StatusOK, strings.Repeat("x", 500))

	a := NewAnalyzer(testConfig(), "")
	a.apiBase = srv.URL

	analysis, err := a.Analyze(context.Background(), "https://github.com/acme/site")
	require.NoError(t, err)
	assert.Len(t, analysis["readme"], 64)
}

func TestAnalyzer_CachesByRepo(t *testing.T) {
	srv, hits := fakeGitHub(t, http.StatusOK, "readme")

	a := NewAnalyzer(testConfig(), "")
	a.apiBase = srv.URL

	_, err := a.Analyze(context.Background(), "https://github.com/acme/site")
	require.NoError(t, err)
	_, err = a.Analyze(context.Background(), "https://github.com/acme/site.git")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load(), "second analysis should come from cache")
}

func TestAnalyzer_DomainRejected(t *testing.T) {
	a := NewAnalyzer(testConfig(), "")

	_, err := a.Analyze(context.Background(), "https://gitlab.com/acme/site")
	require.Error(t, err)
	assert.Equal(t, fault.PolicyViolation, fault.ClassOf(err))
}

func TestAnalyzer_RepoNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	a := NewAnalyzer(testConfig(), "")
	a.apiBase = srv.URL

	_, err := a.Analyze(context.Background(), "https://github.com/acme/gone")
	require.Error(t, err)
	assert.Equal(t, fault.NotFound, fault.ClassOf(err))
}
