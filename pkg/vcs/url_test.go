package vcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{
			name:      "plain https URL",
			url:       "https://github.com/acme/shop",
			wantOwner: "acme",
			wantRepo:  "shop",
		},
		{
			name:      "with .git suffix",
			url:       "https://github.com/acme/shop.git",
			wantOwner: "acme",
			wantRepo:  "shop",
		},
		{
			name:      "trailing slash",
			url:       "https://github.com/acme/shop/",
			wantOwner: "acme",
			wantRepo:  "shop",
		},
		{
			name:      "self-hosted git service",
			url:       "https://git.internal.example.com/platform/swarm",
			wantOwner: "platform",
			wantRepo:  "swarm",
		},
		{
			name:    "missing repo segment",
			url:     "https://github.com/acme",
			wantErr: true,
		},
		{
			name:    "relative path",
			url:     "acme/shop",
			wantErr: true,
		},
		{
			name:    "deep path is not a repo URL",
			url:     "https://github.com/acme/shop/tree/main/pkg",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRepoURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantRepo, ref.Repo)
		})
	}
}
