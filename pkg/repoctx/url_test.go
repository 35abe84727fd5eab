package repoctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRepoURL(t *testing.T) {
	allowed := []string{"github.com", "raw.githubusercontent.com"}

	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{
			name: "github repo allowed",
			url:  "https://github.com/acme/site",
		},
		{
			name: "www prefix allowed",
			url:  "https://www.github.com/acme/site",
		},
		{
			name:    "other domain rejected",
			url:     "https://gitlab.com/acme/site",
			wantErr: "not in allowed list",
		},
		{
			name:    "internal host rejected",
			url:     "https://169.254.169.254/latest/meta-data",
			wantErr: "not in allowed list",
		},
		{
			name:    "non-http scheme rejected",
			url:     "ssh://git@github.com/acme/site.git",
			wantErr: "invalid scheme",
		},
		{
			name:    "file scheme rejected",
			url:     "file:///etc/passwd",
			wantErr: "invalid scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoURL(tt.url, allowed)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateRepoURL_EmptyAllowlist(t *testing.T) {
	err := ValidateRepoURL("https://github.com/acme/site", nil)
	assert.ErrorContains(t, err, "not in allowed list")
}
