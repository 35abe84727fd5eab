package repoctx

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateRepoURL checks that the URL uses an allowed scheme and domain.
// An empty allowlist rejects everything; fetching arbitrary hosts from
// inside the core is never the right default.
func ValidateRepoURL(rawURL string, allowedDomains []string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	for _, domain := range allowedDomains {
		if host == domain || host == "www."+domain {
			return nil
		}
	}
	return fmt.Errorf("domain %q not in allowed list", host)
}
