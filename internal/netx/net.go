// Package netx contains URL helpers for talking to the API server.
package netx

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/apiclient/internal/common"
)

// NormalizeBaseURL validates raw as an absolute http(s) URL and strips any
// trailing slash, so that base + "/api/..." never produces "//".
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", common.ErrInvalidBaseURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", common.ErrInvalidBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", common.ErrInvalidBaseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: query and fragment are not allowed", common.ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// JoinPath appends an endpoint path to a normalized base URL.
func JoinPath(base, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
