package cli

import (
	"net/url"
	"strings"
)

// normalizeURL adds the http scheme when the URL has none.
func normalizeURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}

	withScheme := "http://" + rawURL
	if u, err := url.Parse(withScheme); err != nil || u.Host == "" {
		return rawURL
	}
	return withScheme
}
