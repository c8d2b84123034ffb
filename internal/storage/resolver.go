package storage

import (
	"net/url"
	"regexp"
	"strings"
)

// Public download URLs embed the object path between "/o/" and the query
// string, percent-encoded.
var objectPathPattern = regexp.MustCompile(`/o/(.*?)\?`)

// ObjectPathFromURL extracts the bucket-internal object path from a public
// download URL. The second return value is false when the URL does not have
// the expected shape; malformed input is never an error.
func ObjectPathFromURL(rawURL string) (string, bool) {
	if strings.TrimSpace(rawURL) == "" {
		return "", false
	}

	decoded, err := url.QueryUnescape(rawURL)
	if err != nil {
		return "", false
	}

	match := objectPathPattern.FindStringSubmatch(decoded)
	if match == nil {
		return "", false
	}
	return match[1], true
}
