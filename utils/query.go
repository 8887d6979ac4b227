package utils

import (
	"net/url"
	"strings"
)

// QueryParam is a single key/value query parameter. Parameters are kept as an
// ordered slice rather than a map so the built query string is deterministic.
type QueryParam struct {
	Key   string
	Value string
}

// BuildQueryString renders params as "?k=v&k2=v2" with URL encoding, or an
// empty string when there are no parameters.
func BuildQueryString(params []QueryParam) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	return "?" + strings.Join(parts, "&")
}
