package endpoints

import (
	"net/url"
	"strings"
)

// endpointPath turns "/category/slug" into an escaped "category/slug" ready to
// be joined after "/api/endpoints/". Only one leading slash is removed.
func endpointPath(p string) string {
	return escapeSegments(strings.TrimPrefix(p, "/"))
}

// escapeSegments path-escapes each "/"-separated segment and keeps the
// separators.
func escapeSegments(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
