package imglab

import (
	"fmt"
	"net/url"
	"strings"
)

// escapeComponent percent-encodes everything except unreserved characters.
// Spaces become %20, never "+".
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// escapePath percent-encodes each segment of p and keeps the separating slashes.
// A literal % is always escaped; p is never assumed to be pre-encoded.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = escapeComponent(seg)
	}
	return strings.Join(segments, "/")
}

// encodeQuery renders fully resolved params as k1=v1&k2=v2 in insertion order.
func encodeQuery(params *Params) (string, error) {
	var b strings.Builder
	for i, e := range params.Entries() {
		if e.Value.IsArray() {
			return "", fmt.Errorf("%w: %s holds %s", ErrUnresolvedParam, e.Key, e.Value.String())
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeComponent(e.Key))
		b.WriteByte('=')
		b.WriteString(escapeComponent(e.Value.String()))
	}
	return b.String(), nil
}
