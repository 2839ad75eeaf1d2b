package imglab

import "strings"

// NormalizeParams returns a copy of params with canonical keys and values:
// underscores in keys become hyphens and timestamps become Unix seconds.
// Null values are kept. When two keys collapse onto the same canonical key
// the later one wins; which of them the caller meant is unspecified.
func NormalizeParams(params *Params) *Params {
	out := NewParams()
	for _, e := range params.Entries() {
		out.Set(normalizeKey(e.Key), normalizeValue(e.Value))
	}
	return out
}

// NormalizeSrcsetParams is NormalizeParams that also drops dpr and width
// axes holding an empty list.
func NormalizeSrcsetParams(params *Params) *Params {
	out := NormalizeParams(params)
	for _, axis := range []Axis{AxisDPR, AxisWidth} {
		if v, ok := out.Get(string(axis)); ok && v.Kind() == KindList && len(v.items) == 0 {
			out.Delete(string(axis))
		}
	}
	return out
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func normalizeValue(v Value) Value {
	switch v.kind {
	case KindTime:
		return Int(int(v.at.Unix()))
	case KindList:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = normalizeValue(item)
		}
		return Value{kind: KindList, items: items}
	default:
		return v
	}
}

// NormalizePath strips every leading and trailing slash from p.
func NormalizePath(p string) string {
	return strings.Trim(p, "/")
}

// IsWebURI reports whether p is an absolute http or https URL.
func IsWebURI(p string) bool {
	lower := strings.ToLower(p)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Resource is the path argument of a URL build, classified once: either a
// path relative to the source or a complete external URL.
type Resource struct {
	path string
	web  bool
}

// ParseResource classifies p. Relative paths are normalized here.
func ParseResource(p string) Resource {
	if IsWebURI(p) {
		return Resource{path: p, web: true}
	}
	return Resource{path: NormalizePath(p)}
}

func (r Resource) IsWebURI() bool { return r.web }

func (r Resource) String() string { return r.path }

// Encoded returns the percent-encoded path segment sent to the CDN. External
// URLs are escaped as one opaque segment; relative paths keep their slashes.
func (r Resource) Encoded() string {
	if r.web {
		return escapeComponent(r.path)
	}
	return escapePath(r.path)
}
