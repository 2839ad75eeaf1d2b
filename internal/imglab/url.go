package imglab

import "strings"

// URL builds the URL of path on src with the given transformation params.
// path may be relative to the source or a complete http(s) URL, which is then
// embedded as one encoded segment. params must not hold lists or ranges.
// URLs of secure sources end with a signature parameter.
func URL(src Source, path string, params *Params) (string, error) {
	return buildURL(src, ParseResource(path), NormalizeParams(params))
}

// URLForName builds a URL against a default Source named name.
func URLForName(name, path string, params *Params) (string, error) {
	src, err := NewSource(name)
	if err != nil {
		return "", err
	}
	return URL(src, path, params)
}

// buildURL expects params to be normalized already.
func buildURL(src Source, res Resource, params *Params) (string, error) {
	encodedPath := res.Encoded()

	query, err := encodeQuery(params)
	if err != nil {
		return "", err
	}
	if src.IsSecure() {
		sig := "signature=" + escapeComponent(Signature(src, res.String(), query))
		if query == "" {
			query = sig
		} else {
			query += "&" + sig
		}
	}

	var b strings.Builder
	b.WriteString(src.Scheme())
	b.WriteString("://")
	b.WriteString(src.authority())
	b.WriteByte('/')
	b.WriteString(src.Path(encodedPath))
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	return b.String(), nil
}
