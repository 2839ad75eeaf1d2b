package urlbuilder

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"imglab-urls/internal/imglab"
)

// colorKeys and positionKeys hold the canonical (hyphenated) names of
// parameters whose values are validated before use.
var (
	colorKeys = map[string]bool{
		"background-color": true,
		"color":            true,
		"border-color":     true,
		"trim-color":       true,
		"text-color":       true,
		"outline-color":    true,
		"shadow-color":     true,
	}
	positionKeys = map[string]bool{
		"crop":               true,
		"position":           true,
		"gravity":            true,
		"text-position":      true,
		"watermark-position": true,
	}
	rangeKeys = map[string]bool{
		"width":   true,
		"height":  true,
		"dpr":     true,
		"quality": true,
	}
)

const rangeSeparator = ".."

// ErrInvalidParam is returned for request parameters that cannot be decoded.
var ErrInvalidParam = errors.New("invalid parameter")

// ParseValue converts the textual form of a parameter into a typed value.
// "a..b" becomes a range for width, height, dpr and quality only; other keys
// keep it as text. Color and position keys are validated, expires
// accepts RFC 3339 timestamps, and integers become Int values.
func ParseValue(key, raw string) (imglab.Value, error) {
	canonical := strings.ReplaceAll(key, "_", "-")

	switch {
	case colorKeys[canonical]:
		return imglab.ParseColor(raw)
	case positionKeys[canonical]:
		return imglab.ParsePosition(raw)
	case canonical == "expires":
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return imglab.Time(t), nil
		}
	}

	if rangeKeys[canonical] {
		if first, last, ok := strings.Cut(raw, rangeSeparator); ok {
			return parseRange(key, first, last)
		}
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return imglab.Int(n), nil
	}
	return imglab.String(raw), nil
}

func parseRange(key, first, last string) (imglab.Value, error) {
	f, errFirst := strconv.Atoi(first)
	l, errLast := strconv.Atoi(last)
	if errFirst != nil || errLast != nil {
		return imglab.Value{}, fmt.Errorf("%w: %s=%s..%s has non-numeric endpoints", imglab.ErrMalformedRange, key, first, last)
	}
	if f <= 0 || l <= 0 {
		return imglab.Value{}, fmt.Errorf("%w: %s=%s..%s", imglab.ErrMalformedRange, key, first, last)
	}
	return imglab.Range(f, l), nil
}

// paramBuilder collects key/value pairs in order. A repeated key turns
// into a list; a key without a value is null.
type paramBuilder struct {
	params *imglab.Params
	lists  map[string][]imglab.Value
}

func newParamBuilder() *paramBuilder {
	return &paramBuilder{params: imglab.NewParams(), lists: make(map[string][]imglab.Value)}
}

func (b *paramBuilder) add(key, raw string, hasValue bool) error {
	var v imglab.Value
	if hasValue {
		var err error
		if v, err = ParseValue(key, raw); err != nil {
			return err
		}
	} else {
		v = imglab.Null()
	}

	prev, seen := b.params.Get(key)
	if !seen {
		b.params.Set(key, v)
		return nil
	}
	if v.Kind() == imglab.KindRange || prev.Kind() == imglab.KindRange {
		return fmt.Errorf("%w: %s mixes a range with other values", imglab.ErrMalformedRange, key)
	}
	items, ok := b.lists[key]
	if !ok {
		items = []imglab.Value{prev}
	}
	items = append(items, v)
	b.lists[key] = items
	b.params.Set(key, imglab.List(items...))
	return nil
}

// ParseQuery parses a raw query string into ordered params. Keys listed in
// skip (such as "path") are ignored.
func ParseQuery(rawQuery string, skip ...string) (*imglab.Params, error) {
	skipped := make(map[string]bool, len(skip))
	for _, k := range skip {
		skipped[k] = true
	}

	b := newParamBuilder()
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, hasValue := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: decode key %q: %v", ErrInvalidParam, rawKey, err)
		}
		if key == "" || skipped[key] {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidParam, key, err)
		}
		if err := b.add(key, value, hasValue); err != nil {
			return nil, err
		}
	}
	return b.params, nil
}

// ParseAssignments parses CLI style "key=value" (or bare "key") entries.
func ParseAssignments(assignments []string) (*imglab.Params, error) {
	b := newParamBuilder()
	for _, a := range assignments {
		key, value, hasValue := strings.Cut(a, "=")
		if key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, a)
		}
		if err := b.add(key, value, hasValue); err != nil {
			return nil, err
		}
	}
	return b.params, nil
}
