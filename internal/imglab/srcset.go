package imglab

import (
	"fmt"
	"strings"
)

const (
	defaultWidthFirst = 100
	defaultWidthLast  = 8192
)

// srcsetSeparator joins srcset entries.
const srcsetSeparator = ",\n"

func defaultDPRs() Value { return Ints(1, 2, 3, 4, 5, 6) }

func defaultWidths() Value {
	return Ints(Sequence(defaultWidthFirst, defaultWidthLast, SequenceDefaultSize)...)
}

// Srcset builds a responsive image candidate list for path on src.
//
// A width list or range produces width descriptors. A fixed width or height
// produces density descriptors over the dpr list or range in params, or
// 1x..6x when there is none. Without width or height the default width ladder
// from 100 to 8192 is used.
func Srcset(src Source, path string, params *Params) (string, error) {
	res := ParseResource(path)
	p := NormalizeSrcsetParams(params)

	width, hasWidth := p.Get(string(AxisWidth))
	height, hasHeight := p.Get("height")
	dpr, hasDPR := p.Get(string(AxisDPR))

	switch {
	case hasWidth && width.IsArray():
		if hasDPR && dpr.IsArray() {
			return "", fmt.Errorf("%w: dpr as a list or range is not allowed when width is also a list or range", ErrAxisConflict)
		}
		return srcsetFor(src, res, p, AxisWidth)

	case hasWidth || hasHeight:
		if hasHeight && height.IsArray() {
			return "", fmt.Errorf("%w: height as a list or range is only allowed when width is also a list or range", ErrAxisConflict)
		}
		if !hasDPR || !dpr.IsArray() {
			p.Set(string(AxisDPR), defaultDPRs())
		}
		return srcsetFor(src, res, p, AxisDPR)

	default:
		if hasDPR && dpr.IsArray() {
			return "", fmt.Errorf("%w: dpr as a list or range is only allowed with a fixed width or height", ErrAxisConflict)
		}
		p.Set(string(AxisWidth), defaultWidths())
		return srcsetFor(src, res, p, AxisWidth)
	}
}

func srcsetFor(src Source, res Resource, params *Params, axis Axis) (string, error) {
	variants, err := splitParams(params, axis)
	if err != nil {
		return "", err
	}

	entries := make([]string, 0, len(variants))
	for _, v := range variants {
		u, err := buildURL(src, res, v.Params)
		if err != nil {
			return "", err
		}
		entries = append(entries, u+" "+v.Descriptor())
	}
	return strings.Join(entries, srcsetSeparator), nil
}
