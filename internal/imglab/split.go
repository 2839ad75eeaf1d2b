package imglab

import "fmt"

// Axis is a parameter whose values expand into srcset variants.
type Axis string

const (
	AxisDPR   Axis = "dpr"
	AxisWidth Axis = "width"
)

// DefaultSize is the number of variants a range on this axis expands to.
func (a Axis) DefaultSize() int {
	if a == AxisDPR {
		return 2
	}
	return SequenceDefaultSize
}

// suffix is the srcset descriptor unit of the axis.
func (a Axis) suffix() string {
	if a == AxisDPR {
		return "x"
	}
	return "w"
}

// Variant is one fully resolved parameter set of a srcset, tagged with the
// axis value that produced it.
type Variant struct {
	Axis   Axis
	Value  Value
	Params *Params
}

// Descriptor renders the srcset descriptor, e.g. "2x" or "100w".
func (v Variant) Descriptor() string {
	return v.Value.String() + v.Axis.suffix()
}

// SplitDPR splits params along its dpr axis.
func SplitDPR(params *Params) ([]Variant, error) {
	return splitParams(params, AxisDPR)
}

// SplitWidth splits params along its width axis.
func SplitWidth(params *Params) ([]Variant, error) {
	return splitParams(params, AxisWidth)
}

// splitParams expands the axis into N values and every other list or range
// into values aligned index for index with it. Ranges expand to N elements;
// lists keep their own length and read as null past their end. Scalars are
// copied into every variant.
func splitParams(params *Params, axis Axis) ([]Variant, error) {
	driver, ok := params.Get(string(axis))
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrAxisConflict, axis)
	}

	var axisValues []Value
	switch driver.Kind() {
	case KindList:
		axisValues = driver.Items()
	case KindRange:
		seq, err := expandRange(string(axis), driver, axis.DefaultSize())
		if err != nil {
			return nil, err
		}
		axisValues = seq
	default:
		axisValues = []Value{driver}
	}
	n := len(axisValues)

	companions := make(map[string][]Value)
	for _, e := range params.Entries() {
		if e.Key == string(axis) || !e.Value.IsArray() {
			continue
		}
		if e.Value.Kind() == KindRange {
			seq, err := expandRange(e.Key, e.Value, n)
			if err != nil {
				return nil, err
			}
			companions[e.Key] = seq
		} else {
			companions[e.Key] = e.Value.Items()
		}
	}

	variants := make([]Variant, n)
	for i := 0; i < n; i++ {
		v := params.Clone()
		v.Set(string(axis), axisValues[i])
		for key, vals := range companions {
			if i < len(vals) {
				v.Set(key, vals[i])
			} else {
				v.Set(key, Null())
			}
		}
		variants[i] = Variant{Axis: axis, Value: axisValues[i], Params: v}
	}
	return variants, nil
}

func expandRange(key string, v Value, size int) ([]Value, error) {
	first, last, _ := v.Bounds()
	if first <= 0 || last <= 0 {
		return nil, fmt.Errorf("%w: %s=%d..%d", ErrMalformedRange, key, first, last)
	}
	seq := Sequence(first, last, size)
	out := make([]Value, len(seq))
	for i, n := range seq {
		out[i] = Int(n)
	}
	return out, nil
}
