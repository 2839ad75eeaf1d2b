package imglab

import (
	"strconv"
	"strings"
	"time"
)

// Kind tags the shape of a parameter value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindBool
	KindTime
	KindList
	KindRange
)

// Value is a single parameter value: a scalar, null, a timestamp, an explicit
// list of scalars, or a range descriptor asking for geometric interpolation.
type Value struct {
	kind  Kind
	str   string
	num   int
	flag  bool
	at    time.Time
	items []Value
	first int
	last  int
}

// Null returns a flag-style value that renders as an empty string.
func Null() Value { return Value{kind: KindNull} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Int(n int) Value { return Value{kind: KindInt, num: n} }

func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Time returns a timestamp value. It renders as Unix seconds once normalized.
func Time(t time.Time) Value { return Value{kind: KindTime, at: t} }

// List returns an explicit ordered list of values.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, items: cp}
}

// Ints is a shorthand for a List of Int values.
func Ints(ns ...int) Value {
	items := make([]Value, len(ns))
	for i, n := range ns {
		items[i] = Int(n)
	}
	return Value{kind: KindList, items: items}
}

// Range returns a range descriptor. Its element count is decided by the
// splitter that expands it; endpoints are validated there too.
func Range(first, last int) Value { return Value{kind: KindRange, first: first, last: last} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// IsArray reports whether v is a list or a range.
func (v Value) IsArray() bool { return v.kind == KindList || v.kind == KindRange }

// Items returns a copy of the list elements, or nil for non-list values.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp
}

// Bounds returns the endpoints of a range value.
func (v Value) Bounds() (first, last int, ok bool) {
	if v.kind != KindRange {
		return 0, 0, false
	}
	return v.first, v.last, true
}

// Int returns the integer held by an Int value.
func (v Value) Int() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// String renders the canonical text of the value. Lists render comma-joined
// and ranges as "first..last"; neither is valid inside a URL.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.Itoa(v.num)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindTime:
		return strconv.FormatInt(v.at.Unix(), 10)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return strings.Join(parts, ",")
	case KindRange:
		return strconv.Itoa(v.first) + ".." + strconv.Itoa(v.last)
	default:
		return ""
	}
}

// Param is one key/value entry of a Params set.
type Param struct {
	Key   string
	Value Value
}

// Params is an insertion-ordered parameter set. Order is significant: it is
// the order of the generated query string.
type Params struct {
	entries []Param
	index   map[string]int
}

// NewParams returns a Params holding the given entries in order.
func NewParams(entries ...Param) *Params {
	p := &Params{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		p.Set(e.Key, e.Value)
	}
	return p
}

// Set stores value under key. An existing key keeps its position and takes the new value.
func (p *Params) Set(key string, value Value) *Params {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[key]; ok {
		p.entries[i].Value = value
		return p
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, Param{Key: key, Value: value})
	return p
}

func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	i, ok := p.index[key]
	if !ok {
		return Value{}, false
	}
	return p.entries[i].Value, true
}

// Has reports whether key is present, including keys holding null.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes key, keeping the relative order of the remaining entries.
func (p *Params) Delete(key string) {
	if p == nil {
		return
	}
	i, ok := p.index[key]
	if !ok {
		return
	}
	p.entries = append(p.entries[:i:i], p.entries[i+1:]...)
	delete(p.index, key)
	for j := i; j < len(p.entries); j++ {
		p.index[p.entries[j].Key] = j
	}
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (p *Params) Entries() []Param {
	if p == nil {
		return []Param{}
	}
	cp := make([]Param, len(p.entries))
	copy(cp, p.entries)
	return cp
}

// Clone returns a shallow copy that can be modified independently.
func (p *Params) Clone() *Params {
	if p == nil {
		return NewParams()
	}
	return NewParams(p.entries...)
}
