package kv

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

type (
	// Kind identifies the concrete type stored in a Value.
	Kind uint8

	// Value is a tagged scalar/boolean/string diagnostic value.
	Value struct {
		kind Kind
		b    bool
		s    string
		i    int64
		u    uint64
		f    float64
		d    time.Duration
	}

	pair struct {
		key string
		val Value
	}

	// Map is an ordered mapping from short string keys to Value entries.
	// The zero value is not usable; construct one with New.
	Map struct {
		pairs []pair
		index map[string]int
	}
)

const (
	KindInvalid Kind = iota
	KindBool
	KindString
	KindInt64
	KindUint64
	KindFloat64
	KindDuration
)

// New constructs an empty Map, optionally pre-sizing its backing storage.
// A capacity hint of 0 is fine; it just means no pre-allocation.
func New(capacity int) *Map {
	m := &Map{index: make(map[string]int, capacity)}
	if capacity > 0 {
		m.pairs = make([]pair, 0, capacity)
	}
	return m
}

// Set records key=val, dispatching on the concrete type of val to the most
// appropriate Value representation. Setting an existing key updates its
// value without changing its position in iteration order.
//
// Set panics if val is of a type this package doesn't know how to store;
// callers in this module only ever pass the handful of types the solver
// core emits (bool, string, the integer counter types, and float32/64), so
// this is a programmer error, not a recoverable condition.
func (m *Map) Set(key string, val any) *Map {
	var v Value
	switch val := val.(type) {
	case bool:
		v = Value{kind: KindBool, b: val}
	case string:
		v = Value{kind: KindString, s: val}
	case int:
		v = Value{kind: KindInt64, i: int64(val)}
	case int64:
		v = Value{kind: KindInt64, i: val}
	case uint:
		v = Value{kind: KindUint64, u: uint64(val)}
	case uint64:
		v = Value{kind: KindUint64, u: val}
	case float32:
		v = Value{kind: KindFloat64, f: float64(val)}
	case float64:
		v = Value{kind: KindFloat64, f: val}
	case time.Duration:
		v = Value{kind: KindDuration, d: val}
	default:
		panic(fmt.Sprintf("kv: unsupported value type %T for key %q", val, key))
	}

	if i, ok := m.index[key]; ok {
		m.pairs[i].val = v
		return m
	}

	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, pair{key: key, val: v})
	return m
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Get returns the value stored for key, and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.pairs[i].val, true
}

// Has reports whether key is present in m.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Keys returns the entry keys, in insertion order.
func (m *Map) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.key
	}
	return keys
}

// SortedKeys returns the entry keys in lexicographic order, useful for
// producing stable diffs in tests or debug output, where insertion order
// would otherwise be incidental.
func (m *Map) SortedKeys() []string {
	keys := m.Keys()
	slices.Sort(keys)
	return keys
}

// Range calls fn for each entry, in insertion order, stopping early if fn
// returns false.
func (m *Map) Range(fn func(key string, val Value) bool) {
	if m == nil {
		return
	}
	for _, p := range m.pairs {
		if !fn(p.key, p.val) {
			return
		}
	}
}

// Kind reports the concrete type held by v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean value held by v. It panics if v.Kind() != KindBool.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic("kv: Value.Bool called on non-bool value")
	}
	return v.b
}

// String returns the string value held by v. It panics if v.Kind() != KindString.
func (v Value) String() string {
	if v.kind != KindString {
		panic("kv: Value.String called on non-string value")
	}
	return v.s
}

// Int64 returns the integer value held by v. It panics if v.Kind() != KindInt64.
func (v Value) Int64() int64 {
	if v.kind != KindInt64 {
		panic("kv: Value.Int64 called on non-int64 value")
	}
	return v.i
}

// Uint64 returns the unsigned integer value held by v. It panics if
// v.Kind() != KindUint64.
func (v Value) Uint64() uint64 {
	if v.kind != KindUint64 {
		panic("kv: Value.Uint64 called on non-uint64 value")
	}
	return v.u
}

// Float64 returns the float value held by v. It panics if
// v.Kind() != KindFloat64.
func (v Value) Float64() float64 {
	if v.kind != KindFloat64 {
		panic("kv: Value.Float64 called on non-float64 value")
	}
	return v.f
}

// Duration returns the duration value held by v. It panics if
// v.Kind() != KindDuration.
func (v Value) Duration() time.Duration {
	if v.kind != KindDuration {
		panic("kv: Value.Duration called on non-duration value")
	}
	return v.d
}

// Any unwraps v to its dynamic Go type.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindInt64:
		return v.i
	case KindUint64:
		return v.u
	case KindFloat64:
		return v.f
	case KindDuration:
		return v.d
	default:
		return nil
	}
}
