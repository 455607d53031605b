// Package value defines the dynamic value model for the tagpack codec.
//
// A Value is a closed tagged union over the eight kinds the wire format
// can represent: nil, booleans, signed integers, floating-point numbers,
// UTF-8 text, raw bytes, ordered lists, and key-ordered maps. Map keys
// are arbitrary Values; consumers that need text-only keys enforce that
// as a policy above this package (the JSON bridge does exactly that).
//
// Values are immutable after construction and safe to share between
// goroutines. A Value holds no external resources.
package value

import (
	"bytes"
	"math"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBytes
	KindList
	KindMap
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Pair is one key-value entry of a map. Pair order is significant and
// preserved by the codec.
type Pair struct {
	Key   Value
	Value Value
}

// Value is a dynamic value. The zero Value is the nil value.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	raw   []byte
	list  []Value
	pairs []Pair
}

// Nil returns the nil value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns an integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a floating-point value.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Text returns a text value.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// Bytes returns a raw-bytes value. The slice is retained, not copied.
func Bytes(v []byte) Value {
	return Value{kind: KindBytes, raw: v}
}

// List returns a list value over the given elements. The slice is
// retained, not copied.
func List(elems ...Value) Value {
	return Value{kind: KindList, list: elems}
}

// Map returns a map value over the given pairs. Pair order is retained.
func Map(pairs ...Pair) Value {
	return Value{kind: KindMap, pairs: pairs}
}

// Kind reports the variant stored in v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil reports whether v is the nil value.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// Bool returns the boolean payload. It is false for non-bool values.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload. It is zero for non-int values.
func (v Value) Int() int64 {
	return v.i
}

// Float returns the floating-point payload. It is zero for non-float
// values.
func (v Value) Float() float64 {
	return v.f
}

// Text returns the text payload. It is empty for non-text values.
func (v Value) Text() string {
	return v.s
}

// Bytes returns the raw-bytes payload. It is nil for non-bytes values.
func (v Value) Bytes() []byte {
	return v.raw
}

// Elems returns the elements of a list value. It is nil for non-list
// values.
func (v Value) Elems() []Value {
	return v.list
}

// Pairs returns the entries of a map value. It is nil for non-map
// values.
func (v Value) Pairs() []Pair {
	return v.pairs
}

// Len returns the element count of a list, the pair count of a map, the
// byte length of text or bytes, and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.pairs)
	case KindText:
		return len(v.s)
	case KindBytes:
		return len(v.raw)
	default:
		return 0
	}
}

// Equal reports whether two values are equivalent. Nil, Bool, Text and
// Bytes compare by value; List compares element-wise and Map pair-wise
// in order. Int and Float compare numerically, so Int(5) equals
// Float(5). NaN floats compare equal to each other so that decoded
// values remain comparable.
func (v Value) Equal(o Value) bool {
	if isNumeric(v.kind) && isNumeric(o.kind) {
		return numericEqual(v, o)
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == o.b
	case KindText:
		return v.s == o.s
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.pairs) != len(o.pairs) {
			return false
		}
		for i := range v.pairs {
			if !v.pairs[i].Key.Equal(o.pairs[i].Key) {
				return false
			}
			if !v.pairs[i].Value.Equal(o.pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isNumeric(k Kind) bool {
	return k == KindInt || k == KindFloat
}

func numericEqual(v, o Value) bool {
	if v.kind == KindInt && o.kind == KindInt {
		return v.i == o.i
	}
	a, b := v.asFloat(), o.asFloat()
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

func (v Value) asFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}
