// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import "strconv"

// =============================================================================
// KIND
// =============================================================================

// Kind is the tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase value-kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Label returns the name shown in validation results: "Array" for
// sequences, the lowercase kind name for everything else.
func (k Kind) Label() string {
	if k == KindArray {
		return "Array"
	}
	return k.String()
}

// =============================================================================
// VALUE
// =============================================================================

// Value is a parsed document node. Only the fields matching Kind are set.
type Value struct {
	Kind Kind

	Bool bool
	// Num holds the number as written in JSON syntax. Non-finite YAML
	// floats keep their YAML spelling (".inf", "-.inf", ".nan").
	Num string
	Str string

	Items  []Value
	Fields []Field
}

// Field is one key/value pair of an object, in document order.
type Field struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number returns a number value from its literal text.
func Number(lit string) Value { return Value{Kind: KindNumber, Num: lit} }

// Int returns a number value for an integer.
func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

// String returns a string value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Array returns an array value holding items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindArray, Items: items}
}

// Object returns an object value holding fields in the given order.
func Object(fields ...Field) Value {
	if fields == nil {
		fields = []Field{}
	}
	return Value{Kind: KindObject, Fields: fields}
}

// Len returns the element count of an array or the key count of an object.
func (v Value) Len() int {
	switch v.Kind {
	case KindArray:
		return len(v.Items)
	case KindObject:
		return len(v.Fields)
	default:
		return 0
	}
}

// Get looks up key in an object.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// index returns the position of key in an object, or -1.
func (v *Value) index(key string) int {
	for i := range v.Fields {
		if v.Fields[i].Key == key {
			return i
		}
	}
	return -1
}

// set stores key in an object. An existing key keeps its position and
// takes the new value.
func (v *Value) set(key string, val Value) {
	if i := v.index(key); i >= 0 {
		v.Fields[i].Value = val
		return
	}
	v.Fields = append(v.Fields, Field{Key: key, Value: val})
}

// Equal reports whether v and o hold the same data. Numbers compare by
// numeric value and object comparison ignores key order.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber:
		return numbersEqual(v.Num, o.Num)
	case KindString:
		return v.Str == o.Str
	case KindArray:
		if len(v.Items) != len(o.Items) {
			return false
		}
		for i := range v.Items {
			if !v.Items[i].Equal(o.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Fields) != len(o.Fields) {
			return false
		}
		for _, f := range v.Fields {
			other, ok := o.Get(f.Key)
			if !ok || !f.Value.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v into plain Go values: nil, bool, float64, string,
// []any and map[string]any.
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		f, _ := parseNumber(v.Num)
		return f
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			out[f.Key] = f.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
