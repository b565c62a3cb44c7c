// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides JSON Schema document loading, decoding, and traversal utilities.
//
// Documents are decoded into a small generic tree: *Object for JSON objects
// (which keeps the order keys were written in), []any for arrays, and string,
// bool, int64, float64 or nil for scalars.
package jschema

import (
	"bytes"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-json"
)

// Object is a JSON object that remembers the order its keys were decoded in.
type Object struct {
	keys   []string
	fields map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{fields: make(map[string]any)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v under key. New keys are appended to the key order.
func (o *Object) Set(key string, v any) {
	if o.fields == nil {
		o.fields = make(map[string]any)
	}
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, exists := o.fields[key]; !exists {
		return
	}
	delete(o.fields, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Clone returns a shallow copy. Nested values are shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}
	return &Object{keys: slices.Clone(o.keys), fields: maps.Clone(o.fields)}
}

// All iterates over the key/value pairs in document order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// String returns the value under key if it is a string.
func (o *Object) String(key string) (string, bool) {
	v, _ := o.Get(key)
	s, ok := v.(string)
	return s, ok
}

// Bool returns the value under key if it is a boolean.
func (o *Object) Bool(key string) (bool, bool) {
	v, _ := o.Get(key)
	b, ok := v.(bool)
	return b, ok
}

// Object returns the value under key if it is an object.
func (o *Object) Object(key string) (*Object, bool) {
	v, _ := o.Get(key)
	obj, ok := v.(*Object)
	return obj, ok
}

// Slice returns the value under key if it is an array.
func (o *Object) Slice(key string) ([]any, bool) {
	v, _ := o.Get(key)
	s, ok := v.([]any)
	return s, ok
}

// Number returns the value under key if it is numeric.
func (o *Object) Number(key string) (float64, bool) {
	v, _ := o.Get(key)
	return ToFloat(v)
}

// MarshalJSON encodes the object with its keys in document order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.fields[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToFloat converts a decoded numeric value to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// FromMap converts a plain decoded value (as produced by json.Unmarshal into any)
// into the Object tree. Map keys are sorted since their original order is lost.
func FromMap(v any) any {
	switch t := v.(type) {
	case map[string]any:
		obj := NewObject()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			obj.Set(k, FromMap(t[k]))
		}
		return obj
	case *Object:
		return t
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = FromMap(t[i])
		}
		return out
	case int:
		return int64(t)
	case json.Number:
		return numberValue(t)
	default:
		return v
	}
}

// Plain converts an Object tree back into map[string]any / []any values.
func Plain(v any) any {
	switch t := v.(type) {
	case *Object:
		out := make(map[string]any, t.Len())
		for k, val := range t.All() {
			out[k] = Plain(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Plain(t[i])
		}
		return out
	default:
		return v
	}
}
