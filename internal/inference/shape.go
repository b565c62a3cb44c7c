// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"github.com/goccy/go-json"

	"github.com/dacolabs/schemagen/internal/jschema"
)

var alternationKeywords = []string{"anyOf", "oneOf"}

// Keywords the engine never models. They are reported and dropped.
var ignoredKeywords = []string{
	"allOf", "not", "if", "then", "else", "const",
	"patternProperties", "propertyNames", "dependencies", "dependentSchemas", "dependentRequired",
	"unevaluatedProperties", "unevaluatedItems", "contains", "minContains", "maxContains", "uniqueItems",
	"minLength", "maxLength", "multipleOf", "minProperties", "maxProperties", "exclusiveMinimum",
}

// Keywords that give a schema a shape. A schema with none of them is freeform.
var shapeKeywords = []string{"type", "items", "prefixItems", "enum", "$ref", "anyOf", "oneOf"}

func hasAlternation(obj *jschema.Object) bool {
	_, ok := alternationKeyword(obj)
	return ok
}

func alternationKeyword(obj *jschema.Object) (string, bool) {
	for _, kw := range alternationKeywords {
		if _, ok := obj.Slice(kw); ok {
			return kw, true
		}
	}
	return "", false
}

// flattenAlternation merges the first branch of an anyOf/oneOf over the remaining
// keywords of obj. Other branches are discarded.
func flattenAlternation(obj *jschema.Object) (*jschema.Object, string) {
	kw, ok := alternationKeyword(obj)
	if !ok {
		return obj, ""
	}
	branches, _ := obj.Slice(kw)

	merged := obj.Clone()
	for _, k := range alternationKeywords {
		merged.Delete(k)
	}
	if len(branches) > 0 {
		if first, ok := branches[0].(*jschema.Object); ok {
			for k, v := range first.All() {
				merged.Set(k, v)
			}
		}
	}
	return merged, kw
}

func hasProperties(obj *jschema.Object) bool {
	props, ok := obj.Object("properties")
	return ok && props.Len() > 0
}

func isArraySchema(obj *jschema.Object) bool {
	if typ, ok := obj.Get("type"); ok {
		return typ == "array"
	}
	return obj.Has("items") || obj.Has("prefixItems")
}

func isObjectSchema(obj *jschema.Object) bool {
	if typ, ok := obj.Get("type"); ok && typ != "object" {
		return false
	}
	return hasProperties(obj)
}

// isFreeform reports whether obj imposes no usable shape: an empty or
// annotation-only schema, or an object without properties.
func isFreeform(obj *jschema.Object) bool {
	if typ, ok := obj.Get("type"); ok {
		return typ == "object" && !hasProperties(obj)
	}
	if hasProperties(obj) {
		return false
	}
	for _, kw := range shapeKeywords {
		if obj.Has(kw) {
			return false
		}
	}
	return true
}

// tupleItems returns the positional item schemas of a tuple array.
func tupleItems(obj *jschema.Object) ([]any, bool) {
	if items, ok := obj.Slice("prefixItems"); ok {
		return items, true
	}
	if items, ok := obj.Slice("items"); ok {
		return items, true
	}
	return nil, false
}

// isConfinedTuple reports whether the array can hold nothing beyond its n
// positional items.
func isConfinedTuple(obj *jschema.Object, n int) bool {
	if maxItems, ok := obj.Number("maxItems"); ok && maxItems <= float64(n) {
		return true
	}
	if v, ok := obj.Bool("additionalItems"); ok && !v {
		return true
	}
	if obj.Has("prefixItems") {
		if v, ok := obj.Bool("items"); ok && !v {
			return true
		}
	}
	return false
}

// fixedElementsObject builds an object schema with one property per tuple slot,
// named by index. Slots below minItems are required.
func fixedElementsObject(obj *jschema.Object, items []any) *jschema.Object {
	minItems, _ := obj.Number("minItems")

	props := jschema.NewObject()
	var required []any
	for i, item := range items {
		key := jsonString(i)
		props.Set(key, item)
		if float64(i) < minItems {
			required = append(required, key)
		}
	}

	synthetic := jschema.NewObject()
	synthetic.Set("type", "object")
	synthetic.Set("properties", props)
	if len(required) > 0 {
		synthetic.Set("required", required)
	}
	return synthetic
}

func requiredSet(obj *jschema.Object) []string {
	list, _ := obj.Slice("required")
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func jsonString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
