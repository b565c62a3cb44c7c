// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"math"

	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

// primitiveProperty maps type, format, pattern and numeric bounds to a primitive
// property. minimum is the lower bound, exclusiveMaximum the upper one; maximum
// is not modeled.
func (v *visitor) primitiveProperty(name string, obj *jschema.Object) (metamodel.Property, error) {
	id := normalizeName(name)
	typ, _ := obj.Get("type")
	def, hasDefault := obj.Get("default")

	switch typ {
	case "string":
		format, hasFormat := obj.String("format")
		if hasFormat && (format == "date" || format == "date-time") {
			return v.b.DateTimeProperty(id), nil
		}
		if hasFormat {
			v.diag.Warnf("Format '%s' in '%s' is not supported. It has been ignored.", format, name)
		}
		p := v.b.StringProperty(id)
		if pattern, ok := obj.String("pattern"); ok {
			p.Validator = v.b.RegexValidator(pattern)
		}
		if s, ok := def.(string); hasDefault && ok {
			p.DefaultValue = &s
		}
		return p, nil

	case "boolean":
		p := v.b.BooleanProperty(id)
		if b, ok := def.(bool); hasDefault && ok {
			p.DefaultValue = &b
		}
		return p, nil

	case "number":
		p := v.b.DoubleProperty(id)
		lower, hasLower := obj.Number("minimum")
		upper, hasUpper := exclusiveMaximum(obj)
		if hasLower || hasUpper {
			p.Validator = v.b.DoubleDomain(optional(lower, hasLower), optional(upper, hasUpper))
		}
		if f, ok := jschema.ToFloat(def); hasDefault && ok {
			p.DefaultValue = &f
		}
		return p, nil

	case "integer":
		p := v.b.IntegerProperty(id)
		lower, hasLower := obj.Number("minimum")
		upper, hasUpper := exclusiveMaximum(obj)
		if hasLower || hasUpper {
			p.Validator = v.b.IntegerDomain(optional(int64(math.Ceil(lower)), hasLower), optional(int64(math.Ceil(upper)), hasUpper))
		}
		if f, ok := jschema.ToFloat(def); hasDefault && ok && f == math.Trunc(f) {
			i := int64(f)
			p.DefaultValue = &i
		}
		return p, nil
	}

	return nil, unsupportedType(typ, name)
}

// exclusiveMaximum ignores the boolean form used by draft-04.
func exclusiveMaximum(obj *jschema.Object) (float64, bool) {
	return obj.Number("exclusiveMaximum")
}

func optional[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
