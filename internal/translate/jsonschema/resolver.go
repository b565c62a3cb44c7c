// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema renders models back to JSON Schema (draft 2020-12).
package jsonschema

import (
	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

const dateTimeType = "date-time"

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.Integer:
		return "integer"
	case metamodel.Double:
		return "number"
	case metamodel.Boolean:
		return "boolean"
	case metamodel.DateTime:
		return dateTimeType
	default:
		return "string"
	}
}

// ArrayType leaves the element type alone; arrays are rebuilt from Field.Array.
func (r *resolver) ArrayType(elemType string) string {
	return elemType
}

func (r *resolver) RefType(declName string) string {
	return declName
}

func (r *resolver) FormatDefName(declName string) string {
	return declName
}

func (r *resolver) EnrichField(_ *translate.Field) {}
