// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro provides Apache Avro schema translation utilities.
package avro

import (
	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.Integer:
		return "long"
	case metamodel.Double:
		return "double"
	case metamodel.Boolean:
		return "boolean"
	case metamodel.DateTime:
		return "timestamp-millis"
	default:
		return "string"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "array:" + elemType
}

func (r *resolver) RefType(declName string) string {
	return "ref:" + translate.ToPascalCase(declName)
}

func (r *resolver) FormatDefName(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = translate.ToIdentifier(f.Name)
}
