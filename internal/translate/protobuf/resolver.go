// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"strings"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

const timestampType = "google.protobuf.Timestamp"

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.Integer:
		return "int64"
	case metamodel.Double:
		return "double"
	case metamodel.Boolean:
		return "bool"
	case metamodel.DateTime:
		return timestampType
	default:
		return "string"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "repeated " + elemType
}

func (r *resolver) RefType(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) FormatDefName(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = translate.ToIdentifier(f.Name)
	// repeated fields cannot carry presence
	if f.Nullable && !strings.HasPrefix(f.Type, "repeated ") {
		f.Type = "optional " + f.Type
	}
}

// enumValueName scopes an enum value by its enum, since proto3 enum values share
// the enclosing package namespace.
func enumValueName(enumName, value string) string {
	return strings.ToUpper(translate.ToSnakeCase(enumName) + "_" + translate.ToIdentifier(value))
}
