// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown provides markdown schema documentation utilities.
package markdown

import (
	"strings"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	return string(p)
}

func (r *resolver) ArrayType(elemType string) string {
	return "array(" + elemType + ")"
}

func (r *resolver) RefType(declName string) string {
	name := translate.ToPascalCase(declName)
	return "[" + name + "](#" + strings.ToLower(name) + ")"
}

func (r *resolver) FormatDefName(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) EnrichField(_ *translate.Field) {}
