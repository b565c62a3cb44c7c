// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript provides TypeScript declaration translation utilities.
package typescript

import (
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.Integer, metamodel.Double:
		return "number"
	case metamodel.Boolean:
		return "boolean"
	default:
		return "string"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return elemType + "[]"
}

func (r *resolver) RefType(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) FormatDefName(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	elem := ""
	switch {
	case f.Constraints.JSON:
		elem = "unknown"
	case f.Constraints.Union != "":
		elem = unionType(f.Constraints.Union)
	}
	if elem != "" {
		if f.Array {
			elem = "(" + elem + ")[]"
		}
		f.Type = elem
	}
	if f.Nullable {
		f.Tag = "?"
	}
}

// unionType renders a JSON list of schema type keywords as a TypeScript union.
func unionType(members string) string {
	var names []string
	if err := json.Unmarshal([]byte(members), &names); err != nil || len(names) == 0 {
		return "string"
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		var ts string
		switch n {
		case "integer", "number":
			ts = "number"
		case "boolean":
			ts = "boolean"
		case "null":
			ts = "null"
		case "object":
			ts = "Record<string, unknown>"
		case "array":
			ts = "unknown[]"
		default:
			ts = "string"
		}
		if !slices.Contains(parts, ts) {
			parts = append(parts, ts)
		}
	}
	return strings.Join(parts, " | ")
}
