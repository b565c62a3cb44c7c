// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/schemagen/internal/metamodel"

// TypeResolver converts metamodel types to target-language type strings and naming conventions.
// Each translator implements this interface to control how models map to its output format.
type TypeResolver interface {
	// PrimitiveType maps a metamodel primitive to a target type string.
	PrimitiveType(p metamodel.Primitive) string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// RefType returns the type string for a reference to a concept or enum.
	RefType(declName string) string

	// FormatDefName formats a declaration name for the target language.
	FormatDefName(declName string) string

	// EnrichField applies language-specific post-processing to a resolved field.
	// It may mutate any combination of the field's properties:
	//   - Name: rename for target conventions (e.g. camelCase to PascalCase for Go)
	//   - Type: wrap for nullability (e.g. *T for Go)
	//   - Tag:  set annotations (e.g. json struct tags for Go)
	// Called once per field after type resolution, before template execution.
	EnrichField(f *Field)
}
