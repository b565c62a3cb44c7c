// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package scala provides plain Scala case class schema translation.
package scala

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

var reserved = []string{
	"abstract", "case", "catch", "class", "def", "do", "else", "extends", "false", "final",
	"finally", "for", "forSome", "if", "implicit", "import", "lazy", "match", "new", "null",
	"object", "override", "package", "private", "protected", "return", "sealed", "super",
	"this", "throw", "trait", "true", "try", "type", "val", "var", "while", "with", "yield",
}

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.Integer:
		return "Long"
	case metamodel.Double:
		return "Double"
	case metamodel.Boolean:
		return "Boolean"
	case metamodel.DateTime:
		return "java.time.Instant"
	default:
		return "String"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return fmt.Sprintf("List[%s]", elemType)
}

func (r *resolver) RefType(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) FormatDefName(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	// Enumeration values are typed through their object.
	if f.Constraints.Enumerated {
		name := r.RefType(f.Constraints.Reference)
		f.Type = name + "." + name
		if f.Array {
			f.Type = r.ArrayType(f.Type)
		}
	}
	f.Name = identifier(f.Name)
	if f.Nullable {
		f.Type = fmt.Sprintf("Option[%s]", f.Type)
		f.Tag = " = None"
	}
}

// identifier quotes names Scala would not accept as plain identifiers.
func identifier(name string) string {
	if slices.Contains(reserved, name) || !isPlainIdentifier(name) {
		return "`" + name + "`"
	}
	return name
}

func isPlainIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return name != ""
}
