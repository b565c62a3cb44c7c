// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"slices"
	"strings"

	"github.com/dacolabs/schemagen/internal/jschema"
)

// fragment is a schema subtree plus its path from the document root. Each variant
// carries only what its handler needs; fragments are built fresh at every step.
type fragment interface {
	fragmentPath() []string
}

// modelFragment is the whole document.
type modelFragment struct {
	body *jschema.Object
}

// definitionsFragment is the container of named definitions.
type definitionsFragment struct {
	body *jschema.Object
	path []string
}

// definitionFragment is a named, top-level or inline structure.
type definitionFragment struct {
	name string
	body any
	path []string
	root bool
}

type enumDefinitionFragment struct {
	definitionFragment
	values []any
}

type nonEnumDefinitionFragment struct {
	definitionFragment
}

// propertiesFragment is the "properties" map of an object.
type propertiesFragment struct {
	body     *jschema.Object
	required []string
	path     []string
}

// propertyFragment is one property of an object, or an array's items.
type propertyFragment struct {
	name     string
	body     any
	path     []string
	optional bool
}

type arrayPropertyFragment struct {
	propertyFragment
	items any
}

type fixedElementsArrayPropertyFragment struct {
	propertyFragment
	items []any
}

type referenceFragment struct {
	propertyFragment
	ref string
}

type localReferenceFragment struct {
	propertyFragment
	ref     string
	pointer []string
}

func (f modelFragment) fragmentPath() []string       { return nil }
func (f definitionsFragment) fragmentPath() []string { return f.path }
func (f definitionFragment) fragmentPath() []string  { return f.path }
func (f propertiesFragment) fragmentPath() []string  { return f.path }
func (f propertyFragment) fragmentPath() []string    { return f.path }

// newDefinition classifies a definition body.
func newDefinition(name string, body any, path []string, root bool) fragment {
	def := definitionFragment{name: name, body: body, path: path, root: root}
	if obj, ok := body.(*jschema.Object); ok {
		if values, ok := obj.Slice("enum"); ok {
			return enumDefinitionFragment{definitionFragment: def, values: values}
		}
	}
	return nonEnumDefinitionFragment{definitionFragment: def}
}

// newProperty classifies a property body.
func newProperty(name string, body any, path []string, optional bool) fragment {
	prop := propertyFragment{name: name, body: body, path: path, optional: optional}
	obj, ok := body.(*jschema.Object)
	if !ok {
		return prop
	}

	if ref, ok := obj.String("$ref"); ok {
		if strings.HasPrefix(ref, "#") {
			return localReferenceFragment{propertyFragment: prop, ref: ref, pointer: jschema.ParsePointer(ref)}
		}
		return referenceFragment{propertyFragment: prop, ref: ref}
	}
	if hasAlternation(obj) || !isArraySchema(obj) {
		return prop
	}

	if tuple, ok := tupleItems(obj); ok {
		return fixedElementsArrayPropertyFragment{propertyFragment: prop, items: tuple}
	}
	items, ok := obj.Get("items")
	if !ok {
		items = jschema.NewObject()
	}
	return arrayPropertyFragment{propertyFragment: prop, items: items}
}

func childPath(path []string, segments ...string) []string {
	return append(slices.Clip(path), segments...)
}
