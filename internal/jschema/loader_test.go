// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"simple.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  name:
    type: string
  age:
    type: integer
`)},
		"simple.json": &fstest.MapFile{Data: []byte(`{
  "type": "object",
  "properties": {"zeta": {"type": "string"}, "alpha": {"type": "number", "minimum": 1.5}}
}`)},
		"with-file-ref.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  data:
    $ref: "./external.yaml"
  local:
    $ref: "#/definitions/Local"
`)},
		"external.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  id:
    type: string
`)},
		"nested/main.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  parent:
    $ref: "./deep/types.yaml#/definitions/Parent"
`)},
		"nested/deep/types.yaml": &fstest.MapFile{Data: []byte(`
definitions:
  Parent:
    type: object
    properties:
      id:
        type: integer
`)},
		"cycle-a.yaml": &fstest.MapFile{Data: []byte(`
properties:
  b:
    $ref: "./cycle-b.yaml"
`)},
		"cycle-b.yaml": &fstest.MapFile{Data: []byte(`
properties:
  a:
    $ref: "./cycle-a.yaml"
`)},
	}
}

func TestLoadFile_YAML(t *testing.T) {
	loader := NewLoader(testFS())
	schema, err := loader.LoadFile("simple.yaml")
	require.NoError(t, err)

	typ, _ := schema.String("type")
	assert.Equal(t, "object", typ)
	props, ok := schema.Object("properties")
	require.True(t, ok)
	assert.Equal(t, []string{"name", "age"}, props.Keys())
}

func TestLoadFile_JSONKeepsKeyOrder(t *testing.T) {
	loader := NewLoader(testFS())
	schema, err := loader.LoadFile("simple.json")
	require.NoError(t, err)

	props, ok := schema.Object("properties")
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha"}, props.Keys())

	alpha, _ := props.Object("alpha")
	min, ok := alpha.Number("minimum")
	require.True(t, ok)
	assert.InDelta(t, 1.5, min, 0)
}

func TestLoadFile_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"invalid.yaml": &fstest.MapFile{Data: []byte("{{invalid yaml")},
		"invalid.json": &fstest.MapFile{Data: []byte("{invalid json}")},
		"list.json":    &fstest.MapFile{Data: []byte(`[1, 2]`)},
		"schema.txt":   &fstest.MapFile{Data: []byte(`{}`)},
	}
	loader := NewLoader(fsys)

	tests := []string{"invalid.yaml", "invalid.json", "list.json", "schema.txt", "missing.yaml"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loader.LoadFile(name)
			require.Error(t, err)
		})
	}

	_, err := loader.LoadFile("schema.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestResolveRefs_SimpleFileRef(t *testing.T) {
	loader := NewLoader(testFS())
	schema, err := loader.LoadFile("with-file-ref.yaml")
	require.NoError(t, err)

	require.NoError(t, loader.ResolveRefs(schema, "."))

	data, _ := Lookup(schema, []string{"properties", "data"})
	dataObj := data.(*Object)
	assert.False(t, dataObj.Has("$ref"))
	typ, _ := dataObj.String("type")
	assert.Equal(t, "object", typ)

	// Local refs are preserved
	ref, _ := Lookup(schema, []string{"properties", "local", "$ref"})
	assert.Equal(t, "#/definitions/Local", ref)
}

func TestResolveRefs_NestedWithFragment(t *testing.T) {
	loader := NewLoader(testFS())
	schema, err := loader.LoadFile("nested/main.yaml")
	require.NoError(t, err)

	require.NoError(t, loader.ResolveRefs(schema, "nested"))

	id, ok := Lookup(schema, []string{"properties", "parent", "properties", "id", "type"})
	require.True(t, ok)
	assert.Equal(t, "integer", id)
}

func TestResolveRefs_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.yaml": &fstest.MapFile{Data: []byte(`
type: object
properties:
  missing:
    $ref: "./does-not-exist.yaml"
`)},
	}
	loader := NewLoader(fsys)
	schema, err := loader.LoadFile("schema.yaml")
	require.NoError(t, err)

	require.Error(t, loader.ResolveRefs(schema, "."))
}

func TestResolveRefs_Cycle(t *testing.T) {
	loader := NewLoader(testFS())
	schema, err := loader.LoadFile("cycle-a.yaml")
	require.NoError(t, err)

	err = loader.ResolveRefs(schema, ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular file reference")
}

func TestIsFileRef(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"", false},
		{"#", false},
		{"#/definitions/Foo", false},
		{"https://example.com/schema.json", false},
		{"./other.yaml", true},
		{"other.json#/definitions/Foo", true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFileRef(tt.ref))
		})
	}
}

func TestResolveRefs_CopiesReferencedDefinitions(t *testing.T) {
	fsys := fstest.MapFS{
		"main.json": &fstest.MapFile{Data: []byte(`{
			"type": "object",
			"properties": {"home": {"$ref": "address.json"}, "work": {"$ref": "address.json"}}
		}`)},
		"address.json": &fstest.MapFile{Data: []byte(`{
			"type": "object",
			"properties": {"geo": {"$ref": "#/definitions/Geo"}},
			"definitions": {
				"Geo": {"type": "object", "properties": {"near": {"$ref": "#/definitions/Geo"}}}
			}
		}`)},
	}
	loader := NewLoader(fsys)
	schema, err := loader.LoadFile("main.json")
	require.NoError(t, err)

	require.NoError(t, loader.ResolveRefs(schema, "."))

	geo, ok := Lookup(schema, []string{"definitions", "Geo"})
	require.True(t, ok)
	near, _ := Lookup(geo, []string{"properties", "near", "$ref"})
	assert.Equal(t, "#/definitions/Geo", near)

	for _, prop := range []string{"home", "work"} {
		ref, _ := Lookup(schema, []string{"properties", prop, "properties", "geo", "$ref"})
		assert.Equal(t, "#/definitions/Geo", ref, prop)
	}
}

func TestResolveRefs_UsesIncludingContainer(t *testing.T) {
	fsys := fstest.MapFS{
		"main.json": &fstest.MapFile{Data: []byte(`{
			"$defs": {"Own": {"type": "object", "properties": {"x": {"type": "string"}}}},
			"type": "object",
			"properties": {"a": {"$ref": "lib.json#/definitions/A"}}
		}`)},
		"lib.json": &fstest.MapFile{Data: []byte(`{
			"definitions": {
				"A": {"type": "object", "properties": {"b": {"$ref": "#/definitions/B"}}},
				"B": {"type": "object", "properties": {"n": {"type": "integer"}}}
			}
		}`)},
	}
	loader := NewLoader(fsys)
	schema, err := loader.LoadFile("main.json")
	require.NoError(t, err)

	require.NoError(t, loader.ResolveRefs(schema, "."))

	ref, _ := Lookup(schema, []string{"properties", "a", "properties", "b", "$ref"})
	assert.Equal(t, "#/$defs/B", ref)
	defs, ok := schema.Object("$defs")
	require.True(t, ok)
	assert.Equal(t, []string{"Own", "B"}, defs.Keys())
	assert.False(t, schema.Has("definitions"))
}

func TestResolveRefs_InlinedLocalRefErrors(t *testing.T) {
	tests := []struct {
		name    string
		main    string
		lib     string
		wantErr string
	}{
		{
			name:    "conflicting definition",
			main:    `{"definitions": {"Geo": {"type": "integer"}}, "properties": {"a": {"$ref": "lib.json"}}}`,
			lib:     `{"properties": {"g": {"$ref": "#/definitions/Geo"}}, "definitions": {"Geo": {"type": "object"}}}`,
			wantErr: `lib.json: definition "Geo" conflicts with #/definitions/Geo`,
		},
		{
			name:    "pointer outside definitions",
			main:    `{"properties": {"a": {"$ref": "lib.json"}}}`,
			lib:     `{"properties": {"x": {"$ref": "#/properties/y"}, "y": {"type": "string"}}}`,
			wantErr: `lib.json: local reference "#/properties/y" does not point at a definition and cannot be inlined`,
		},
		{
			name:    "missing definition",
			main:    `{"properties": {"a": {"$ref": "lib.json"}}}`,
			lib:     `{"properties": {"x": {"$ref": "#/definitions/Nope"}}}`,
			wantErr: `lib.json: reference "#/definitions/Nope" not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(fstest.MapFS{
				"main.json": &fstest.MapFile{Data: []byte(tt.main)},
				"lib.json":  &fstest.MapFile{Data: []byte(tt.lib)},
			})
			schema, err := loader.LoadFile("main.json")
			require.NoError(t, err)

			assert.EqualError(t, loader.ResolveRefs(schema, "."), tt.wantErr)
		})
	}
}
