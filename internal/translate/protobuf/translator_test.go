// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/inference"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

func translateJSON(t *testing.T, src string) string {
	t.Helper()
	doc, err := jschema.DecodeJSON([]byte(src))
	require.NoError(t, err)
	models, err := inference.Infer(doc, inference.Parameters{
		MetaModelNamespace: metamodel.DefaultNamespace,
		Namespace:          "com.example@1.0.0",
	}, nil)
	require.NoError(t, err)

	translator := &Translator{}
	output, err := translator.Translate(models.Models[0], "schemas")
	require.NoError(t, err)
	return string(output)
}

func TestTranslate_SimpleObject(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["name", "age"],
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		}
	}`)

	expected := `syntax = "proto3";

package com.example;

message Root {
  string name = 1;
  int64 age = 2;
}
`
	assert.Equal(t, expected, result)
}

func TestTranslate_AllPrimitiveTypes(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["str", "int", "num", "flag", "at"],
		"properties": {
			"str": {"type": "string"},
			"int": {"type": "integer"},
			"num": {"type": "number"},
			"flag": {"type": "boolean"},
			"at": {"type": "string", "format": "date-time"}
		}
	}`)

	assert.Contains(t, result, "string str = 1;")
	assert.Contains(t, result, "int64 int = 2;")
	assert.Contains(t, result, "double num = 3;")
	assert.Contains(t, result, "bool flag = 4;")
	assert.Contains(t, result, "google.protobuf.Timestamp at = 5;")
	assert.Contains(t, result, `import "google/protobuf/timestamp.proto";`)
}

func TestTranslate_OptionalAndRepeated(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"properties": {
			"nickname": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}}
		}
	}`)

	assert.Contains(t, result, "optional string nickname = 1;")
	assert.Contains(t, result, "repeated string tags = 2;")
	assert.NotContains(t, result, "optional repeated")
	assert.NotContains(t, result, "import")
}

func TestTranslate_NestedAndEnum(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["address", "status"],
		"properties": {
			"address": {"$ref": "#/definitions/Address"},
			"status": {"enum": ["active", "on-hold"]}
		},
		"definitions": {
			"Address": {
				"type": "object",
				"required": ["street"],
				"properties": {"street": {"type": "string"}}
			}
		}
	}`)

	assert.Contains(t, result, "Address address = 1;")
	assert.Contains(t, result, "RootPropertiesStatus status = 2;")
	assert.Contains(t, result, "message Address {\n  string street = 1;\n}")
	assert.Contains(t, result, `enum RootPropertiesStatus {
  ROOT_PROPERTIES_STATUS_UNSPECIFIED = 0;
  ROOT_PROPERTIES_STATUS_ACTIVE = 1;
  ROOT_PROPERTIES_STATUS_ON_2DHOLD = 2;
}`)
}

func TestTranslate_EmptyNamespaceUsesOutputDir(t *testing.T) {
	b := metamodel.NewBuilder(metamodel.DefaultNamespace)
	model := b.Model("", []metamodel.Declaration{
		b.Concept("Thing", []metamodel.Property{b.StringProperty("id")}),
	})

	translator := &Translator{}
	output, err := translator.Translate(model, "out/schemas")
	require.NoError(t, err)
	assert.Contains(t, string(output), "package schemas;")
}

func TestFileExtension(t *testing.T) {
	translator := &Translator{}
	assert.Equal(t, ".proto", translator.FileExtension())
}
