// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/inference"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

func inferModel(t *testing.T, src string) *metamodel.Model {
	t.Helper()
	doc, err := jschema.DecodeJSON([]byte(src))
	require.NoError(t, err)
	models, err := inference.Infer(doc, inference.Parameters{
		MetaModelNamespace: metamodel.DefaultNamespace,
		Namespace:          "com.example@1.0.0",
	}, nil)
	require.NoError(t, err)
	return models.Models[0]
}

func translateJSON(t *testing.T, src string) []map[string]any {
	t.Helper()
	translator := &Translator{}
	output, err := translator.Translate(inferModel(t, src), "schemas")
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(output, &result))
	return result
}

func TestTranslate_AllPrimitiveTypes(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["str", "int", "num", "flag"],
		"properties": {
			"str": {"type": "string"},
			"int": {"type": "integer"},
			"num": {"type": "number"},
			"flag": {"type": "boolean"}
		}
	}`)

	require.Len(t, result, 1)
	assert.Equal(t, "record", result[0]["type"])
	assert.Equal(t, "Root", result[0]["name"])
	assert.Equal(t, "com.example", result[0]["namespace"])

	fieldTypes := extractFieldTypes(result[0]["fields"].([]any))
	assert.Equal(t, "string", fieldTypes["str"])
	assert.Equal(t, "long", fieldTypes["int"])
	assert.Equal(t, "double", fieldTypes["num"])
	assert.Equal(t, "boolean", fieldTypes["flag"])
}

func TestTranslate_DateTime(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["created_at"],
		"properties": {"created_at": {"type": "string", "format": "date-time"}}
	}`)

	fieldTypes := extractFieldTypes(result[0]["fields"].([]any))
	createdAt := fieldTypes["created_at"].(map[string]any)
	assert.Equal(t, "long", createdAt["type"])
	assert.Equal(t, "timestamp-millis", createdAt["logicalType"])
}

func TestTranslate_ArrayType(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["tags"],
		"properties": {"tags": {"type": "array", "items": {"type": "string"}}}
	}`)

	fieldTypes := extractFieldTypes(result[0]["fields"].([]any))
	tagsType := fieldTypes["tags"].(map[string]any)
	assert.Equal(t, "array", tagsType["type"])
	assert.Equal(t, "string", tagsType["items"])
}

func TestTranslate_InlineAtFirstUse(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["customer", "billing"],
		"properties": {
			"customer": {"$ref": "#/definitions/Customer"},
			"billing": {"$ref": "#/definitions/Address"}
		},
		"definitions": {
			"Customer": {
				"type": "object",
				"required": ["address"],
				"properties": {"address": {"$ref": "#/definitions/Address"}}
			},
			"Address": {
				"type": "object",
				"properties": {"street": {"type": "string"}}
			}
		}
	}`)

	// Customer and Address are inlined inside Root, so only Root is top level.
	require.Len(t, result, 1)
	fields := result[0]["fields"].([]any)

	customer := findField(fields, "customer")["type"].(map[string]any)
	assert.Equal(t, "Customer", customer["name"])
	address := findField(customer["fields"].([]any), "address")["type"].(map[string]any)
	assert.Equal(t, "Address", address["name"])

	// Later uses refer to the type by name.
	assert.Equal(t, "Address", findField(fields, "billing")["type"])
}

func TestTranslate_NullableFields(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer"},
			"nickname": {"type": "string"}
		}
	}`)

	fields := result[0]["fields"].([]any)
	assert.Equal(t, "long", findField(fields, "id")["type"])
	_, hasDefault := findField(fields, "id")["default"]
	assert.False(t, hasDefault)

	nickname := findField(fields, "nickname")
	assert.Equal(t, []any{"null", "string"}, nickname["type"])
	assert.Contains(t, nickname, "default")
	assert.Nil(t, nickname["default"])
}

func TestTranslate_Enum(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["color"],
		"properties": {"color": {"enum": ["red", "green"]}}
	}`)

	fields := result[0]["fields"].([]any)
	color := findField(fields, "color")["type"].(map[string]any)
	assert.Equal(t, "enum", color["type"])
	assert.Equal(t, "RootPropertiesColor", color["name"])
	assert.Equal(t, []any{"red", "green"}, color["symbols"])
}

func TestTranslate_RecursiveType(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"properties": {
			"children": {"type": "array", "items": {"$ref": "#"}}
		}
	}`)

	require.Len(t, result, 1)
	children := findField(result[0]["fields"].([]any), "children")
	union := children["type"].([]any)
	arr := union[1].(map[string]any)
	assert.Equal(t, "Root", arr["items"])
}

func TestFileExtension(t *testing.T) {
	translator := &Translator{}
	assert.Equal(t, ".avsc", translator.FileExtension())
}

func extractFieldTypes(fields []any) map[string]any {
	types := make(map[string]any, len(fields))
	for _, f := range fields {
		field := f.(map[string]any)
		types[field["name"].(string)] = field["type"]
	}
	return types
}

func findField(fields []any, name string) map[string]any {
	for _, f := range fields {
		field := f.(map[string]any)
		if field["name"] == name {
			return field
		}
	}
	return nil
}
