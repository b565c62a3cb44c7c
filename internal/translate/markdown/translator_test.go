// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/inference"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
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
	output, err := translator.Translate(models.Models[0], "docs")
	require.NoError(t, err)
	return string(output)
}

func TestTranslate_SimpleObject(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		}
	}`)

	expected := "# com.example\n\n" +
		"Version: `1.0.0`\n\n" +
		"## Root\n\n" +
		"| Property | Type | Required | Constraints |\n" +
		"|----------|------|----------|-------------|\n" +
		"| `name` | String | Yes |  |\n" +
		"| `age` | Integer | No |  |\n"
	assert.Equal(t, expected, result)
}

func TestTranslate_ReferencesAndArrays(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["items", "address"],
		"properties": {
			"items": {"type": "array", "items": {"$ref": "#/definitions/Item"}},
			"address": {"$ref": "#/definitions/Address"}
		},
		"definitions": {
			"Item": {"type": "object", "properties": {"sku": {"type": "string"}}},
			"Address": {"type": "object", "properties": {"street": {"type": "string"}}}
		}
	}`)

	assert.Contains(t, result, "| `items` | array([Item](#item)) | Yes |")
	assert.Contains(t, result, "| `address` | [Address](#address) | Yes |")
	assert.Contains(t, result, "## Item")
	assert.Contains(t, result, "## Address")
}

func TestTranslate_Enum(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["status"],
		"properties": {"status": {"enum": ["active", "inactive"]}}
	}`)

	assert.Contains(t, result, "| `status` | [RootPropertiesStatus](#rootpropertiesstatus) | Yes |")
	assert.Contains(t, result, "## RootPropertiesStatus\n\n| Value |\n|-------|\n| `active` |\n| `inactive` |\n")
}

func TestTranslate_Constraints(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["code", "qty", "blob"],
		"properties": {
			"code": {"type": "string", "pattern": "^[A-Z]+$", "default": "AB"},
			"qty": {"type": "integer", "minimum": 1, "exclusiveMaximum": 10},
			"blob": {"type": "object"}
		}
	}`)

	assert.Contains(t, result, "| `code` | String | Yes | pattern: `^[A-Z]+$`, default: `AB` |")
	assert.Contains(t, result, "| `qty` | Integer | Yes | lower: 1, upper: 10 |")
	assert.Contains(t, result, "| `blob` | String | Yes | JSON document |")
}

func TestTranslate_EmptyConcept(t *testing.T) {
	b := metamodel.NewBuilder(metamodel.DefaultNamespace)
	model := b.Model("", []metamodel.Declaration{b.Concept("Empty", nil)})

	translator := &Translator{}
	output, err := translator.Translate(model, "")
	require.NoError(t, err)
	assert.Equal(t, "# Model\n\n## Empty\n\n_No properties._\n", string(output))
}

func TestFormatConstraints(t *testing.T) {
	upper := 2.5
	assert.Empty(t, formatConstraints(translate.Constraints{}))
	assert.Equal(t, "upper: 2.5, union of `[\"string\",\"number\"]`",
		formatConstraints(translate.Constraints{Upper: &upper, Union: `["string","number"]`}))
}

func TestFileExtension(t *testing.T) {
	translator := &Translator{}
	assert.Equal(t, ".md", translator.FileExtension())
}
