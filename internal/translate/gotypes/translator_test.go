// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/inference"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

func translateJSON(t *testing.T, src, outputDir string) string {
	t.Helper()
	doc, err := jschema.DecodeJSON([]byte(src))
	require.NoError(t, err)
	models, err := inference.Infer(doc, inference.Parameters{
		MetaModelNamespace: metamodel.DefaultNamespace,
		Namespace:          "com.example@1.0.0",
	}, nil)
	require.NoError(t, err)

	translator := &Translator{}
	output, err := translator.Translate(models.Models[0], outputDir)
	require.NoError(t, err)
	return string(output)
}

func TestTranslate_SimpleObject(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["user_id", "name"],
		"properties": {
			"user_id": {"type": "integer"},
			"name": {"type": "string"},
			"score": {"type": "number"}
		}
	}`, "out/models")

	expected := "// Code generated by schemagen. DO NOT EDIT.\n\n" +
		"package models\n\n" +
		"// Root mirrors the Root concept.\n" +
		"type Root struct {\n" +
		"\tUserID int64    `json:\"user_id\"`\n" +
		"\tName   string   `json:\"name\"`\n" +
		"\tScore  *float64 `json:\"score,omitempty\"`\n" +
		"}\n"
	assert.Equal(t, expected, result)
}

func TestTranslate_Imports(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["at", "blob"],
		"properties": {
			"at": {"type": "string", "format": "date-time"},
			"blob": {"type": "object"}
		}
	}`, "types")

	assert.Contains(t, result, "import (\n\t\"encoding/json\"\n\t\"time\"\n)")
	assert.Contains(t, result, "At   time.Time")
	assert.Contains(t, result, "Blob json.RawMessage")
}

func TestTranslate_ArraysAndRefs(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"properties": {
			"tags": {"type": "array", "items": {"type": "string"}},
			"home": {"$ref": "#/$defs/address"}
		},
		"$defs": {
			"address": {"type": "object", "properties": {"street": {"type": "string"}}}
		}
	}`, "types")

	assert.Contains(t, result, "Tags []string `json:\"tags,omitempty\"`")
	assert.Contains(t, result, "Home *Address `json:\"home,omitempty\"`")
	assert.Contains(t, result, "type Address struct {")
}

func TestTranslate_Enum(t *testing.T) {
	result := translateJSON(t, `{
		"type": "object",
		"required": ["status"],
		"properties": {"status": {"enum": ["active", "closed"]}}
	}`, "types")

	assert.Contains(t, result, "type RootPropertiesStatus string")
	assert.Contains(t, result, `RootPropertiesStatusActive RootPropertiesStatus = "active"`)
	assert.Contains(t, result, `RootPropertiesStatusClosed RootPropertiesStatus = "closed"`)
	assert.Contains(t, result, "Status RootPropertiesStatus `json:\"status\"`")
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user_id", "UserID"},
		{"api_url", "APIURL"},
		{"firstName", "FirstName"},
		{"Root$_properties$_xs", "RootPropertiesXs"},
		{"_0", "X0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, toPascalCase(tt.in))
		})
	}
}

func TestPackageName(t *testing.T) {
	assert.Equal(t, "models", packageName("."))
	assert.Equal(t, "out_dir", packageName("gen/out-dir"))
}

func TestFileExtension(t *testing.T) {
	translator := &Translator{}
	assert.Equal(t, ".go", translator.FileExtension())
}
