// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTranslators(t *testing.T) {
	translators := RegisterTranslators()
	assert.Equal(t, []string{"avro", "cto", "gotypes", "jsonschema", "markdown", "protobuf", "pydantic", "scala", "typescript"}, translators.Available())
}

func TestRun_GenerateEveryFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	schema := `{
		"$id": "https://example.com/schemas/order",
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer"},
			"status": {"enum": ["open", "closed"]},
			"placedAt": {"type": "string", "format": "date-time"},
			"lines": {"type": "array", "items": {"type": "object", "properties": {"sku": {"type": "string"}}}}
		}
	}`
	require.NoError(t, os.WriteFile("order.json", []byte(schema), 0o600))

	for name, translator := range RegisterTranslators() {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := Run(context.Background(),
				[]string{"generate", "order.json", "--namespace", "com.example@1.0.0", "--format", name, "--output", "out"},
				&stdout, &stderr)
			require.NoError(t, err, stderr.String())

			data, err := os.ReadFile(filepath.Join("out", "order"+translator.FileExtension()))
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)
	assert.ErrorContains(t, err, `unknown command "frobnicate"`)
}
