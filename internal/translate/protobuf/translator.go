// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package protobuf provides Protocol Buffers (proto3) schema translation utilities.
package protobuf

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

//go:embed protobuf.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"enumValue": enumValueName,
	"add":       func(a, b int) int { return a + b },
}

var tmpl = template.Must(template.New("protobuf.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "protobuf.go.tmpl"))

// Translator translates models to Protocol Buffers (proto3) message definitions.
type Translator struct{}

// FileExtension returns the file extension for Protocol Buffers files.
func (t *Translator) FileExtension() string {
	return ".proto"
}

// Translate converts a model to proto3 message definitions. The package is the
// model namespace, or the output directory name when the namespace is empty.
func (t *Translator) Translate(model *metamodel.Model, outputDir string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	pkg := data.Namespace
	if pkg == "" {
		pkg = filepath.Base(outputDir)
	}
	data.Extra["Package"] = pkg

	// sets sequential proto field numbers (= 1, = 2, ...) on each message.
	needsTimestamp := false
	for i := range data.Defs {
		for j := range data.Defs[i].Fields {
			f := &data.Defs[i].Fields[j]
			f.Tag = fmt.Sprintf("= %d", j+1)
			if strings.HasSuffix(f.Type, timestampType) {
				needsTimestamp = true
			}
		}
	}
	data.Extra["NeedsTimestamp"] = needsTimestamp

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "protobuf.go.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	return buf.Bytes(), nil
}
