// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes provides Go struct type schema translation utilities.
package gotypes

import (
	"bytes"
	"embed"
	"go/format"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"pascal": toPascalCase,
}

var tmpl = template.Must(template.New("gotypes.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "gotypes.go.tmpl"))

// Translator translates models to Go struct type definitions.
type Translator struct{}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// Translate converts a model to Go struct definitions. The package name is the
// base name of outputDir.
func (t *Translator) Translate(model *metamodel.Model, outputDir string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	data.Extra["Package"] = packageName(outputDir)
	data.Extra["Imports"] = imports(data.Defs)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "failed to format generated code")
	}
	return out, nil
}

// imports lists the standard packages the field types refer to.
func imports(defs []translate.TypeDef) []string {
	var pkgs []string
	for _, def := range defs {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "time.Time") && !slices.Contains(pkgs, "time") {
				pkgs = append(pkgs, "time")
			}
			if strings.Contains(f.Type, rawJSONType) && !slices.Contains(pkgs, "encoding/json") {
				pkgs = append(pkgs, "encoding/json")
			}
		}
	}
	slices.Sort(pkgs)
	return pkgs
}

func packageName(outputDir string) string {
	name := strings.ToLower(translate.ToIdentifier(filepath.Base(outputDir)))
	if name == "_" {
		return "models"
	}
	return name
}
