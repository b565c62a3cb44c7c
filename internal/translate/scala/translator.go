// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package scala

import (
	"bytes"
	"embed"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

//go:embed scala.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"last": func(i int, fields []translate.Field) bool {
		return i == len(fields)-1
	},
	"member": enumMember,
}).ParseFS(tmplFS, "scala.go.tmpl"))

// Translator translates models to Scala case class definitions.
type Translator struct{}

// FileExtension returns the file extension for Scala files.
func (t *Translator) FileExtension() string {
	return ".scala"
}

// Translate converts a model to Scala case classes and enumerations. The package
// name is the base name of outputDir.
func (t *Translator) Translate(model *metamodel.Model, outputDir string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	data.Extra["Package"] = packageName(outputDir)

	// Sort fields so required fields come before optional fields.
	for i := range data.Defs {
		fields := data.Defs[i].Fields
		sort.SliceStable(fields, func(i, j int) bool {
			if fields[i].Nullable != fields[j].Nullable {
				return !fields[i].Nullable
			}
			return false
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "scala.go.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	return buf.Bytes(), nil
}

func packageName(outputDir string) string {
	name := strings.ToLower(translate.ToIdentifier(filepath.Base(outputDir)))
	if name == "_" {
		return "models"
	}
	return identifier(name)
}

func enumMember(value string) string {
	if name := translate.ToPascalCase(value); name != "" {
		return identifier(name)
	}
	return "`" + value + "`"
}
