// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pydantic

import (
	"bytes"
	"embed"
	"sort"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

//go:embed pydantic.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("pydantic.go.tmpl").Funcs(template.FuncMap{
	"member": enumMember,
}).ParseFS(tmplFS, "pydantic.go.tmpl"))

// Translator translates models to Pydantic BaseModel definitions.
type Translator struct{}

// FileExtension returns the file extension for Python files.
func (t *Translator) FileExtension() string {
	return ".py"
}

// Translate converts a model to Pydantic BaseModel classes and string enums.
func (t *Translator) Translate(model *metamodel.Model, _ string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	// checks if any field type contains datetime.
	data.Extra["NeedsDatetimeImport"] = false
	for _, def := range data.Defs {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "datetime.") {
				data.Extra["NeedsDatetimeImport"] = true
			}
		}
	}

	// sorts fields so required fields come before optional fields.
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
	if err := tmpl.ExecuteTemplate(&buf, "pydantic.go.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	return buf.Bytes(), nil
}

// enumMember names an enum member after its value, e.g. "in-progress" becomes IN_PROGRESS.
func enumMember(value string) string {
	return strings.ToUpper(translate.ToIdentifier(value))
}
