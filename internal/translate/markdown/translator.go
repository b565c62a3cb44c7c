// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatConstraints": formatConstraints,
}

var tmpl = template.Must(template.New("markdown.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.go.tmpl"))

// Translator translates models to markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate converts a model to markdown documentation.
func (t *Translator) Translate(model *metamodel.Model, _ string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}

	return buf.Bytes(), nil
}

// formatConstraints formats the constraints for a field as a human-readable string.
func formatConstraints(c translate.Constraints) string {
	var parts []string

	if c.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern: `%s`", c.Pattern))
	}

	if c.Lower != nil {
		parts = append(parts, fmt.Sprintf("lower: %v", *c.Lower))
	}

	if c.Upper != nil {
		parts = append(parts, fmt.Sprintf("upper: %v", *c.Upper))
	}

	if c.Default != nil {
		parts = append(parts, fmt.Sprintf("default: `%v`", c.Default))
	}

	if c.JSON {
		parts = append(parts, "JSON document")
	}

	if c.Union != "" {
		parts = append(parts, fmt.Sprintf("union of `%s`", c.Union))
	}

	return strings.Join(parts, ", ")
}
