// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

// Draft is the dialect of the generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator translates models to JSON Schema documents.
type Translator struct{}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// Translate converts a model to a JSON Schema document. Every concept and enum
// becomes an entry in $defs and the document root refers to the first concept,
// whose name is also the document title.
func (t *Translator) Translate(model *metamodel.Model, _ string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	root := &jsonschema.Schema{
		Schema: Draft,
		Defs:   make(map[string]*jsonschema.Schema, len(data.Defs)+len(data.Enums)),
	}
	for _, def := range data.Defs {
		root.Defs[def.Name] = objectSchema(def)
	}
	for _, enum := range data.Enums {
		values := make([]any, len(enum.Values))
		for i, v := range enum.Values {
			values[i] = v
		}
		root.Defs[enum.Name] = &jsonschema.Schema{Type: "string", Enum: values}
	}
	if len(data.Defs) > 0 {
		root.Title = data.Defs[0].Name
		root.Ref = defRef(data.Defs[0].Name)
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal JSON Schema")
	}

	return append(out, '\n'), nil
}

func objectSchema(def translate.TypeDef) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(def.Fields)),
	}
	for _, f := range def.Fields {
		s.Properties[f.Name] = fieldSchema(f)
		if !f.Nullable {
			s.Required = append(s.Required, f.Name)
		}
	}
	slices.Sort(s.Required)
	return s
}

func fieldSchema(f translate.Field) *jsonschema.Schema {
	elem := elementSchema(f)
	if f.Array {
		return &jsonschema.Schema{Type: "array", Items: elem}
	}
	return elem
}

func elementSchema(f translate.Field) *jsonschema.Schema {
	c := f.Constraints
	switch {
	case !c.Primitive:
		return &jsonschema.Schema{Ref: defRef(c.Reference)}
	case c.JSON:
		return &jsonschema.Schema{}
	case c.Union != "":
		var types []string
		if err := json.Unmarshal([]byte(c.Union), &types); err == nil && len(types) > 0 {
			return &jsonschema.Schema{Types: types}
		}
		return &jsonschema.Schema{Type: "string"}
	case f.Type == dateTimeType:
		return &jsonschema.Schema{Type: "string", Format: dateTimeType}
	}

	s := &jsonschema.Schema{Type: f.Type, Pattern: c.Pattern}
	s.Minimum = c.Lower
	s.ExclusiveMaximum = c.Upper
	return s
}

func defRef(name string) string {
	return "#/$defs/" + name
}
