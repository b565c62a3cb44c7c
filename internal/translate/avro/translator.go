// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

// Translator translates models to Apache Avro schema definitions.
type Translator struct{}

// FileExtension returns the file extension for Avro schema files.
func (t *Translator) FileExtension() string {
	return ".avsc"
}

// avroRecord represents an Avro record schema.
type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []avroField `json:"fields"`
}

// avroEnum represents an Avro enum schema.
type avroEnum struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Namespace string   `json:"namespace,omitempty"`
	Symbols   []string `json:"symbols"`
}

// avroField represents a field within an Avro record.
type avroField struct {
	Name    string `json:"name"`
	Type    any    `json:"type"`
	Default any    `json:"default,omitempty"`
}

// avroArray represents an Avro array type.
type avroArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

// avroLogicalType represents an Avro logical type.
type avroLogicalType struct {
	Type        string `json:"type"`
	LogicalType string `json:"logicalType"`
}

// builder inlines each named type at its first use.
type builder struct {
	records map[string]*translate.TypeDef
	enums   map[string]*translate.EnumDef
	emitted map[string]bool
}

// Translate converts a model to an Avro schema JSON document. The document is a
// list of named types; a type referenced before its own entry is inlined at first
// use and referenced by name afterwards.
func (t *Translator) Translate(model *metamodel.Model, _ string) ([]byte, error) {
	data, err := translate.Prepare(model, &resolver{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare schema data")
	}

	b := &builder{
		records: make(map[string]*translate.TypeDef, len(data.Defs)),
		enums:   make(map[string]*translate.EnumDef, len(data.Enums)),
		emitted: make(map[string]bool),
	}
	for i := range data.Defs {
		b.records[data.Defs[i].Name] = &data.Defs[i]
	}
	for i := range data.Enums {
		b.enums[data.Enums[i].Name] = &data.Enums[i]
	}

	types := []any{}
	for _, def := range data.Defs {
		if b.emitted[def.Name] {
			continue
		}
		rec := b.record(&def)
		rec.Namespace = data.Namespace
		types = append(types, rec)
	}
	for _, enum := range data.Enums {
		if b.emitted[enum.Name] {
			continue
		}
		e := b.enum(&enum)
		e.Namespace = data.Namespace
		types = append(types, e)
	}

	out, err := json.MarshalIndent(types, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal Avro schema")
	}

	return append(out, '\n'), nil
}

func (b *builder) record(def *translate.TypeDef) avroRecord {
	b.emitted[def.Name] = true
	return avroRecord{
		Type:   "record",
		Name:   def.Name,
		Fields: b.fields(def.Fields),
	}
}

func (b *builder) enum(def *translate.EnumDef) avroEnum {
	b.emitted[def.Name] = true
	symbols := make([]string, len(def.Values))
	for i, v := range def.Values {
		symbols[i] = translate.ToIdentifier(v)
	}
	return avroEnum{Type: "enum", Name: def.Name, Symbols: symbols}
}

// fields converts translate.Fields to avroFields. Optional fields become a union
// with null and default to null.
func (b *builder) fields(fields []translate.Field) []avroField {
	result := make([]avroField, 0, len(fields))
	for _, f := range fields {
		field := avroField{Name: f.Name, Type: b.avroType(f.Type)}
		if f.Nullable {
			field.Type = []any{"null", field.Type}
			field.Default = json.RawMessage("null")
		}
		result = append(result, field)
	}
	return result
}

// avroType converts a resolver type string to an Avro type value.
func (b *builder) avroType(typeStr string) any {
	if name, ok := strings.CutPrefix(typeStr, "ref:"); ok {
		if b.emitted[name] {
			return name
		}
		if def, exists := b.records[name]; exists {
			return b.record(def)
		}
		if def, exists := b.enums[name]; exists {
			return b.enum(def)
		}
		return name
	}

	if elemStr, ok := strings.CutPrefix(typeStr, "array:"); ok {
		return avroArray{
			Type:  "array",
			Items: b.avroType(elemStr),
		}
	}

	if typeStr == "timestamp-millis" {
		return avroLogicalType{Type: "long", LogicalType: "timestamp-millis"}
	}

	return typeStr
}
