// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pydantic provides Pydantic BaseModel schema translation utilities.
package pydantic

import (
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.Integer:
		return "int"
	case metamodel.Double:
		return "float"
	case metamodel.Boolean:
		return "bool"
	case metamodel.DateTime:
		return "datetime.datetime"
	default:
		return "str"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "list[" + elemType + "]"
}

func (r *resolver) RefType(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) FormatDefName(declName string) string {
	return translate.ToPascalCase(declName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	elem := ""
	switch {
	case f.Constraints.JSON:
		elem = "Any"
	case f.Constraints.Union != "":
		elem = unionType(f.Constraints.Union)
	}
	if elem != "" {
		if f.Array {
			elem = r.ArrayType(elem)
		}
		f.Type = elem
	}
	if f.Nullable {
		f.Type = "Optional[" + f.Type + "]"
	}

	var args []string
	switch {
	case f.Constraints.Default != nil:
		args = append(args, "default="+literal(f.Constraints.Default))
	case f.Nullable:
		args = append(args, "default=None")
	}
	if name := fieldName(f.Name); name != f.Name {
		args = append(args, "alias="+strconv.Quote(f.Name))
		f.Name = name
	}
	if f.Constraints.Pattern != "" {
		args = append(args, "pattern="+strconv.Quote(f.Constraints.Pattern))
	}
	if f.Constraints.Lower != nil {
		args = append(args, "ge="+strconv.FormatFloat(*f.Constraints.Lower, 'g', -1, 64))
	}
	if f.Constraints.Upper != nil {
		args = append(args, "lt="+strconv.FormatFloat(*f.Constraints.Upper, 'g', -1, 64))
	}

	switch {
	case len(args) == 0:
		f.Tag = ""
	case len(args) == 1 && args[0] == "default=None":
		f.Tag = " = None"
	default:
		f.Tag = " = Field(" + strings.Join(args, ", ") + ")"
	}
}

// fieldName returns a Python identifier Pydantic accepts as a field name.
// Leading underscores are dropped since they denote private attributes.
func fieldName(name string) string {
	id := strings.TrimLeft(translate.ToIdentifier(name), "_")
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		return "field_" + id
	}
	return id
}

// literal renders a default value as a Python literal.
func literal(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case bool:
		if t {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return "None"
	}
}

// unionType renders a JSON list of schema type keywords as a Python union.
func unionType(members string) string {
	var names []string
	if err := json.Unmarshal([]byte(members), &names); err != nil || len(names) == 0 {
		return "str"
	}
	parts := make([]string, 0, len(names))
	for _, n := range names {
		var py string
		switch n {
		case "integer":
			py = "int"
		case "number":
			py = "float"
		case "boolean":
			py = "bool"
		case "null":
			py = "None"
		case "object":
			py = "dict[str, Any]"
		case "array":
			py = "list[Any]"
		default:
			py = "str"
		}
		if !slices.Contains(parts, py) {
			parts = append(parts, py)
		}
	}
	return strings.Join(parts, " | ")
}
