// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"strings"
	"unicode"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/translate"
)

const rawJSONType = "json.RawMessage"

type resolver struct{}

func (r *resolver) PrimitiveType(p metamodel.Primitive) string {
	switch p {
	case metamodel.String:
		return "string"
	case metamodel.Integer:
		return "int64"
	case metamodel.Double:
		return "float64"
	case metamodel.Boolean:
		return "bool"
	case metamodel.DateTime:
		return "time.Time"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (r *resolver) RefType(declName string) string {
	return toPascalCase(declName)
}

func (r *resolver) FormatDefName(declName string) string {
	return toPascalCase(declName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	if f.Constraints.JSON {
		f.Type = rawJSONType
		if f.Array {
			f.Type = "[]" + rawJSONType
		}
	}

	tag := f.Name
	if f.Nullable {
		tag += ",omitempty"
		// slices and raw messages already have a nil value
		if !f.Array && !f.Constraints.JSON {
			f.Type = "*" + f.Type
		}
	}
	f.Tag = "`json:\"" + tag + "\"`"
	f.Name = toPascalCase(f.Name)
}

// toPascalCase converts a snake_case or camelCase string to PascalCase.
// It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL, HTML).
func toPascalCase(s string) string {
	// Common Go acronyms that should be fully uppercased.
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"tcp":  "TCP",
		"udp":  "UDP",
		"tls":  "TLS",
		"ssl":  "SSL",
		"ssh":  "SSH",
		"cpu":  "CPU",
		"uri":  "URI",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else {
			r := []rune(part)
			sb.WriteString(string(unicode.ToUpper(r[0])) + string(r[1:]))
		}
	}

	result := sb.String()
	if result == "" || unicode.IsDigit([]rune(result)[0]) {
		result = "X" + result
	}
	return result
}
