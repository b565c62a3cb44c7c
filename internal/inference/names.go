// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"net/url"
	"slices"
	"strings"

	"github.com/dacolabs/schemagen/internal/metamodel"
)

// pathSeparator joins path segments into synthesized declaration names.
const pathSeparator = "$_"

var nameEscaper = strings.NewReplacer("/", pathSeparator, "{", pathSeparator, "}", pathSeparator)

// normalizeName turns a schema key into a declaration or property identifier.
func normalizeName(name string) string {
	return metamodel.NormalizeIdentifier(nameEscaper.Replace(name))
}

// inlineObjectName names an anonymous structure after its full path, so two
// distinct locations never share a name.
func inlineObjectName(path []string) string {
	return normalizeName(strings.Join(path, pathSeparator))
}

// IDRef is the information carried by a schema's $id URI.
type IDRef struct {
	Namespace string
	Type      string
}

// ParseIDURI splits an $id such as "https://example.com/schemas/person.schema.json"
// into a namespace ("com.example.schemas") and a type name ("person").
func ParseIDURI(id string) IDRef {
	if id == "" {
		return IDRef{}
	}
	u, err := url.Parse(id)
	if err != nil {
		return IDRef{}
	}

	var parts []string
	if host := u.Hostname(); host != "" {
		labels := strings.Split(host, ".")
		slices.Reverse(labels)
		parts = append(parts, labels...)
	}

	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	var typeName string
	if len(segments) > 0 {
		last := segments[len(segments)-1]
		segments = segments[:len(segments)-1]
		last = strings.TrimSuffix(last, ".json")
		last = strings.TrimSuffix(last, ".schema")
		typeName = last
	}
	parts = append(parts, segments...)

	return IDRef{Namespace: strings.Join(parts, "."), Type: typeName}
}
