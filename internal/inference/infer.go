// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package inference converts JSON Schema and OpenAPI documents into a metamodel
// declaration graph. References are resolved locally, anonymous structures are
// named after their path, and constructs the metamodel cannot express are
// approximated with a warning.
package inference

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

// DefaultVersion is appended to namespaces derived from $id.
const DefaultVersion = "1.0.0"

// Parameters configure a conversion.
type Parameters struct {
	// MetaModelNamespace qualifies every "$class" tag.
	MetaModelNamespace string
	// Namespace of the generated model. When empty it is derived from $id.
	Namespace string
	// PathToDefinitions overrides where named definitions are looked up.
	PathToDefinitions []string
}

// Infer converts a decoded schema document into a model. doc is a *jschema.Object
// or a map[string]any. Warnings go to diag, which may be nil.
func Infer(doc any, params Parameters, diag Diag) (*metamodel.Models, error) {
	if diag == nil {
		diag = nopDiag{}
	}
	root, ok := jschema.FromMap(doc).(*jschema.Object)
	if !ok {
		return nil, errors.New("schema document must be an object")
	}
	if params.MetaModelNamespace == "" {
		return nil, errors.New("metamodel namespace is required")
	}

	id, _ := root.String("$id")
	idRef := ParseIDURI(id)

	namespace := params.Namespace
	if namespace == "" {
		if idRef.Namespace == "" {
			return nil, errors.New("namespace is required when the schema has no $id")
		}
		namespace = idRef.Namespace + "@" + DefaultVersion
	}

	rootName := RootName(root)
	if err := validateDocument(root, rootName); err != nil {
		return nil, err
	}

	v := &visitor{
		b:        metamodel.NewBuilder(params.MetaModelNamespace),
		diag:     diag,
		doc:      root,
		rootName: rootName,
		defsPath: LocateDefinitions(root, params.PathToDefinitions),
	}
	out, err := v.visit(modelFragment{body: root}, traversal{})
	if err != nil {
		return nil, err
	}

	return v.b.Models(v.b.Model(namespace, dedupe(out.declarations))), nil
}

// RootName names the document root after the last segment of $id, its title, or
// "Root".
func RootName(doc *jschema.Object) string {
	if id, ok := doc.String("$id"); ok {
		if name := ParseIDURI(id).Type; name != "" {
			return normalizeName(name)
		}
	}
	if title, ok := doc.String("title"); ok && strings.TrimSpace(title) != "" {
		return normalizeName(title)
	}
	return "Root"
}

// LocateDefinitions returns the path of the definitions container: the override
// when given, then "definitions", "$defs" and "components/schemas". It returns
// nil when the document has none.
func LocateDefinitions(doc *jschema.Object, override []string) []string {
	if len(override) > 0 {
		return override
	}
	for _, candidate := range [][]string{{"definitions"}, {"$defs"}, {"components", "schemas"}} {
		if v, ok := jschema.Lookup(doc, candidate); ok {
			if _, isObj := v.(*jschema.Object); isObj {
				return candidate
			}
		}
	}
	return nil
}

// dedupe keeps the first declaration of every name.
func dedupe(decls []metamodel.Declaration) []metamodel.Declaration {
	seen := make(map[string]struct{}, len(decls))
	out := make([]metamodel.Declaration, 0, len(decls))
	for _, d := range decls {
		if d == nil {
			continue
		}
		name := d.DeclarationName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, d)
	}
	return out
}
