// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dacolabs/schemagen/internal/jschema"
)

// Meta-schema URIs the validator knows without fetching anything.
var knownDrafts = []string{"draft-04", "draft-06", "draft-07", "2019-09", "2020-12"}

// validateDocument compiles doc with a draft-aware validator so malformed schemas
// fail early. The compiler error is returned as is.
func validateDocument(doc *jschema.Object, rootName string) error {
	plain, _ := jschema.Plain(doc).(map[string]any)
	schemaURI, _ := plain["$schema"].(string)
	if schemaURI != "" && !isKnownDraft(schemaURI) {
		delete(plain, "$schema")
	}
	dropRemoteRefs(plain)

	data, err := json.Marshal(plain)
	if err != nil {
		return err
	}
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}

	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(selectDraft(doc))

	schemaURL := rootName + ".json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return err
	}
	_, err = compiler.Compile(schemaURL)
	return err
}

// selectDraft uses 2020-12 when asked for, and 2019-09 otherwise. OpenAPI
// documents use the dialect of their version.
func selectDraft(doc *jschema.Object) *jsonschema.Draft {
	if version, ok := doc.String("openapi"); ok {
		if strings.HasPrefix(version, "3.0") {
			return jsonschema.Draft4
		}
		return jsonschema.Draft2020
	}
	if uri, _ := doc.String("$schema"); strings.Contains(uri, "2020-12") {
		return jsonschema.Draft2020
	}
	return jsonschema.Draft2019
}

func isKnownDraft(uri string) bool {
	for _, d := range knownDrafts {
		if strings.Contains(uri, d) {
			return true
		}
	}
	return false
}

// dropRemoteRefs removes references that would need fetching.
func dropRemoteRefs(v any) {
	switch t := v.(type) {
	case map[string]any:
		if ref, ok := t["$ref"].(string); ok && !strings.HasPrefix(ref, "#") {
			delete(t, "$ref")
		}
		for _, child := range t {
			dropRemoteRefs(child)
		}
	case []any:
		for _, child := range t {
			dropRemoteRefs(child)
		}
	}
}
