// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Namespace string         // model namespace without its version, e.g. "com.example"
	Version   string         // namespace version, if any
	Defs      []TypeDef      // concepts in declaration order
	Enums     []EnumDef      // enums in declaration order
	Extra     map[string]any // translator-specific template data
}

// TypeDef represents a concept.
type TypeDef struct {
	Name     string  // formatted name, e.g. "Address"
	Source   string  // declaration name in the model
	Abstract bool    // concept is abstract
	Fields   []Field // ordered fields
}

// EnumDef represents an enum declaration.
type EnumDef struct {
	Name   string
	Source string
	Values []string
}

// Field represents a single property of a concept.
type Field struct {
	Name        string      // property name (may be mutated by EnrichField)
	Source      string      // property name in the model
	Type        string      // fully resolved target type string
	Nullable    bool        // true if the property is optional
	Array       bool        // true if the property holds a list
	Tag         string      // language-specific annotation, e.g. `json:"name,omitempty"`
	Constraints Constraints // validation details carried by the property
}

// Constraints holds the validation details of a property.
type Constraints struct {
	Pattern    string   // regex a string must match
	Lower      *float64 // numeric lower bound
	Upper      *float64 // numeric upper bound
	Default    any      // default value
	JSON       bool     // value is a JSON document serialized to a string
	Union      string   // JSON list of the member types a string stands in for
	Primitive  bool     // type is a built-in primitive (scalars included)
	Reference  string   // referenced declaration name, for non-primitive types
	Enumerated bool     // referenced declaration is an enum
}
