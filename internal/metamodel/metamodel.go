// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package metamodel defines the target declaration graph: models, concepts, enums,
// scalars and their properties. Every node serializes with a "$class" tag qualified
// by the metamodel namespace, so any downstream renderer can consume it.
package metamodel

// DefaultNamespace is the metamodel namespace used when none is configured.
const DefaultNamespace = "concerto.metamodel@1.0.0"

// StringifiedJSON is the decorator attached to opaque properties and scalars whose
// value is a JSON document serialized to a string.
const StringifiedJSON = "StringifiedJson"

// Models is the top-level envelope returned by inference.
type Models struct {
	Class  string   `json:"$class"`
	Models []*Model `json:"models"`
}

// Model is one namespace worth of declarations.
type Model struct {
	Class        string        `json:"$class"`
	Decorators   []*Decorator  `json:"decorators"`
	Namespace    string        `json:"namespace"`
	Imports      []any         `json:"imports"`
	Declarations []Declaration `json:"declarations"`
}

// Declaration is a named top-level type: a concept, an enum, or a scalar.
type Declaration interface {
	DeclarationName() string
	isDeclaration()
}

// Property is a field of a concept.
type Property interface {
	// Base exposes the fields shared by every property variant.
	Base() *PropertyBase
	// TypeName is the declared type: a primitive name such as "String" or the
	// name of the referenced declaration.
	TypeName() string
}

// Primitive names a built-in property type.
type Primitive string

const (
	String   Primitive = "String"
	Boolean  Primitive = "Boolean"
	Double   Primitive = "Double"
	Integer  Primitive = "Integer"
	DateTime Primitive = "DateTime"
)

// ConceptDeclaration is a named structure with an ordered list of properties.
type ConceptDeclaration struct {
	Class      string       `json:"$class"`
	Name       string       `json:"name"`
	IsAbstract bool         `json:"isAbstract"`
	Properties []Property   `json:"properties"`
	Decorators []*Decorator `json:"decorators,omitempty"`
}

func (c *ConceptDeclaration) DeclarationName() string { return c.Name }
func (*ConceptDeclaration) isDeclaration()            {}

// EnumDeclaration is a named, ordered list of enum values.
type EnumDeclaration struct {
	Class      string          `json:"$class"`
	Name       string          `json:"name"`
	Properties []*EnumProperty `json:"properties"`
	Decorators []*Decorator    `json:"decorators,omitempty"`
}

func (e *EnumDeclaration) DeclarationName() string { return e.Name }
func (*EnumDeclaration) isDeclaration()            {}

// EnumProperty is a single enum value.
type EnumProperty struct {
	Class string `json:"$class"`
	Name  string `json:"name"`
}

// StringScalar is a named alias of the String primitive.
type StringScalar struct {
	Class        string                `json:"$class"`
	Name         string                `json:"name"`
	DefaultValue *string               `json:"defaultValue,omitempty"`
	Validator    *StringRegexValidator `json:"validator,omitempty"`
	Decorators   []*Decorator          `json:"decorators,omitempty"`
}

func (s *StringScalar) DeclarationName() string { return s.Name }
func (*StringScalar) isDeclaration()            {}

// PropertyBase holds the fields every property variant carries.
type PropertyBase struct {
	Class      string       `json:"$class"`
	Name       string       `json:"name"`
	IsArray    bool         `json:"isArray"`
	IsOptional bool         `json:"isOptional"`
	Decorators []*Decorator `json:"decorators,omitempty"`
}

// Base returns the receiver.
func (b *PropertyBase) Base() *PropertyBase { return b }

// StringProperty is a String-typed property.
type StringProperty struct {
	PropertyBase
	DefaultValue *string               `json:"defaultValue,omitempty"`
	Validator    *StringRegexValidator `json:"validator,omitempty"`
}

func (*StringProperty) TypeName() string { return string(String) }

// BooleanProperty is a Boolean-typed property.
type BooleanProperty struct {
	PropertyBase
	DefaultValue *bool `json:"defaultValue,omitempty"`
}

func (*BooleanProperty) TypeName() string { return string(Boolean) }

// DoubleProperty is a Double-typed property.
type DoubleProperty struct {
	PropertyBase
	DefaultValue *float64              `json:"defaultValue,omitempty"`
	Validator    *DoubleDomainValidator `json:"validator,omitempty"`
}

func (*DoubleProperty) TypeName() string { return string(Double) }

// IntegerProperty is an Integer-typed property.
type IntegerProperty struct {
	PropertyBase
	DefaultValue *int64                  `json:"defaultValue,omitempty"`
	Validator    *IntegerDomainValidator `json:"validator,omitempty"`
}

func (*IntegerProperty) TypeName() string { return string(Integer) }

// DateTimeProperty is a DateTime-typed property.
type DateTimeProperty struct {
	PropertyBase
}

func (*DateTimeProperty) TypeName() string { return string(DateTime) }

// ObjectProperty references another declaration by name.
type ObjectProperty struct {
	PropertyBase
	Type TypeIdentifier `json:"type"`
}

func (p *ObjectProperty) TypeName() string { return p.Type.Name }

// TypeIdentifier names a declaration.
type TypeIdentifier struct {
	Class string `json:"$class"`
	Name  string `json:"name"`
}

// StringRegexValidator constrains a string to a regular expression.
type StringRegexValidator struct {
	Class   string `json:"$class"`
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

// DoubleDomainValidator bounds a Double property.
type DoubleDomainValidator struct {
	Class string   `json:"$class"`
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

// IntegerDomainValidator bounds an Integer property.
type IntegerDomainValidator struct {
	Class string `json:"$class"`
	Lower *int64 `json:"lower,omitempty"`
	Upper *int64 `json:"upper,omitempty"`
}

// Decorator is a named annotation with optional string arguments.
type Decorator struct {
	Class     string             `json:"$class"`
	Name      string             `json:"name"`
	Arguments []*DecoratorString `json:"arguments,omitempty"`
}

// DecoratorString is a string decorator argument.
type DecoratorString struct {
	Class string `json:"$class"`
	Value string `json:"value"`
}

// PrimitiveOf returns the primitive type of p, or false for object properties.
func PrimitiveOf(p Property) (Primitive, bool) {
	if _, ok := p.(*ObjectProperty); ok {
		return "", false
	}
	return Primitive(p.TypeName()), true
}

// HasDecorator reports whether decorators contains one with the given name.
func HasDecorator(decorators []*Decorator, name string) bool {
	for _, d := range decorators {
		if d.Name == name {
			return true
		}
	}
	return false
}
