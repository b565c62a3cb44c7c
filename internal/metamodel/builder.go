// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metamodel

// Builder constructs metamodel nodes whose "$class" tags are qualified by a
// metamodel namespace.
type Builder struct {
	namespace string
}

// NewBuilder returns a Builder for the given metamodel namespace.
func NewBuilder(namespace string) Builder {
	return Builder{namespace: namespace}
}

// Class qualifies a metamodel type name, e.g. "concerto.metamodel@1.0.0.Model".
func (b Builder) Class(name string) string {
	return b.namespace + "." + name
}

// Models wraps models in the top-level envelope.
func (b Builder) Models(models ...*Model) *Models {
	return &Models{Class: b.Class("Models"), Models: models}
}

// Model returns a model for namespace holding declarations.
func (b Builder) Model(namespace string, declarations []Declaration) *Model {
	if declarations == nil {
		declarations = []Declaration{}
	}
	return &Model{
		Class:        b.Class("Model"),
		Decorators:   []*Decorator{},
		Namespace:    namespace,
		Imports:      []any{},
		Declarations: declarations,
	}
}

// Concept returns a concept declaration.
func (b Builder) Concept(name string, properties []Property) *ConceptDeclaration {
	if properties == nil {
		properties = []Property{}
	}
	return &ConceptDeclaration{Class: b.Class("ConceptDeclaration"), Name: name, Properties: properties}
}

// Enum returns an enum declaration with one value per name.
func (b Builder) Enum(name string, values []string) *EnumDeclaration {
	props := make([]*EnumProperty, 0, len(values))
	for _, v := range values {
		props = append(props, &EnumProperty{Class: b.Class("EnumProperty"), Name: v})
	}
	return &EnumDeclaration{Class: b.Class("EnumDeclaration"), Name: name, Properties: props}
}

// StringScalar returns a string scalar declaration.
func (b Builder) StringScalar(name string, decorators ...*Decorator) *StringScalar {
	return &StringScalar{Class: b.Class("StringScalar"), Name: name, Decorators: decorators}
}

func (b Builder) base(kind, name string) PropertyBase {
	return PropertyBase{Class: b.Class(kind), Name: name}
}

// StringProperty returns a String property.
func (b Builder) StringProperty(name string) *StringProperty {
	return &StringProperty{PropertyBase: b.base("StringProperty", name)}
}

// BooleanProperty returns a Boolean property.
func (b Builder) BooleanProperty(name string) *BooleanProperty {
	return &BooleanProperty{PropertyBase: b.base("BooleanProperty", name)}
}

// DoubleProperty returns a Double property.
func (b Builder) DoubleProperty(name string) *DoubleProperty {
	return &DoubleProperty{PropertyBase: b.base("DoubleProperty", name)}
}

// IntegerProperty returns an Integer property.
func (b Builder) IntegerProperty(name string) *IntegerProperty {
	return &IntegerProperty{PropertyBase: b.base("IntegerProperty", name)}
}

// DateTimeProperty returns a DateTime property.
func (b Builder) DateTimeProperty(name string) *DateTimeProperty {
	return &DateTimeProperty{PropertyBase: b.base("DateTimeProperty", name)}
}

// ObjectProperty returns a property referencing the declaration typeName.
func (b Builder) ObjectProperty(name, typeName string) *ObjectProperty {
	return &ObjectProperty{
		PropertyBase: b.base("ObjectProperty", name),
		Type:         TypeIdentifier{Class: b.Class("TypeIdentifier"), Name: typeName},
	}
}

// Decorator returns a decorator with string arguments.
func (b Builder) Decorator(name string, args ...string) *Decorator {
	d := &Decorator{Class: b.Class("Decorator"), Name: name}
	for _, a := range args {
		d.Arguments = append(d.Arguments, &DecoratorString{Class: b.Class("DecoratorString"), Value: a})
	}
	return d
}

// RegexValidator returns a string pattern validator.
func (b Builder) RegexValidator(pattern string) *StringRegexValidator {
	return &StringRegexValidator{Class: b.Class("StringRegexValidator"), Pattern: pattern}
}

// DoubleDomain returns a Double range validator.
func (b Builder) DoubleDomain(lower, upper *float64) *DoubleDomainValidator {
	return &DoubleDomainValidator{Class: b.Class("DoubleDomainValidator"), Lower: lower, Upper: upper}
}

// IntegerDomain returns an Integer range validator.
func (b Builder) IntegerDomain(lower, upper *int64) *IntegerDomainValidator {
	return &IntegerDomainValidator{Class: b.Class("IntegerDomainValidator"), Lower: lower, Upper: upper}
}
