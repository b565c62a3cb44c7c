// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
)

// prepareContext holds lookup tables built once per model.
type prepareContext struct {
	resolver TypeResolver
	scalars  map[string]*metamodel.StringScalar
	enums    map[string]bool
}

// Prepare converts a model into a SchemaData ready for template execution.
// Concepts and enums keep their declaration order. Scalars are not emitted as
// types; properties using them resolve to the scalar's primitive.
func Prepare(model *metamodel.Model, resolver TypeResolver) (*SchemaData, error) {
	if model == nil {
		return nil, errors.New("model is nil")
	}

	ctx := &prepareContext{
		resolver: resolver,
		scalars:  make(map[string]*metamodel.StringScalar),
		enums:    make(map[string]bool),
	}
	for _, decl := range model.Declarations {
		switch d := decl.(type) {
		case *metamodel.StringScalar:
			ctx.scalars[d.Name] = d
		case *metamodel.EnumDeclaration:
			ctx.enums[d.Name] = true
		}
	}

	namespace, version, _ := strings.Cut(model.Namespace, "@")
	data := &SchemaData{
		Namespace: namespace,
		Version:   version,
		Extra:     make(map[string]any),
	}

	for _, decl := range model.Declarations {
		switch d := decl.(type) {
		case *metamodel.ConceptDeclaration:
			def := TypeDef{
				Name:     resolver.FormatDefName(d.Name),
				Source:   d.Name,
				Abstract: d.IsAbstract,
				Fields:   make([]Field, 0, len(d.Properties)),
			}
			for _, p := range d.Properties {
				def.Fields = append(def.Fields, ctx.resolveField(p))
			}
			data.Defs = append(data.Defs, def)
		case *metamodel.EnumDeclaration:
			values := make([]string, 0, len(d.Properties))
			for _, v := range d.Properties {
				values = append(values, v.Name)
			}
			data.Enums = append(data.Enums, EnumDef{
				Name:   resolver.FormatDefName(d.Name),
				Source: d.Name,
				Values: values,
			})
		}
	}

	return data, nil
}

func (c *prepareContext) resolveField(p metamodel.Property) Field {
	base := p.Base()
	f := Field{
		Name:        base.Name,
		Source:      base.Name,
		Nullable:    base.IsOptional,
		Array:       base.IsArray,
		Constraints: extractConstraints(p),
	}

	var typeStr string
	if prim, ok := metamodel.PrimitiveOf(p); ok {
		typeStr = c.resolver.PrimitiveType(prim)
		f.Constraints.Primitive = true
	} else if scalar, ok := c.scalars[p.TypeName()]; ok {
		typeStr = c.resolver.PrimitiveType(metamodel.String)
		f.Constraints.Primitive = true
		f.Constraints.JSON = metamodel.HasDecorator(scalar.Decorators, metamodel.StringifiedJSON)
		if scalar.Validator != nil && f.Constraints.Pattern == "" {
			f.Constraints.Pattern = scalar.Validator.Pattern
		}
	} else {
		typeStr = c.resolver.RefType(p.TypeName())
		f.Constraints.Reference = p.TypeName()
		f.Constraints.Enumerated = c.enums[p.TypeName()]
	}

	if base.IsArray {
		typeStr = c.resolver.ArrayType(typeStr)
	}
	f.Type = typeStr

	c.resolver.EnrichField(&f)
	return f
}

// extractConstraints copies validators, defaults and decorators from a property.
func extractConstraints(p metamodel.Property) Constraints {
	var c Constraints
	for _, d := range p.Base().Decorators {
		switch d.Name {
		case metamodel.StringifiedJSON:
			c.JSON = true
		case "union":
			if len(d.Arguments) > 0 {
				c.Union = d.Arguments[0].Value
			}
		}
	}

	switch t := p.(type) {
	case *metamodel.StringProperty:
		if t.Validator != nil {
			c.Pattern = t.Validator.Pattern
		}
		if t.DefaultValue != nil {
			c.Default = *t.DefaultValue
		}
	case *metamodel.BooleanProperty:
		if t.DefaultValue != nil {
			c.Default = *t.DefaultValue
		}
	case *metamodel.DoubleProperty:
		if t.Validator != nil {
			c.Lower, c.Upper = t.Validator.Lower, t.Validator.Upper
		}
		if t.DefaultValue != nil {
			c.Default = *t.DefaultValue
		}
	case *metamodel.IntegerProperty:
		if t.Validator != nil {
			c.Lower, c.Upper = intToFloat(t.Validator.Lower), intToFloat(t.Validator.Upper)
		}
		if t.DefaultValue != nil {
			c.Default = *t.DefaultValue
		}
	}
	return c
}

func intToFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// ToSnakeCase converts a string to a valid snake_case identifier.
// It splits on non-alphanumeric characters, lowercases each part,
// and prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	parts := strings.FieldsFunc(s, isSeparator)

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	result := strings.Join(parts, "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// ToPascalCase converts a name to PascalCase for type name generation. Any
// character that is not a letter or digit separates words, so synthesized
// names such as "Root$_properties$_xs" become "RootPropertiesXs".
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, isSeparator)

	var sb strings.Builder
	for _, part := range parts {
		r := []rune(part)
		sb.WriteString(strings.ToUpper(string(r[0])) + string(r[1:]))
	}

	result := sb.String()
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// ToIdentifier replaces every character outside [A-Za-z0-9_] with an underscore
// and prefixes a leading digit, giving a name most schema languages accept.
func ToIdentifier(s string) string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return r
		}
		return '_'
	}, s)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
