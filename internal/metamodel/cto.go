// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metamodel

import (
	"io"
	"strconv"
	"strings"
)

// PrintCTO renders a model in the textual CTO notation.
func PrintCTO(m *Model) string {
	var sb strings.Builder
	_ = WriteCTO(&sb, m)
	return sb.String()
}

// WriteCTO writes a model in the textual CTO notation to w.
func WriteCTO(w io.Writer, m *Model) error {
	p := &ctoPrinter{}
	p.line("namespace " + m.Namespace)
	for _, decl := range m.Declarations {
		p.line("")
		switch d := decl.(type) {
		case *ConceptDeclaration:
			p.concept(d)
		case *EnumDeclaration:
			p.enum(d)
		case *StringScalar:
			p.scalar(d)
		}
	}
	_, err := io.WriteString(w, p.sb.String())
	return err
}

type ctoPrinter struct {
	sb strings.Builder
}

func (p *ctoPrinter) line(s string) {
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *ctoPrinter) decorators(indent string, decorators []*Decorator) {
	for _, d := range decorators {
		p.line(indent + decoratorCTO(d))
	}
}

func (p *ctoPrinter) concept(c *ConceptDeclaration) {
	p.decorators("", c.Decorators)
	head := "concept " + c.Name + " {"
	if c.IsAbstract {
		head = "abstract " + head
	}
	p.line(head)
	for _, prop := range c.Properties {
		p.decorators("  ", prop.Base().Decorators)
		p.line("  " + propertyCTO(prop))
	}
	p.line("}")
}

func (p *ctoPrinter) enum(e *EnumDeclaration) {
	p.decorators("", e.Decorators)
	p.line("enum " + e.Name + " {")
	for _, v := range e.Properties {
		p.line("  o " + v.Name)
	}
	p.line("}")
}

func (p *ctoPrinter) scalar(s *StringScalar) {
	p.decorators("", s.Decorators)
	line := "scalar " + s.Name + " extends String"
	if s.DefaultValue != nil {
		line += " default=" + strconv.Quote(*s.DefaultValue)
	}
	if s.Validator != nil {
		line += " regex=" + regexCTO(s.Validator)
	}
	p.line(line)
}

func decoratorCTO(d *Decorator) string {
	if len(d.Arguments) == 0 {
		return "@" + d.Name
	}
	args := make([]string, 0, len(d.Arguments))
	for _, a := range d.Arguments {
		args = append(args, strconv.Quote(a.Value))
	}
	return "@" + d.Name + "(" + strings.Join(args, ",") + ")"
}

func regexCTO(v *StringRegexValidator) string {
	return "/" + v.Pattern + "/" + v.Flags
}

func propertyCTO(prop Property) string {
	b := prop.Base()
	parts := []string{"o", prop.TypeName() + arraySuffix(b.IsArray), b.Name}

	switch p := prop.(type) {
	case *StringProperty:
		if p.DefaultValue != nil {
			parts = append(parts, "default="+strconv.Quote(*p.DefaultValue))
		}
		if p.Validator != nil {
			parts = append(parts, "regex="+regexCTO(p.Validator))
		}
	case *BooleanProperty:
		if p.DefaultValue != nil {
			parts = append(parts, "default="+strconv.FormatBool(*p.DefaultValue))
		}
	case *DoubleProperty:
		if p.DefaultValue != nil {
			parts = append(parts, "default="+formatFloat(*p.DefaultValue))
		}
		if p.Validator != nil {
			parts = append(parts, "range="+rangeCTO(floatBound(p.Validator.Lower), floatBound(p.Validator.Upper)))
		}
	case *IntegerProperty:
		if p.DefaultValue != nil {
			parts = append(parts, "default="+strconv.FormatInt(*p.DefaultValue, 10))
		}
		if p.Validator != nil {
			parts = append(parts, "range="+rangeCTO(intBound(p.Validator.Lower), intBound(p.Validator.Upper)))
		}
	}

	if b.IsOptional {
		parts = append(parts, "optional")
	}
	return strings.Join(parts, " ")
}

func arraySuffix(isArray bool) string {
	if isArray {
		return "[]"
	}
	return ""
}

func rangeCTO(lower, upper string) string {
	return "[" + lower + "," + upper + "]"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func floatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func intBound(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
