// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metamodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestPrintCTO_Enum(t *testing.T) {
	b := NewBuilder(DefaultNamespace)
	m := b.Model("com.test@1.0.0", []Declaration{b.Enum("Root", []string{"one", "two"})})

	want := `namespace com.test@1.0.0

enum Root {
  o one
  o two
}
`
	assert.Equal(t, want, PrintCTO(m))
}

func TestPrintCTO_Concept(t *testing.T) {
	b := NewBuilder(DefaultNamespace)

	xs := b.ObjectProperty("xs", "Root$_properties$_xs")
	xs.IsArray = true
	xs.IsOptional = true

	code := b.StringProperty("code")
	code.Validator = b.RegexValidator("^[A-Z]+$")
	code.DefaultValue = ptr("AB")

	age := b.IntegerProperty("age")
	age.Validator = b.IntegerDomain(ptr(int64(0)), nil)

	score := b.DoubleProperty("score")
	score.Validator = b.DoubleDomain(nil, ptr(10.0))
	score.IsOptional = true

	flag := b.BooleanProperty("flag")
	flag.DefaultValue = ptr(true)

	meta := b.StringProperty("meta")
	meta.Decorators = []*Decorator{b.Decorator(StringifiedJSON)}

	union := b.StringProperty("either")
	union.Decorators = []*Decorator{b.Decorator("union", `["string","number"]`)}

	m := b.Model("com.test@1.0.0", []Declaration{
		b.Concept("Root", []Property{xs, code, age, score, flag, meta, union, b.DateTimeProperty("at")}),
		b.StringScalar("Blob", b.Decorator(StringifiedJSON)),
	})

	want := `namespace com.test@1.0.0

concept Root {
  o Root$_properties$_xs[] xs optional
  o String code default="AB" regex=/^[A-Z]+$/
  o Integer age range=[0,]
  o Double score range=[,10.0] optional
  o Boolean flag default=true
  @StringifiedJson
  o String meta
  @union("[\"string\",\"number\"]")
  o String either
  o DateTime at
}

@StringifiedJson
scalar Blob extends String
`
	assert.Equal(t, want, PrintCTO(m))
}

func TestPrintCTO_AbstractAndEmpty(t *testing.T) {
	b := NewBuilder(DefaultNamespace)
	c := b.Concept("Base", nil)
	c.IsAbstract = true

	assert.Equal(t, "namespace ns\n\nabstract concept Base {\n}\n", PrintCTO(b.Model("ns", []Declaration{c})))
	assert.Equal(t, "namespace ns\n", PrintCTO(b.Model("ns", nil)))
}
