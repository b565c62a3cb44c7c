// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package metamodel

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"one", "one"},
		{"3", "_3"},
		{"42abc", "_42abc"},
		{"foo bar", "foo_20bar"},
		{"a-b", "a_2db"},
		{"a%2Cb", "a_2cb"},
		{"%zz", "_25zz"},
		{"$_x", "$_x"},
		{"Root$_properties$_xs", "Root$_properties$_xs"},
		{"été", "été"},
		{"", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdentifier(tt.in))
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("Foo_1"))
	assert.True(t, IsValidIdentifier("$class"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("1abc"))
	assert.False(t, IsValidIdentifier("a b"))
}

func TestModelJSON(t *testing.T) {
	b := NewBuilder(DefaultNamespace)
	name := b.StringProperty("name")
	name.IsOptional = true
	tags := b.ObjectProperty("tags", "Tag")
	tags.IsArray = true

	models := b.Models(b.Model("com.test@1.0.0", []Declaration{
		b.Concept("Root", []Property{name, tags}),
		b.Enum("Tag", []string{"a"}),
	}))

	data, err := json.Marshal(models)
	require.NoError(t, err)

	want := `{"$class":"concerto.metamodel@1.0.0.Models","models":[{` +
		`"$class":"concerto.metamodel@1.0.0.Model","decorators":[],"namespace":"com.test@1.0.0","imports":[],"declarations":[` +
		`{"$class":"concerto.metamodel@1.0.0.ConceptDeclaration","name":"Root","isAbstract":false,"properties":[` +
		`{"$class":"concerto.metamodel@1.0.0.StringProperty","name":"name","isArray":false,"isOptional":true},` +
		`{"$class":"concerto.metamodel@1.0.0.ObjectProperty","name":"tags","isArray":true,"isOptional":false,` +
		`"type":{"$class":"concerto.metamodel@1.0.0.TypeIdentifier","name":"Tag"}}]},` +
		`{"$class":"concerto.metamodel@1.0.0.EnumDeclaration","name":"Tag","properties":[` +
		`{"$class":"concerto.metamodel@1.0.0.EnumProperty","name":"a"}]}]}]}`
	assert.JSONEq(t, want, string(data))
}

func TestBuilder_Decorator(t *testing.T) {
	b := NewBuilder("mm")
	d := b.Decorator("union", `["string","null"]`)
	assert.Equal(t, "mm.Decorator", d.Class)
	require.Len(t, d.Arguments, 1)
	assert.Equal(t, "mm.DecoratorString", d.Arguments[0].Class)
	assert.Equal(t, `["string","null"]`, d.Arguments[0].Value)

	assert.Empty(t, b.Decorator(StringifiedJSON).Arguments)
}

func TestPrimitiveOf(t *testing.T) {
	b := NewBuilder("mm")
	p, ok := PrimitiveOf(b.DateTimeProperty("at"))
	assert.True(t, ok)
	assert.Equal(t, DateTime, p)

	_, ok = PrimitiveOf(b.ObjectProperty("x", "X"))
	assert.False(t, ok)
}

func TestHasDecorator(t *testing.T) {
	b := NewBuilder("mm")
	decorators := []*Decorator{b.Decorator("a"), b.Decorator(StringifiedJSON)}
	assert.True(t, HasDecorator(decorators, StringifiedJSON))
	assert.False(t, HasDecorator(decorators, "b"))
	assert.False(t, HasDecorator(nil, "a"))
}
