// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"fmt"
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

// Property names that collide with fields every concept already carries.
var reservedProperties = []string{"$identifier", "$class", "$timestamp"}

// result is what visiting a fragment yields: properties for the enclosing concept
// and declarations spawned along the way.
type result struct {
	properties   []metamodel.Property
	declarations []metamodel.Declaration
}

func (r *result) append(other result) {
	r.properties = append(r.properties, other.properties...)
	r.declarations = append(r.declarations, other.declarations...)
}

// refTrail is the set of local references already followed on the current
// descent. Extending it never affects sibling branches.
type refTrail struct {
	ref    string
	parent *refTrail
}

func (r *refTrail) contains(ref string) bool {
	for ; r != nil; r = r.parent {
		if r.ref == ref {
			return true
		}
	}
	return false
}

// overrides are property fields decided by an enclosing fragment, applied once by
// the property handler that creates the property.
type overrides struct {
	isArray bool
}

// traversal is the recursion state threaded by value through the visitor.
type traversal struct {
	visited   *refTrail
	overrides overrides
}

func (t traversal) follow(ref string) traversal {
	t.visited = &refTrail{ref: ref, parent: t.visited}
	return t
}

func (t traversal) withOverrides(o overrides) traversal {
	t.overrides = o
	return t
}

type visitor struct {
	b        metamodel.Builder
	diag     Diag
	doc      *jschema.Object
	rootName string
	defsPath []string
}

func (v *visitor) visit(f fragment, t traversal) (result, error) {
	switch f := f.(type) {
	case modelFragment:
		return v.visitModel(f, t)
	case definitionsFragment:
		return v.visitDefinitions(f, t)
	case enumDefinitionFragment:
		return v.visitEnumDefinition(f), nil
	case nonEnumDefinitionFragment:
		return v.visitNonEnumDefinition(f, t)
	case propertiesFragment:
		return v.visitProperties(f, t)
	case localReferenceFragment:
		return v.visitLocalReference(f, t)
	case referenceFragment:
		// Remote references are not followed.
		return result{}, nil
	case arrayPropertyFragment:
		return v.visitArrayProperty(f, t)
	case fixedElementsArrayPropertyFragment:
		return v.visitFixedElementsArrayProperty(f, t)
	case propertyFragment:
		return v.visitProperty(f, t)
	default:
		return result{}, errors.AssertionFailedf("unhandled fragment %T", f)
	}
}

func (v *visitor) visitModel(f modelFragment, t traversal) (result, error) {
	out, err := v.visit(newDefinition(v.rootName, f.body, []string{v.rootName}, true), t)
	if err != nil {
		return result{}, err
	}
	if v.defsPath == nil {
		return out, nil
	}
	container, ok := jschema.Lookup(f.body, v.defsPath)
	if !ok {
		return out, nil
	}
	defs, ok := container.(*jschema.Object)
	if !ok {
		return out, nil
	}
	fromDefs, err := v.visit(definitionsFragment{body: defs, path: v.defsPath}, t)
	if err != nil {
		return result{}, err
	}
	out.append(fromDefs)
	return out, nil
}

func (v *visitor) visitDefinitions(f definitionsFragment, t traversal) (result, error) {
	var out result
	for name, body := range f.body.All() {
		r, err := v.visit(newDefinition(name, body, []string{name}, false), t)
		if err != nil {
			return result{}, err
		}
		out.append(r)
	}
	return out, nil
}

func (v *visitor) visitEnumDefinition(f enumDefinitionFragment) result {
	return result{declarations: []metamodel.Declaration{v.enum(v.declarationName(f.definitionFragment), f.values)}}
}

func (v *visitor) declarationName(f definitionFragment) string {
	if f.root {
		return v.rootName
	}
	return normalizeName(f.name)
}

func (v *visitor) visitNonEnumDefinition(f nonEnumDefinitionFragment, t traversal) (result, error) {
	name := v.declarationName(f.definitionFragment)

	obj, ok := f.body.(*jschema.Object)
	if !ok {
		if b, isBool := f.body.(bool); isBool && b {
			return v.scalar(name), nil
		}
		return result{}, nil
	}

	switch {
	case obj.Has("$ref"):
		r, err := v.visit(newProperty(f.name, obj, f.path, false), t)
		return result{declarations: r.declarations}, err

	case hasAlternation(obj):
		merged, kw := flattenAlternation(obj)
		v.diag.Warnf("Keyword '%s' in definition '%s' is not fully supported. Defaulting to first alternative.", kw, f.name)
		return v.visit(newDefinition(f.name, merged, f.path, f.root), t)

	case isFreeform(obj):
		if f.root && v.isDefinitionsContainer(obj) {
			return result{}, nil
		}
		return v.scalar(name), nil

	case isUnion(obj):
		typ, _ := obj.Get("type")
		v.diag.Warnf("Union type %s in '%s' is not fully supported. Defaulting to String.", jsonString(typ), f.name)
		return result{declarations: []metamodel.Declaration{
			v.b.StringScalar(name, v.b.Decorator("union", jsonString(typ))),
		}}, nil

	case isArraySchema(obj):
		r, err := v.visit(newProperty(f.name, obj, f.path, false), t)
		return result{declarations: r.declarations}, err

	case isObjectSchema(obj):
		return v.concept(name, obj, f.path, t)
	}

	if f.root {
		return result{}, nil
	}
	typ, _ := obj.Get("type")
	return result{}, unsupportedType(typ, f.name)
}

// isDefinitionsContainer reports whether the root document only exists to hold
// definitions.
func (v *visitor) isDefinitionsContainer(root *jschema.Object) bool {
	if v.defsPath == nil {
		return false
	}
	if typ, ok := root.Get("type"); ok && typ == "object" {
		return false
	}
	container, ok := jschema.Lookup(root, v.defsPath)
	if !ok {
		return false
	}
	defs, ok := container.(*jschema.Object)
	return ok && defs.Len() > 0
}

func isUnion(obj *jschema.Object) bool {
	_, ok := obj.Slice("type")
	return ok
}

func (v *visitor) concept(name string, obj *jschema.Object, path []string, t traversal) (result, error) {
	v.warnIgnoredKeywords(name, obj)

	props, _ := obj.Object("properties")
	r, err := v.visit(propertiesFragment{body: props, required: requiredSet(obj), path: childPath(path, "properties")}, t.withOverrides(overrides{}))
	if err != nil {
		return result{}, err
	}

	decls := []metamodel.Declaration{v.b.Concept(name, r.properties)}
	return result{declarations: append(decls, r.declarations...)}, nil
}

func (v *visitor) visitProperties(f propertiesFragment, t traversal) (result, error) {
	var out result
	for name, body := range f.body.All() {
		if slices.Contains(reservedProperties, name) {
			continue
		}
		optional := !slices.Contains(f.required, name)
		r, err := v.visit(newProperty(name, body, childPath(f.path, name), optional), t)
		if err != nil {
			return result{}, err
		}
		out.append(r)
	}
	return out, nil
}

func (v *visitor) visitLocalReference(f localReferenceFragment, t traversal) (result, error) {
	ptr := f.pointer
	if len(ptr) == 0 {
		return v.objectProperty(f.propertyFragment, v.rootName, t), nil
	}

	if v.defsPath != nil && slices.Equal(ptr[:len(ptr)-1], v.defsPath) {
		defName := ptr[len(ptr)-1]
		target, shapeOnly := v.shapeOnlyDefinition(ptr)
		if t.visited.contains(f.ref) {
			if shapeOnly {
				v.diag.Warnf("Circular reference '%s' in '%s' has no declaration. It has been mapped to a String holding JSON.", f.ref, f.name)
				return v.freeformProperty(f.propertyFragment, t), nil
			}
			return v.objectProperty(f.propertyFragment, normalizeName(defName), t), nil
		}
		if shapeOnly {
			return v.visit(newProperty(f.name, target, []string{defName}, f.optional), t.follow(f.ref))
		}
		return v.objectProperty(f.propertyFragment, normalizeName(defName), t), nil
	}

	return v.objectProperty(f.propertyFragment, v.referenceName(ptr), t), nil
}

// shapeOnlyDefinition returns the definition at ptr when it is a reference or an
// array. Such definitions have no declaration of their own, so a property
// pointing at one takes the shape of the definition.
func (v *visitor) shapeOnlyDefinition(ptr []string) (*jschema.Object, bool) {
	body, ok := jschema.Lookup(v.doc, ptr)
	obj, isObj := body.(*jschema.Object)
	if !ok || !isObj {
		return nil, false
	}
	target, _ := flattenAlternation(obj)
	return target, target.Has("$ref") || isArraySchema(target)
}

// referenceName names the structure at a local pointer the way inline objects at
// that location are named.
func (v *visitor) referenceName(ptr []string) string {
	if v.defsPath != nil && len(ptr) >= len(v.defsPath) && slices.Equal(ptr[:len(v.defsPath)], v.defsPath) {
		return inlineObjectName(ptr[len(v.defsPath):])
	}
	return inlineObjectName(append([]string{v.rootName}, ptr...))
}

func (v *visitor) visitArrayProperty(f arrayPropertyFragment, t traversal) (result, error) {
	if obj, ok := f.body.(*jschema.Object); ok {
		v.warnIgnoredKeywords(f.name, obj)
	}
	if t.overrides.isArray {
		v.diag.Warnf("Nested array in '%s' is not supported. It has been flattened.", f.name)
	}
	return v.visit(newProperty(f.name, f.items, f.path, f.optional), t.withOverrides(overrides{isArray: true}))
}

func (v *visitor) visitFixedElementsArrayProperty(f fixedElementsArrayPropertyFragment, t traversal) (result, error) {
	obj := f.body.(*jschema.Object)
	if !isConfinedTuple(obj, len(f.items)) {
		v.diag.Warnf("Array '%s' mixes positional and open-ended items. It has been mapped to a String holding JSON.", f.name)
		return v.freeformProperty(f.propertyFragment, t), nil
	}
	synthetic := fixedElementsObject(obj, f.items)
	return v.visit(newProperty(f.name, synthetic, f.path, f.optional), t)
}

func (v *visitor) visitProperty(f propertyFragment, t traversal) (result, error) {
	obj, ok := f.body.(*jschema.Object)
	if !ok {
		if b, isBool := f.body.(bool); isBool && b {
			return v.freeformProperty(f, t), nil
		}
		return result{}, nil
	}

	if hasAlternation(obj) {
		merged, kw := flattenAlternation(obj)
		v.diag.Warnf("Keyword '%s' in definition '%s' is not fully supported. Defaulting to first alternative.", kw, f.name)
		return v.visit(newProperty(f.name, merged, f.path, f.optional), t)
	}

	if isUnion(obj) {
		typ, _ := obj.Get("type")
		members, _ := typ.([]any)
		if len(members) == 1 {
			single := obj.Clone()
			single.Set("type", members[0])
			return v.visit(newProperty(f.name, single, f.path, f.optional), t)
		}
		v.diag.Warnf("Union type %s in '%s' is not fully supported. Defaulting to String.", jsonString(typ), f.name)
		p := v.b.StringProperty(normalizeName(f.name))
		p.Decorators = []*metamodel.Decorator{v.b.Decorator("union", jsonString(typ))}
		return v.property(f, p, t), nil
	}

	if values, ok := obj.Slice("enum"); ok {
		enumName := inlineObjectName(f.path)
		r := v.property(f, v.b.ObjectProperty(normalizeName(f.name), enumName), t)
		r.declarations = append(r.declarations, v.enum(enumName, values))
		return r, nil
	}

	if isFreeform(obj) {
		return v.freeformProperty(f, t), nil
	}

	if isObjectSchema(obj) {
		typeName := inlineObjectName(f.path)
		spawned, err := v.visit(newDefinition(typeName, obj, f.path, false), t.withOverrides(overrides{}))
		if err != nil {
			return result{}, err
		}
		r := v.property(f, v.b.ObjectProperty(normalizeName(f.name), typeName), t)
		r.declarations = append(r.declarations, spawned.declarations...)
		return r, nil
	}

	v.warnIgnoredKeywords(f.name, obj)
	p, err := v.primitiveProperty(f.name, obj)
	if err != nil {
		return result{}, err
	}
	return v.property(f, p, t), nil
}

// property applies optionality and the pending overrides to p.
func (v *visitor) property(f propertyFragment, p metamodel.Property, t traversal) result {
	base := p.Base()
	base.IsOptional = f.optional
	base.IsArray = t.overrides.isArray
	return result{properties: []metamodel.Property{p}}
}

func (v *visitor) objectProperty(f propertyFragment, typeName string, t traversal) result {
	return v.property(f, v.b.ObjectProperty(normalizeName(f.name), typeName), t)
}

func (v *visitor) freeformProperty(f propertyFragment, t traversal) result {
	p := v.b.StringProperty(normalizeName(f.name))
	p.Decorators = []*metamodel.Decorator{v.b.Decorator(metamodel.StringifiedJSON)}
	return v.property(f, p, t)
}

func (v *visitor) scalar(name string) result {
	return result{declarations: []metamodel.Declaration{
		v.b.StringScalar(name, v.b.Decorator(metamodel.StringifiedJSON)),
	}}
}

// enum keeps truthy values only.
func (v *visitor) enum(name string, values []any) *metamodel.EnumDeclaration {
	var names []string
	for _, value := range values {
		if !truthy(value) {
			continue
		}
		names = append(names, normalizeName(enumValueString(value)))
	}
	return v.b.Enum(name, names)
}

func (v *visitor) warnIgnoredKeywords(name string, obj *jschema.Object) {
	for _, kw := range ignoredKeywords {
		if obj.Has(kw) {
			v.diag.Warnf("Keyword '%s' in '%s' is not supported. It has been ignored.", kw, name)
		}
	}
}

func truthy(value any) bool {
	switch t := value.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	default:
		if f, ok := jschema.ToFloat(value); ok {
			return f != 0 && !math.IsNaN(f)
		}
		return true
	}
}

func enumValueString(value any) string {
	switch t := value.(type) {
	case string:
		return t
	case int64, float64, bool:
		return fmt.Sprint(t)
	default:
		return jsonString(jschema.Plain(t))
	}
}
