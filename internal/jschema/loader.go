// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"io"
	"io/fs"
	"path"
	"reflect"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Decode parses a schema document. The format is determined from the file extension.
func Decode(data []byte, filePath string) (any, error) {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".json":
		return DecodeJSON(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", filePath)
	}
}

// IsFileRef returns true if ref points at another document on the filesystem.
// Local refs start with "#" and URL refs carry a scheme; neither is a file ref.
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#") && !strings.Contains(ref, "://")
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file. The top-level value must be an object.
func (l *Loader) LoadFile(filePath string) (*Object, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	v, err := Decode(data, filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filePath)
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, errors.Newf("%s: top-level value must be an object", filePath)
	}
	return obj, nil
}

// ResolveRefs replaces every external file $ref in the document with the content it
// points to, in place. A ref may carry a fragment ("other.yaml#/definitions/Foo").
// Local refs (starting with #) and URL refs are left unchanged.
//
// Definitions that inlined content refers to locally are copied into the
// definitions container of doc, and those refs are rewritten to point there.
func (l *Loader) ResolveRefs(doc *Object, basePath string) error {
	r := &refResolver{loader: l, hoisted: make(map[*Object]map[string]string)}
	return r.resolve(doc, basePath, nil)
}

type refResolver struct {
	loader *Loader
	// hoisted records, per including document, the origin of every copied definition.
	hoisted map[*Object]map[string]string
}

func (r *refResolver) resolve(doc *Object, basePath string, loading []string) error {
	// Collect first: replacing nodes while iterating would also walk the loaded content.
	var refs []*Object
	for s := range Traverse(doc) {
		if ref, ok := s.String("$ref"); ok && IsFileRef(ref) {
			refs = append(refs, s)
		}
	}

	for _, s := range refs {
		ref, _ := s.String("$ref")
		file, fragment, _ := strings.Cut(ref, "#")
		refPath := path.Join(basePath, file)
		if slices.Contains(loading, refPath) {
			return errors.Newf("circular file reference %q", refPath)
		}

		loaded, err := r.loader.LoadFile(refPath)
		if err != nil {
			return err
		}
		if err := r.resolve(loaded, path.Dir(refPath), append(slices.Clone(loading), refPath)); err != nil {
			return err
		}

		target := loaded
		if fragment != "" {
			v, ok := Lookup(loaded, ParsePointer(fragment))
			if !ok {
				return errors.Newf("%s: fragment %q not found", refPath, fragment)
			}
			if target, ok = v.(*Object); !ok {
				return errors.Newf("%s: fragment %q is not a schema object", refPath, fragment)
			}
		}
		if err := r.hoist(doc, loaded, target, refPath); err != nil {
			return err
		}
		*s = *target.Clone()
	}
	return nil
}

// definitionContainers are the locations, in lookup order, that local refs may
// point into once a file is inlined.
var definitionContainers = [][]string{{"definitions"}, {"$defs"}, {"components", "schemas"}}

// hoist copies from src into doc every definition that content refers to through
// a local ref, following the refs of the copied definitions in turn.
func (r *refResolver) hoist(doc, src, content *Object, srcPath string) error {
	origins := r.hoisted[doc]
	if origins == nil {
		origins = make(map[string]string)
		r.hoisted[doc] = origins
	}
	container := containerOf(doc)

	pending := []*Object{content}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		for s := range Traverse(next) {
			ref, ok := s.String("$ref")
			if !ok || !strings.HasPrefix(ref, "#") {
				continue
			}
			ptr := ParsePointer(ref)
			if !isDefinitionPointer(ptr) {
				return errors.Newf("%s: local reference %q does not point at a definition and cannot be inlined", srcPath, ref)
			}
			def, ok := Lookup(src, ptr)
			if !ok {
				return errors.Newf("%s: reference %q not found", srcPath, ref)
			}

			name := ptr[len(ptr)-1]
			if container == nil {
				container = ptr[:len(ptr)-1]
			}
			dest := append(slices.Clone(container), name)
			key := FormatPointer(dest)
			origin := srcPath + ref
			s.Set("$ref", key)

			if existing, ok := Lookup(doc, dest); ok {
				switch prev, copied := origins[key]; {
				case copied && prev == origin:
				case copied || !reflect.DeepEqual(existing, def):
					return errors.Newf("%s: definition %q conflicts with %s", srcPath, name, key)
				}
				continue
			}
			if err := setPath(doc, dest, def); err != nil {
				return errors.Wrapf(err, "%s: cannot copy %q", srcPath, ref)
			}
			origins[key] = origin
			if obj, ok := def.(*Object); ok {
				pending = append(pending, obj)
			}
		}
	}
	return nil
}

// containerOf returns the first definitions container present in doc.
func containerOf(doc *Object) []string {
	for _, c := range definitionContainers {
		if _, ok := Lookup(doc, c); ok {
			return c
		}
	}
	return nil
}

func isDefinitionPointer(ptr []string) bool {
	if len(ptr) == 0 {
		return false
	}
	return slices.ContainsFunc(definitionContainers, func(c []string) bool {
		return slices.Equal(c, ptr[:len(ptr)-1])
	})
}

// setPath stores v at path in doc, creating intermediate objects.
func setPath(doc *Object, path []string, v any) error {
	cur := doc
	for _, seg := range path[:len(path)-1] {
		next, ok := cur.Get(seg)
		if !ok {
			obj := NewObject()
			cur.Set(seg, obj)
			cur = obj
			continue
		}
		obj, ok := next.(*Object)
		if !ok {
			return errors.Newf("%q is not an object", seg)
		}
		cur = obj
	}
	cur.Set(path[len(path)-1], v)
	return nil
}
