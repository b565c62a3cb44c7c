// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"iter"
	"net/url"
	"strconv"
	"strings"
)

// Traverse returns an iterator over every object nested in the document, the
// document itself included. Objects shared by several parents are yielded once.
func Traverse(doc *Object) iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		visited := make(map[*Object]struct{})
		traverseWithVisited(doc, yield, visited)
	}
}

func traverseWithVisited(v any, yield func(*Object) bool, visited map[*Object]struct{}) bool {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return true
		}
		if _, ok := visited[t]; ok {
			return true
		}
		visited[t] = struct{}{}
		if !yield(t) {
			return false
		}
		for _, child := range t.All() {
			if !traverseWithVisited(child, yield, visited) {
				return false
			}
		}
	case []any:
		for _, child := range t {
			if !traverseWithVisited(child, yield, visited) {
				return false
			}
		}
	}
	return true
}

// Lookup returns the value found by following path from v. Array elements are
// addressed by their decimal index.
func Lookup(v any, path []string) (any, bool) {
	cur := v
	for _, seg := range path {
		switch t := cur.(type) {
		case *Object:
			next, ok := t.Get(seg)
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(t) {
				return nil, false
			}
			cur = t[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// ParsePointer splits a local JSON pointer ("#/definitions/Foo") into its path
// segments. Empty segments are dropped and each segment is percent-decoded.
func ParsePointer(ref string) []string {
	ref = strings.TrimPrefix(ref, "#")
	var segments []string
	for _, seg := range strings.Split(ref, "/") {
		if seg == "" {
			continue
		}
		if decoded, err := url.PathUnescape(seg); err == nil {
			seg = decoded
		}
		seg = strings.NewReplacer("~1", "/", "~0", "~").Replace(seg)
		segments = append(segments, seg)
	}
	return segments
}

// FormatPointer builds a local JSON pointer from path segments, the inverse of
// ParsePointer for segments without percent-encoding.
func FormatPointer(path []string) string {
	var sb strings.Builder
	sb.WriteByte('#')
	escaper := strings.NewReplacer("~", "~0", "/", "~1")
	for _, seg := range path {
		sb.WriteByte('/')
		sb.WriteString(escaper.Replace(seg))
	}
	return sb.String()
}
