// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inference

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedType marks failures caused by a type keyword that has no mapping.
var ErrUnsupportedType = errors.New("unsupported type keyword")

type unsupportedTypeError struct {
	keyword string
	name    string
}

func unsupportedType(typ any, name string) error {
	return &unsupportedTypeError{keyword: typeKeyword(typ), name: name}
}

func (e *unsupportedTypeError) Error() string {
	return fmt.Sprintf("Type keyword '%s' in '%s' is not supported.", e.keyword, e.name)
}

func (e *unsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

func typeKeyword(typ any) string {
	switch t := typ.(type) {
	case nil:
		return "undefined"
	case string:
		return t
	default:
		return jsonString(t)
	}
}
