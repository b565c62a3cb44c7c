// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate renders metamodel declarations in other schema and source formats.
package translate

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Translate renders a model in the target format. outputDir is the directory the
	// result is written to; some formats derive a package name from it.
	Translate(model *metamodel.Model, outputDir string) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".proto", ".ts")
	FileExtension() string
}

// Register maps format names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, errors.Newf("unknown format %q, available formats: %s", name, strings.Join(r.Available(), ", "))
	}
	return t, nil
}

// Available returns all registered format names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
