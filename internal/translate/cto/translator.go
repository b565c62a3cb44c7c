// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package cto renders models in the Concerto modelling language.
package cto

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/metamodel"
)

// Translator translates models to Concerto (.cto) source.
type Translator struct{}

// FileExtension returns the file extension for Concerto files.
func (t *Translator) FileExtension() string {
	return ".cto"
}

// Translate prints the model as Concerto source.
func (t *Translator) Translate(model *metamodel.Model, _ string) ([]byte, error) {
	if model == nil {
		return nil, errors.New("model is nil")
	}
	var buf bytes.Buffer
	if err := metamodel.WriteCTO(&buf, model); err != nil {
		return nil, errors.Wrap(err, "failed to print model")
	}
	return buf.Bytes(), nil
}
