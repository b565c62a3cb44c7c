// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"io"

	"github.com/dacolabs/schemagen/internal/commands"
	"github.com/dacolabs/schemagen/internal/translate"
	"github.com/dacolabs/schemagen/internal/translate/avro"
	"github.com/dacolabs/schemagen/internal/translate/cto"
	"github.com/dacolabs/schemagen/internal/translate/gotypes"
	"github.com/dacolabs/schemagen/internal/translate/jsonschema"
	"github.com/dacolabs/schemagen/internal/translate/markdown"
	"github.com/dacolabs/schemagen/internal/translate/protobuf"
	"github.com/dacolabs/schemagen/internal/translate/pydantic"
	"github.com/dacolabs/schemagen/internal/translate/scala"
	"github.com/dacolabs/schemagen/internal/translate/typescript"
)

// RegisterTranslators returns every output format the CLI can generate.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators["avro"] = &avro.Translator{}
	translators["cto"] = &cto.Translator{}
	translators["gotypes"] = &gotypes.Translator{}
	translators["jsonschema"] = &jsonschema.Translator{}
	translators["markdown"] = &markdown.Translator{}
	translators["protobuf"] = &protobuf.Translator{}
	translators["pydantic"] = &pydantic.Translator{}
	translators["scala"] = &scala.Translator{}
	translators["typescript"] = &typescript.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments, output streams).
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators())
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}
