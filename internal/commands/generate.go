// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/prompts"
	"github.com/dacolabs/schemagen/internal/session"
	"github.com/dacolabs/schemagen/internal/translate"
)

const defaultOutputDir = "schemas"

type generateOptions struct {
	inferFlags
	format string
	output string
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <schema-file>",
		Short: "Generate code or schemas from a JSON Schema or OpenAPI document",
		Long: fmt.Sprintf(`Infer the concept model of a schema document and render it in a target format.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive format selection
  schemagen generate person.schema.json

  # Generate Go types into ./models (also the package name)
  schemagen generate person.schema.json --format gotypes --output models

  # Generate an Avro schema
  schemagen generate openapi.yaml --definitions components/schemas --format avro`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, s, translators, args[0], opts)
		},
	}

	addInferFlags(cmd, &opts.inferFlags)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (also used as package name for Go and Protobuf)")

	return cmd
}

func runGenerate(cmd *cobra.Command, s *session.Context, translators translate.Register, path string, opts *generateOptions) error {
	format := firstNonEmpty(opts.format, s.Config.Format)
	if format == "" {
		if err := prompts.RunFormatSelect(&format, translators.Available()); err != nil {
			return err
		}
	}

	translator, err := translators.Get(format)
	if err != nil {
		return err
	}

	models, err := loadModels(s, path, &opts.inferFlags)
	if err != nil {
		return err
	}

	output := firstNonEmpty(opts.output, s.Config.Output, defaultOutputDir)
	data, err := translator.Translate(models.Models[0], output)
	if err != nil {
		return errors.Wrapf(err, "failed to translate to %s", format)
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	outFile := filepath.Join(output, outputStem(path)+translator.FileExtension())
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", outFile)
	}
	s.Logger.Infow("output written", "file", outFile, "format", format)

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Format", Value: format},
		{Label: "Output", Value: outFile},
	}, "")
	return nil
}
