// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/prompts"
	"github.com/dacolabs/schemagen/internal/session"
)

type inferOptions struct {
	inferFlags
	format string
	output string
}

func newInferCmd() *cobra.Command {
	opts := &inferOptions{}

	cmd := &cobra.Command{
		Use:   "infer <schema-file>",
		Short: "Convert a JSON Schema or OpenAPI document to a concept model",
		Long: `Convert a JSON Schema or OpenAPI document (JSON or YAML) to a concept model.

The model is printed as metamodel JSON or as CTO source. Constructs that can only
be approximated are reported as warnings on stderr.`,
		Example: `  # Print the metamodel JSON
  schemagen infer person.schema.json --namespace com.example@1.0.0

  # Print CTO source for an OpenAPI document
  schemagen infer openapi.yaml --definitions components/schemas --format cto

  # Write the model to a file
  schemagen infer person.schema.json --output person.json`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runInfer(cmd, s, args[0], opts)
		},
	}

	addInferFlags(cmd, &opts.inferFlags)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json or cto)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func addInferFlags(cmd *cobra.Command, flags *inferFlags) {
	cmd.Flags().StringVar(&flags.namespace, "namespace", "", "Model namespace, e.g. com.example@1.0.0 (default derived from $id)")
	cmd.Flags().StringVar(&flags.metaModelNamespace, "metamodel-namespace", "", "Metamodel namespace qualifying $class tags")
	cmd.Flags().StringVar(&flags.definitions, "definitions", "", "Slash separated path to the definitions container")
	cmd.Flags().BoolVar(&flags.inlineFileRefs, "inline-file-refs", false, "Inline $ref values pointing at other local files")
}

func runInfer(cmd *cobra.Command, s *session.Context, path string, opts *inferOptions) error {
	models, err := loadModels(s, path, &opts.inferFlags)
	if err != nil {
		return err
	}

	var out []byte
	switch opts.format {
	case "json":
		out, err = json.MarshalIndent(models, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal model")
		}
		out = append(out, '\n')
	case "cto":
		out = []byte(metamodel.PrintCTO(models.Models[0]))
	default:
		return errors.Newf("unknown format %q, available formats: json, cto", opts.format)
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if err := os.WriteFile(opts.output, out, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", opts.output)
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Output", Value: opts.output},
		{Label: "Namespace", Value: models.Models[0].Namespace},
		{Label: "Declarations", Value: strconv.Itoa(len(models.Models[0].Declarations))},
	}, "")
	return nil
}
