// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/config"
	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/prompts"
	"github.com/dacolabs/schemagen/internal/translate"
)

type initOptions struct {
	namespace          string
	metaModelNamespace string
	definitions        string
	format             string
	output             string
	nonInteractive     bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a schemagen project",
		Long: `Initialize a schemagen project with a schemagen.yaml configuration file.
Values stored in the file become the defaults of infer and generate.`,
		Example: `  # Interactive mode
  schemagen init

  # Non-interactive
  schemagen init --namespace com.example@1.0.0 --format gotypes --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Model namespace, e.g. com.example@1.0.0")
	cmd.Flags().StringVar(&opts.metaModelNamespace, "metamodel-namespace", metamodel.DefaultNamespace, "Metamodel namespace qualifying $class tags")
	cmd.Flags().StringVar(&opts.definitions, "definitions", "", "Slash separated path to the definitions container")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Default generation format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Default output directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get current directory")
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("schemagen.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(
			&opts.namespace,
			&opts.metaModelNamespace,
			&opts.definitions,
			&opts.format,
			translators.Available(),
		); err != nil {
			return err
		}
	}

	if err := prompts.NamespaceValidator(opts.namespace); err != nil {
		return errors.Wrap(err, "invalid namespace")
	}
	if opts.format != "" {
		if _, err := translators.Get(opts.format); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:            config.CurrentConfigVersion,
		Namespace:          opts.namespace,
		MetaModelNamespace: opts.metaModelNamespace,
		Definitions:        opts.definitions,
		Format:             opts.format,
		Output:             opts.output,
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if err := cfg.Save(cfgPath); err != nil {
		return errors.Wrap(err, "config file couldn't be saved")
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: config.FileName},
	}, "Initialization completed")
	return nil
}
