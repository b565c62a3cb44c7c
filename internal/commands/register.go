// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/session"
	"github.com/dacolabs/schemagen/internal/translate"
	"github.com/dacolabs/schemagen/internal/version"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemagen",
		Short: "Infer concept models from JSON Schema and OpenAPI documents",
		Long: `schemagen converts JSON Schema and OpenAPI documents into a concept
metamodel (concepts, enums and scalars) and generates code and schemas from it.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountP(session.FlagVerbose, "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().Bool(session.FlagLogJSON, false, "Write logs as JSON")

	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newInferCmd())
	rootCmd.AddCommand(newGenerateCmd(translators))
	rootCmd.AddCommand(newFormatsCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
