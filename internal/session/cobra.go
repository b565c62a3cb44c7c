// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/logger"
)

// Persistent flag names read by PreRunLoad.
const (
	FlagVerbose = "verbose"
	FlagLogJSON = "log-json"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that builds the logger from the
// verbosity flags, loads the project configuration from the working directory,
// and stores both in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	verbosity, _ := cmd.Flags().GetCount(FlagVerbose)
	jsonOutput, _ := cmd.Flags().GetBool(FlagLogJSON)
	log := logger.New(cmd.ErrOrStderr(), verbosity, jsonOutput)

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get current directory")
	}

	ctx, err := Load(cmd.Context(), cwd, log)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
