// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemagen/internal/translate"
)

func newFormatsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available generation formats",
		Example: `  # List formats and their file extensions
  schemagen formats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range translators.Available() {
				if _, err := fmt.Fprintf(w, "%-12s %s\n", name, translators[name].FileExtension()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
