// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// NewFormatSelect returns a select field for choosing a generation target.
func NewFormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunFormatSelect asks for a generation target.
func RunFormatSelect(value *string, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(NewFormatSelect(value, formats)),
	).WithTheme(Theme()).Run()
}
