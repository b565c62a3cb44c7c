// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(namespace, metaModelNamespace, definitions, format *string, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model namespace").
				Description("Leave empty to derive it from the schema $id").
				Placeholder("com.example@1.0.0").
				Validate(NamespaceValidator).
				Value(namespace),
			huh.NewInput().
				Title("Metamodel namespace").
				Validate(requiredValidator("metamodel namespace")).
				Value(metaModelNamespace),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Definitions path").
				Description("Leave empty to detect definitions, $defs or components/schemas").
				Placeholder("components/schemas").
				Value(definitions),
			NewFormatSelect(format, formats),
		),
	).WithTheme(Theme()).Run()
}
