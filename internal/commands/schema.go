// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dacolabs/schemagen/internal/config"
	"github.com/dacolabs/schemagen/internal/inference"
	"github.com/dacolabs/schemagen/internal/jschema"
	"github.com/dacolabs/schemagen/internal/metamodel"
	"github.com/dacolabs/schemagen/internal/session"
)

// inferFlags are the conversion flags shared by infer and generate. Empty
// values fall back to the project configuration.
type inferFlags struct {
	namespace          string
	metaModelNamespace string
	definitions        string
	inlineFileRefs     bool
}

// loadModels reads the schema file at path and infers its models.
func loadModels(s *session.Context, path string, flags *inferFlags) (*metamodel.Models, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	loader := jschema.NewLoader(os.DirFS(filepath.Dir(abs)))
	name := filepath.Base(abs)
	doc, err := loader.LoadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load schema")
	}

	if flags.inlineFileRefs {
		if err := loader.ResolveRefs(doc, "."); err != nil {
			return nil, errors.Wrap(err, "failed to inline file references")
		}
	}

	params := inference.Parameters{
		MetaModelNamespace: firstNonEmpty(flags.metaModelNamespace, s.Config.MetaModelNamespace),
		Namespace:          firstNonEmpty(flags.namespace, s.Config.Namespace),
		PathToDefinitions:  config.SplitPath(firstNonEmpty(flags.definitions, s.Config.Definitions)),
	}
	s.Logger.Debugw("inferring model", "file", abs, "namespace", params.Namespace, "definitions", params.PathToDefinitions)

	models, err := inference.Infer(doc, params, s.Logger)
	if err != nil {
		return nil, err
	}
	s.Logger.Infow("model inferred", "namespace", models.Models[0].Namespace, "declarations", len(models.Models[0].Declarations))
	return models, nil
}

// outputStem names output files after the schema file, without its extensions.
func outputStem(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		if trimmed, ok := strings.CutSuffix(base, ext); ok {
			base = trimmed
			break
		}
	}
	return strings.TrimSuffix(base, ".schema")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
