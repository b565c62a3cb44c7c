// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles schemagen project configuration.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/schemagen/internal/metamodel"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "schemagen.yaml"

// EnvPrefix prefixes environment variables that override file settings,
// e.g. SCHEMAGEN_NAMESPACE.
const EnvPrefix = "SCHEMAGEN"

// Config represents the schemagen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`
	// Namespace of generated models, e.g. "com.example@1.0.0". Empty derives it from $id.
	Namespace string `yaml:"namespace,omitempty" mapstructure:"namespace"`
	// MetaModelNamespace qualifies every "$class" tag.
	MetaModelNamespace string `yaml:"metaModelNamespace" mapstructure:"metaModelNamespace"`
	// Definitions is a slash separated path to the definitions container, e.g. "components/schemas".
	Definitions string `yaml:"definitions,omitempty" mapstructure:"definitions"`
	// Format is the default target of the generate command.
	Format string `yaml:"format,omitempty" mapstructure:"format"`
	// Output is the default output directory.
	Output string `yaml:"output,omitempty" mapstructure:"output"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:            CurrentConfigVersion,
		MetaModelNamespace: metamodel.DefaultNamespace,
	}
}

// Load reads a Config from a file path. Environment variables prefixed with
// SCHEMAGEN_ override file values.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", path)
	}
	return &cfg, nil
}

// FromEnv returns the default configuration with environment overrides applied.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// newViper sets up environment binding and defaults. Every key needs a default
// for AutomaticEnv to reach Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("version", def.Version)
	v.SetDefault("namespace", def.Namespace)
	v.SetDefault("metaModelNamespace", def.MetaModelNamespace)
	v.SetDefault("definitions", def.Definitions)
	v.SetDefault("format", def.Format)
	v.SetDefault("output", def.Output)
	return v
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.MetaModelNamespace == "" {
		return errors.New("metaModelNamespace is required")
	}
	return nil
}

// DefinitionsPath splits Definitions into path segments. It returns nil when unset.
func (c *Config) DefinitionsPath() []string {
	return SplitPath(c.Definitions)
}

// SplitPath splits a slash separated path, ignoring empty segments and a leading "#".
func SplitPath(p string) []string {
	p = strings.TrimPrefix(p, "#")
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
