// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/dacolabs/schemagen/internal/config"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// configError reports why the configuration was rejected and matches
// ErrInvalidConfig.
type configError struct {
	cause error
}

func invalidConfig(err error) error {
	return &configError{cause: err}
}

func (e *configError) Error() string { return ErrInvalidConfig.Error() + ": " + e.cause.Error() }

func (e *configError) Unwrap() error { return e.cause }

func (e *configError) Is(target error) bool { return target == ErrInvalidConfig }

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the diagnostics logger.
type Context struct {
	// Config is the project configuration, or the defaults when no file exists.
	Config *config.Config

	// ConfigPath is the file Config was read from; empty when defaults are used.
	ConfigPath string

	// Logger receives warnings and progress messages.
	Logger *zap.SugaredLogger
}

// Load reads schemagen.yaml from dir when present and returns a new
// context.Context with the session Context stored in it. Without a config file
// the defaults apply, with environment overrides.
func Load(ctx context.Context, dir string, log *zap.SugaredLogger) (context.Context, error) {
	s := &Context{Logger: log}

	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, invalidConfig(err)
		}
		s.Config = cfg
		s.ConfigPath = configPath
	} else {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, invalidConfig(err)
		}
		s.Config = cfg
	}

	if err := s.Config.Validate(); err != nil {
		return nil, invalidConfig(err)
	}

	log.Debugw("configuration loaded", "path", s.ConfigPath, "metaModelNamespace", s.Config.MetaModelNamespace)
	return context.WithValue(ctx, contextKey{}, s), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if s, ok := ctx.Value(contextKey{}).(*Context); ok {
		return s
	}
	return nil
}
