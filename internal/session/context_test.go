// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemagen/internal/config"
	"github.com/dacolabs/schemagen/internal/logger"
	"github.com/dacolabs/schemagen/internal/metamodel"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		config        string // empty means no config file
		wantErr       error
		wantNamespace string
	}{
		{
			name:          "defaults without config file",
			config:        "",
			wantNamespace: "",
		},
		{
			name:          "valid",
			config:        "version: 1\nnamespace: com.example@1.0.0\n",
			wantNamespace: "com.example@1.0.0",
		},
		{
			name:    "unsupported version",
			config:  "version: 7\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "malformed yaml",
			config:  "version: [\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.config != "" {
				writeConfig(t, dir, tt.config)
			}

			ctx, err := Load(context.Background(), dir, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, stderrors.Is(err, tt.wantErr))
				assert.ErrorContains(t, err, "invalid configuration: ")
				return
			}

			require.NoError(t, err)
			s := From(ctx)
			require.NotNil(t, s)
			assert.Equal(t, tt.wantNamespace, s.Config.Namespace)
			assert.Equal(t, metamodel.DefaultNamespace, s.Config.MetaModelNamespace)
			assert.NotNil(t, s.Logger)
			if tt.config != "" {
				assert.Equal(t, filepath.Join(dir, config.FileName), s.ConfigPath)
			} else {
				assert.Empty(t, s.ConfigPath)
			}
		})
	}
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.EqualError(t, err, "project context not loaded")

	dir := t.TempDir()
	writeConfig(t, dir, "version: 1\nformat: avro\n")
	t.Chdir(dir)

	cmd.Flags().CountP(FlagVerbose, "v", "")
	cmd.Flags().Bool(FlagLogJSON, false, "")
	require.NoError(t, PreRunLoad(cmd, nil))

	s, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, "avro", s.Config.Format)
	assert.Same(t, s, FromCommand(cmd))
}
