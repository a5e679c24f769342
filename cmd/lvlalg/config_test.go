// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadWith(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	root := newRootCmd()
	require.NoError(t, root.ParseFlags(args))

	return LoadConfig(root)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadWith(t)
	require.NoError(t, err)
	require.Equal(t, &Config{Format: DefaultFormat, LogLevel: DefaultLogLevel}, cfg)
}

// TestLoadConfig_Precedence cannot run in parallel: it sets the environment.
func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlalg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nnoalias: true\nlog-level: info\n"), 0o600))

	cfg, err := loadWith(t, "--config", path)
	require.NoError(t, err)
	require.Equal(t, FormatYAML, cfg.Format)
	require.True(t, cfg.NoAlias)
	require.Equal(t, "info", cfg.LogLevel)

	t.Setenv("LVLALG_LOG_LEVEL", "debug")
	t.Setenv("LVLALG_FORMAT", "table")
	cfg, err = loadWith(t, "--config", path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, FormatTable, cfg.Format)

	cfg, err = loadWith(t, "--config", path, "--format", "yaml", "--log-json")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, cfg.Format)
	require.True(t, cfg.LogJSON)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	_, err := loadWith(t, "--format", "csv")
	require.True(t, errors.Is(err, ErrConfig))

	_, err = loadWith(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)

	_, err = newLogger(&strings.Builder{}, "loud", false)
	require.True(t, errors.Is(err, ErrConfig))
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	log, err := newLogger(&b, "info", true)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown")
	require.NoError(t, log.Sync())
	require.NotContains(t, b.String(), "hidden")
	require.Contains(t, b.String(), `"msg":"shown"`)
}
