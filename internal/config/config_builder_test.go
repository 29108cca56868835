// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{FinderDomain: "com.apple.finder", CommandTimeout: time.Second},
		Storage: Storage{ProfilesFile: "/p.json", DB: DB{DSN: "/h.db"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.command)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overridden by a later one, while unset fields are filled in.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{FinderDomain: "first"}},
		&StructuredConfig{App: App{FinderDomain: "second"}, Log: Log{Level: "warn"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.App.FinderDomain)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/p.json", cfg.Storage.ProfilesFile)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithFlags_CapturesCommand(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-log-level", "debug", "status"}).withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"status"}, cfg.Command)
}

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"log": map[string]any{"level": "error"},
	})

	b := newConfigBuilder().withFlags([]string{"-c", path}).withJSON().withDefaults()
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withFlags(nil).withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-c", filepath.Join(t.TempDir(), "absent.json")}).withJSON()
	assert.Error(t, b.err)
}

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "com.apple.finder", cfg.App.FinderDomain)
	assert.Equal(t, 10*time.Second, cfg.App.CommandTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Propagation.HistoryLimit)
	assert.Equal(t, filepath.Join(SupportDir(), "profiles.json"), cfg.Storage.ProfilesFile)
	assert.Equal(t, filepath.Join(SupportDir(), "history.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, "TidyFinder", filepath.Base(SupportDir()))
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvBeatsFlags(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := GetStructuredConfig([]string{"-log-level", "debug", "-history-limit", "4", "history"})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Propagation.HistoryLimit)
	assert.Equal(t, []string{"history"}, cfg.Command)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty domain", mutate: func(c *StructuredConfig) { c.App.FinderDomain = " " }, wantErr: ErrInvalidAppConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.App.CommandTimeout = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "no profiles file", mutate: func(c *StructuredConfig) { c.Storage.ProfilesFile = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "bad level", mutate: func(c *StructuredConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
		{name: "negative limit", mutate: func(c *StructuredConfig) { c.Propagation.HistoryLimit = -1 }, wantErr: ErrInvalidPropagationConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
