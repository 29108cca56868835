// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_FINDER_DOMAIN":   "com.example.finder",
		"APP_COMMAND_TIMEOUT": "3s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_PROFILES_FILE": "/tmp/profiles.json",
		"STORAGE_DB_DSN":        "/tmp/history.db",

		"LOG_FILE":  "/tmp/tidyfinder.log",
		"LOG_LEVEL": "debug",

		"PROPAGATION_DEFAULT_TEMPLATE": "/Users/me/Template",
		"PROPAGATION_HISTORY_LIMIT":    "5",
	})

	// Act
	cfg, err := parseEnv(nil)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "com.example.finder", cfg.App.FinderDomain)
	assert.Equal(t, 3*time.Second, cfg.App.CommandTimeout)
	assert.Equal(t, "/tmp/profiles.json", cfg.Storage.ProfilesFile)
	assert.Equal(t, "/tmp/history.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/tidyfinder.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/Users/me/Template", cfg.Propagation.DefaultTemplate)
	assert.Equal(t, 5, cfg.Propagation.HistoryLimit)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_FINDER_DOMAIN": "com.apple.finder",
		"LOG_LEVEL":         "warn",
	})

	cfg, err := parseEnv(nil)
	require.NoError(t, err)

	assert.Equal(t, "com.apple.finder", cfg.App.FinderDomain)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Zero(t, cfg.Propagation.HistoryLimit)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_COMMAND_TIMEOUT": "soon"})

	_, err := parseEnv(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"PROPAGATION_HISTORY_LIMIT": "many"})

	_, err := parseEnv(nil)
	assert.Error(t, err)
}

func TestParseEnv_ExplicitEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := parseEnv(map[string]string{
		"LOG_LEVEL":             "debug",
		"STORAGE_PROFILES_FILE": "/tmp/p.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/p.json", cfg.Storage.ProfilesFile)
	assert.Empty(t, cfg.App.FinderDomain)
}
