// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for TidyFinder.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// platform defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings for talking to Finder.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the profile file and the run history
	// database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// Propagation holds template workflow settings.
	Propagation Propagation `envPrefix:"PROPAGATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command is the headless command taken from the positional command-line
	// arguments. Empty means the interactive UI is started.
	Command []string
}

// App holds settings for the Finder preference domain and the external
// commands run against it.
type App struct {
	// FinderDomain is the preferences domain Finder reads its settings from.
	// Env: APP_FINDER_DOMAIN
	FinderDomain string `env:"FINDER_DOMAIN"`

	// CommandTimeout bounds every external command (defaults, killall,
	// chflags).
	// Env: APP_COMMAND_TIMEOUT
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT"`
}

// Storage groups the on-disk locations used by the application.
type Storage struct {
	// ProfilesFile is the JSON file holding saved profiles.
	// Env: STORAGE_PROFILES_FILE
	ProfilesFile string `env:"PROFILES_FILE"`

	// DB holds the run history database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite run history database.
type DB struct {
	// DSN is the SQLite database file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// File is the log file the client appends to.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Propagation holds settings for the template workflow.
type Propagation struct {
	// DefaultTemplate pre-fills the template folder in the interactive UI.
	// Env: PROPAGATION_DEFAULT_TEMPLATE
	DefaultTemplate string `env:"DEFAULT_TEMPLATE"`

	// HistoryLimit is the number of recent runs listed by history views.
	// Env: PROPAGATION_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Platform defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
