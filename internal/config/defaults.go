// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "TidyFinder"

	defaultFinderDomain   = "com.apple.finder"
	defaultCommandTimeout = 10 * time.Second
	defaultLogLevel       = "info"
	defaultHistoryLimit   = 20
)

// SupportDir returns the per-user application support directory, which is
// ~/Library/Application Support/TidyFinder on macOS.
func SupportDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appDirName)
}

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	dir := SupportDir()

	return &StructuredConfig{
		App: App{
			FinderDomain:   defaultFinderDomain,
			CommandTimeout: defaultCommandTimeout,
		},
		Storage: Storage{
			ProfilesFile: filepath.Join(dir, "profiles.json"),
			DB:           DB{DSN: filepath.Join(dir, "history.db")},
		},
		Log: Log{
			File:  filepath.Join(dir, "tidyfinder.log"),
			Level: defaultLogLevel,
		},
		Propagation: Propagation{
			HistoryLimit: defaultHistoryLimit,
		},
	}
}
