// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args and returns the
// positional arguments that follow them.
//
// Flags:
//
//	-c/-config json file path with configs
//	-domain Finder preferences domain
//	-command-timeout timeout for external commands (e.g., "5s")
//	-profiles profiles file path
//	-history-db run history database path
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-template default template folder
//	-history-limit number of runs shown in history
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var jsonConfigPath string
	var finderDomain string
	var commandTimeout time.Duration
	var profilesFile string
	var historyDB string
	var logFile string
	var logLevel string
	var defaultTemplate string
	var historyLimit int

	fs := flag.NewFlagSet("tidyfinder", flag.ContinueOnError)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&finderDomain, "domain", "", "Finder preferences domain")
	fs.DurationVar(&commandTimeout, "command-timeout", 0, "Timeout for external commands (e.g., 5s)")
	fs.StringVar(&profilesFile, "profiles", "", "Profiles file path")
	fs.StringVar(&historyDB, "history-db", "", "Run history database path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&defaultTemplate, "template", "", "Default template folder")
	fs.IntVar(&historyLimit, "history-limit", 0, "Number of runs shown in history")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			FinderDomain:   finderDomain,
			CommandTimeout: commandTimeout,
		},
		Storage: Storage{
			ProfilesFile: profilesFile,
			DB:           DB{DSN: historyDB},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Propagation: Propagation{
			DefaultTemplate: defaultTemplate,
			HistoryLimit:    historyLimit,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
