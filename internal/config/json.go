// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		FinderDomain   string   `json:"finder_domain"`
		CommandTimeout Duration `json:"command_timeout"`
	} `json:"app,omitempty"`

	Storage struct {
		ProfilesFile string `json:"profiles_file"`
		DB           struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Propagation struct {
		DefaultTemplate string `json:"default_template"`
		HistoryLimit    int    `json:"history_limit"`
	} `json:"propagation,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			FinderDomain:   jsonCfg.App.FinderDomain,
			CommandTimeout: time.Duration(jsonCfg.App.CommandTimeout),
		},
		Storage: Storage{
			ProfilesFile: jsonCfg.Storage.ProfilesFile,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		Propagation: Propagation{
			DefaultTemplate: jsonCfg.Propagation.DefaultTemplate,
			HistoryLimit:    jsonCfg.Propagation.HistoryLimit,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
