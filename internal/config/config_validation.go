// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.FinderDomain) == "" || cfg.App.CommandTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.ProfilesFile == "" || cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.Propagation.HistoryLimit < 0 {
		return ErrInvalidPropagationConfigs
	}

	return nil
}
