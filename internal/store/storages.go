// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tidy-finder/internal/config"
	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/shell"
)

// ClientStorages groups every store the service layer depends on.
type ClientStorages struct {
	// Preferences reads and writes Finder preferences.
	Preferences PreferenceStore

	// Profiles is the JSON file holding saved profiles.
	Profiles ProfileStorage

	// History is the SQLite-backed log of propagation runs.
	History RunHistoryRepository

	db *DB
}

// NewClientStorages initialises the storage layer:
//  1. Opens the SQLite run history database, creating its directory if
//     needed, and applies pending migrations.
//  2. Wires the profile file store and the defaults(1) preference store.
func NewClientStorages(ctx context.Context, cfg config.StructuredConfig, executor shell.Executor, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Preferences: NewDefaultsStore(executor, logger),
		Profiles:    NewProfileFileStorage(cfg.Storage.ProfilesFile, logger),
		History:     NewRunHistoryRepository(db, logger),
		db:          db,
	}, nil
}

// Close releases the history database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
