// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/tidy-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceStore reads and writes values in the OS preference store,
// addressed by (domain, key). Writes fully overwrite the previous value.
type PreferenceStore interface {
	// ReadString returns the stored value rendered as text. A missing key
	// yields an error matching [ErrPreferenceAbsent].
	ReadString(ctx context.Context, domain, key string) (string, error)
	WriteString(ctx context.Context, domain, key, value string) error
	WriteBool(ctx context.Context, domain, key string, value bool) error
}

// ProfileStorage persists the complete list of profiles and moves single
// profiles in and out of standalone files.
type ProfileStorage interface {
	// Load returns every stored profile in file order. A missing file is an
	// empty list.
	Load(ctx context.Context) ([]models.Profile, error)
	// Save replaces the stored list with profiles.
	Save(ctx context.Context, profiles []models.Profile) error
	// Export writes p to path, as YAML for .yaml/.yml paths and JSON
	// otherwise.
	Export(ctx context.Context, p models.Profile, path string) error
	// Import reads a single profile written by Export.
	Import(ctx context.Context, path string) (models.Profile, error)
}

// RunHistoryRepository records completed propagation runs.
type RunHistoryRepository interface {
	// SaveRun stores run with all of its outcomes and returns the new run ID.
	SaveRun(ctx context.Context, run models.PropagationRun) (int64, error)
	// ListRuns returns up to limit runs, newest first, without outcomes.
	ListRuns(ctx context.Context, limit int) ([]models.PropagationRun, error)
	// GetRun returns one run including its outcomes in target order.
	GetRun(ctx context.Context, id int64) (models.PropagationRun, error)
}
