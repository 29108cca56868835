// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PreferencesService reads and writes Finder's global preferences. Every read
// goes to the preference store; nothing is cached.
type PreferencesService interface {
	// ViewStyle returns the preferred view style. ok is false when the
	// preference is absent or holds an unrecognized value.
	ViewStyle(ctx context.Context) (style models.ViewStyle, ok bool, err error)

	// SetViewStyle writes the preferred view style.
	SetViewStyle(ctx context.Context, style models.ViewStyle) error

	// Option returns the value of a window option. Absent means false;
	// "1" and "true" (any case) mean true.
	Option(ctx context.Context, option models.FinderOption) (bool, error)

	// SetOption writes a window option.
	SetOption(ctx context.Context, option models.FinderOption, enabled bool) error

	// CurrentSettings reads the view style and every option. ViewStyle is
	// empty when not set. Toolbar and tab bar are not backed by Finder
	// preferences and are reported as shown.
	CurrentSettings(ctx context.Context) (models.FinderSettings, error)

	// ApplySettings writes the view style (when valid) and every option.
	ApplySettings(ctx context.Context, settings models.FinderSettings) error

	// RelaunchFinder restarts Finder so written preferences take effect.
	RelaunchFinder(ctx context.Context) error

	// ResetAllViews removes every view-state metadata file beneath root so
	// that folders fall back to the global preferences.
	ResetAllViews(ctx context.Context, root string) (propagation.ResetReport, error)

	// ApplyToAllFolders writes settings and then resets every folder view
	// beneath root.
	ApplyToAllFolders(ctx context.Context, settings models.FinderSettings, root string) (propagation.ResetReport, error)
}

// TemplateService copies a template folder's view settings to other folders
// and keeps a history of those runs.
type TemplateService interface {
	// Apply validates template and copies its view-state metadata to every
	// target. Only one run may be active at a time. A template that fails
	// validation is returned as an error before any target is touched;
	// per-target failures are reported in the returned report.
	Apply(ctx context.Context, template string, targets []string, progress propagation.ProgressFunc) (models.PropagationReport, error)

	// Running reports whether a run is in progress.
	Running() bool

	// History lists up to limit recent runs, newest first.
	History(ctx context.Context, limit int) ([]models.PropagationRun, error)

	// Run returns one recorded run with its per-target outcomes.
	Run(ctx context.Context, id int64) (models.PropagationRun, error)
}

// ProfileService manages named snapshots of Finder settings.
type ProfileService interface {
	List(ctx context.Context) ([]models.Profile, error)

	// Create stores a new profile holding settings.
	Create(ctx context.Context, name string, settings models.FinderSettings) (models.Profile, error)

	// CaptureCurrent stores a new profile holding the current Finder
	// settings.
	CaptureCurrent(ctx context.Context, name string) (models.Profile, error)

	Rename(ctx context.Context, id uuid.UUID, name string) (models.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Apply writes the profile's settings to Finder.
	Apply(ctx context.Context, id uuid.UUID) (models.Profile, error)

	// FindByName returns the profile with exactly this name.
	FindByName(ctx context.Context, name string) (models.Profile, error)

	// Export writes one profile to path (YAML for .yaml/.yml, else JSON).
	Export(ctx context.Context, id uuid.UUID, path string) error

	// Import adds the profile stored at path under a fresh ID and creation
	// date. A conflicting name gets a " (n)" suffix.
	Import(ctx context.Context, path string) (models.Profile, error)
}
