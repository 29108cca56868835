// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/mock"
	"github.com/MKhiriev/tidy-finder/internal/store"
	"github.com/MKhiriev/tidy-finder/models"
)

var fixedNow = time.Date(2026, 6, 7, 8, 9, 10, 987654321, time.UTC)

func newTestProfiles(t *testing.T) (*profileService, *mock.MockPreferencesService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prefs := mock.NewMockPreferencesService(ctrl)
	storage := store.NewProfileFileStorage(filepath.Join(t.TempDir(), "TidyFinder", "profiles.json"), logger.Nop())

	svc := NewProfileService(storage, prefs, logger.Nop()).(*profileService)
	svc.now = func() time.Time { return fixedNow }
	return svc, prefs
}

var workSettings = models.FinderSettings{
	ViewStyle:   models.ViewStyleColumn,
	ShowPathBar: true,
	ShowSidebar: true,
	ShowToolbar: true,
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestProfileService_Create(t *testing.T) {
	svc, _ := newTestProfiles(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "  Work  ", workSettings)
	require.NoError(t, err)

	assert.Equal(t, "Work", p.Name)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, fixedNow.Truncate(time.Second), p.CreatedDate)
	assert.Equal(t, workSettings, p.Settings())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestProfileService_Create_Errors(t *testing.T) {
	svc, _ := newTestProfiles(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "   ", workSettings)
	assert.ErrorIs(t, err, ErrProfileNameEmpty)

	_, err = svc.Create(ctx, "Work", workSettings)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Work", models.FinderSettings{})
	assert.ErrorIs(t, err, ErrProfileNameTaken)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProfileService_CaptureCurrent(t *testing.T) {
	svc, prefs := newTestProfiles(t)
	ctx := context.Background()

	prefs.EXPECT().CurrentSettings(ctx).Return(workSettings, nil)

	p, err := svc.CaptureCurrent(ctx, "Snapshot")
	require.NoError(t, err)
	assert.Equal(t, models.ViewStyleColumn, p.ViewStyle)
	assert.True(t, p.ShowPathBar)
}

func TestProfileService_CaptureCurrent_DefaultsMissingStyleToList(t *testing.T) {
	svc, prefs := newTestProfiles(t)

	prefs.EXPECT().CurrentSettings(gomock.Any()).Return(models.FinderSettings{}, nil)

	p, err := svc.CaptureCurrent(context.Background(), "Bare")
	require.NoError(t, err)
	assert.Equal(t, models.ViewStyleList, p.ViewStyle)
}

func TestProfileService_CaptureCurrent_ReadFailure(t *testing.T) {
	svc, prefs := newTestProfiles(t)
	boom := errors.New("boom")

	prefs.EXPECT().CurrentSettings(gomock.Any()).Return(models.FinderSettings{}, boom)

	_, err := svc.CaptureCurrent(context.Background(), "X")
	assert.ErrorIs(t, err, boom)
}

// ── Rename / Delete ──────────────────────────────────────────────────────────

func TestProfileService_Rename(t *testing.T) {
	svc, _ := newTestProfiles(t)
	ctx := context.Background()

	work, err := svc.Create(ctx, "Work", workSettings)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Home", workSettings)
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, work.ID, "Office")
	require.NoError(t, err)
	assert.Equal(t, "Office", renamed.Name)
	assert.Equal(t, work.ID, renamed.ID)
	assert.Equal(t, work.CreatedDate, renamed.CreatedDate)

	_, err = svc.Rename(ctx, work.ID, "Office")
	assert.NoError(t, err, "renaming to its own name is allowed")

	_, err = svc.Rename(ctx, work.ID, "Home")
	assert.ErrorIs(t, err, ErrProfileNameTaken)

	_, err = svc.Rename(ctx, work.ID, "")
	assert.ErrorIs(t, err, ErrProfileNameEmpty)

	_, err = svc.Rename(ctx, uuid.New(), "Other")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_Delete(t *testing.T) {
	svc, _ := newTestProfiles(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, "A", workSettings)
	require.NoError(t, err)
	b, err := svc.Create(ctx, "B", workSettings)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, a.ID), ErrProfileNotFound)
}

// ── Apply / FindByName ───────────────────────────────────────────────────────

func TestProfileService_Apply(t *testing.T) {
	svc, prefs := newTestProfiles(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Work", workSettings)
	require.NoError(t, err)

	prefs.EXPECT().ApplySettings(ctx, workSettings).Return(nil)

	applied, err := svc.Apply(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, applied.ID)

	_, err = svc.Apply(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_FindByName(t *testing.T) {
	svc, _ := newTestProfiles(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Work", workSettings)
	require.NoError(t, err)

	got, err := svc.FindByName(ctx, " Work ")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.FindByName(ctx, "work")
	assert.ErrorIs(t, err, ErrProfileNotFound, "names are case sensitive")
}

// ── Export / Import ──────────────────────────────────────────────────────────

func TestProfileService_ExportImport(t *testing.T) {
	svc, _ := newTestProfiles(t)
	ctx := context.Background()

	original, err := svc.Create(ctx, "Work", workSettings)
	require.NoError(t, err)

	for _, name := range []string{"work.json", "work.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, svc.Export(ctx, original.ID, path))

			imported, err := svc.Import(ctx, path)
			require.NoError(t, err)
			assert.NotEqual(t, original.ID, imported.ID, "imports get a fresh ID")
			assert.Equal(t, workSettings, imported.Settings())
			assert.Regexp(t, `^Work \(\d\)$`, imported.Name)
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, p := range list {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Work", "Work (1)", "Work (2)"}, names)
}

func TestProfileService_Export_NotFound(t *testing.T) {
	svc, _ := newTestProfiles(t)

	err := svc.Export(context.Background(), uuid.New(), filepath.Join(t.TempDir(), "x.json"))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_Import_KeepsFreeName(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockProfileStorage(ctrl)
	svc := NewProfileService(storage, nil, logger.Nop()).(*profileService)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	incoming := models.NewProfile(uuid.New(), "Shared", workSettings, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	storage.EXPECT().Import(ctx, "/tmp/shared.json").Return(incoming, nil)
	storage.EXPECT().Load(ctx).Return([]models.Profile{}, nil)
	storage.EXPECT().Save(ctx, gomock.Len(1)).Return(nil)

	p, err := svc.Import(ctx, "/tmp/shared.json")
	require.NoError(t, err)
	assert.Equal(t, "Shared", p.Name)
	assert.Equal(t, fixedNow.Truncate(time.Second), p.CreatedDate, "imports get a fresh creation date")
}

func TestProfileService_Import_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockProfileStorage(ctrl)
	svc := NewProfileService(storage, nil, logger.Nop())

	storage.EXPECT().Import(gomock.Any(), gomock.Any()).Return(models.Profile{Name: " "}, nil)

	_, err := svc.Import(context.Background(), "/tmp/x.json")
	assert.ErrorIs(t, err, ErrProfileNameEmpty)
}

func TestProfileService_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockProfileStorage(ctrl)
	svc := NewProfileService(storage, nil, logger.Nop())
	broken := errors.Join(store.ErrInvalidProfileFile, errors.New("unexpected EOF"))

	storage.EXPECT().Load(gomock.Any()).Return(nil, broken).Times(2)

	_, err := svc.Create(context.Background(), "A", workSettings)
	assert.ErrorIs(t, err, store.ErrInvalidProfileFile)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, store.ErrInvalidProfileFile)
}

func TestUniqueProfileName(t *testing.T) {
	existing := []models.Profile{{Name: "A"}, {Name: "A (1)"}, {Name: "A (3)"}}

	assert.Equal(t, "B", uniqueProfileName(existing, "B"))
	assert.Equal(t, "A (2)", uniqueProfileName(existing, "A"))
}
