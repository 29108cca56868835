// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/store"
	"github.com/MKhiriev/tidy-finder/internal/utils"
	"github.com/MKhiriev/tidy-finder/models"
)

type profileService struct {
	storage     store.ProfileStorage
	preferences PreferencesService
	ids         *utils.UUIDGenerator
	now         func() time.Time

	// mu serializes load-modify-save cycles on the profiles file.
	mu     sync.Mutex
	logger *logger.Logger
}

// NewProfileService returns a [ProfileService] persisting profiles in
// storage and applying them through preferences.
func NewProfileService(storage store.ProfileStorage, preferences PreferencesService, log *logger.Logger) ProfileService {
	return &profileService{
		storage:     storage,
		preferences: preferences,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      log,
	}
}

func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.storage.Load(ctx)
}

func (s *profileService) Create(ctx context.Context, name string, settings models.FinderSettings) (models.Profile, error) {
	name, err := normalizeProfileName(name)
	if err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.storage.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	if indexByName(profiles, name) >= 0 {
		return models.Profile{}, fmt.Errorf("%w: %q", ErrProfileNameTaken, name)
	}

	p := models.NewProfile(s.ids.Generate(), name, settings, s.now())
	if err = s.storage.Save(ctx, append(profiles, p)); err != nil {
		return models.Profile{}, err
	}

	s.logger.Info().Str("profile", p.Name).Str("id", p.ID.String()).Msg("profile created")
	return p, nil
}

func (s *profileService) CaptureCurrent(ctx context.Context, name string) (models.Profile, error) {
	settings, err := s.preferences.CurrentSettings(ctx)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read current settings: %w", err)
	}
	return s.Create(ctx, name, settings)
}

func (s *profileService) Rename(ctx context.Context, id uuid.UUID, name string) (models.Profile, error) {
	name, err := normalizeProfileName(name)
	if err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.storage.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	idx := indexByID(profiles, id)
	if idx < 0 {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	if other := indexByName(profiles, name); other >= 0 && other != idx {
		return models.Profile{}, fmt.Errorf("%w: %q", ErrProfileNameTaken, name)
	}

	old := profiles[idx].Name
	profiles[idx].Name = name
	if err = s.storage.Save(ctx, profiles); err != nil {
		return models.Profile{}, err
	}

	s.logger.Info().Str("from", old).Str("to", name).Msg("profile renamed")
	return profiles[idx], nil
}

func (s *profileService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.storage.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(profiles, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}

	name := profiles[idx].Name
	if err = s.storage.Save(ctx, slices.Delete(profiles, idx, idx+1)); err != nil {
		return err
	}

	s.logger.Info().Str("profile", name).Msg("profile deleted")
	return nil
}

func (s *profileService) Apply(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	p, err := s.find(ctx, func(p models.Profile) bool { return p.ID == id })
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %s", err, id)
	}

	if err = s.preferences.ApplySettings(ctx, p.Settings()); err != nil {
		return models.Profile{}, err
	}

	s.logger.Info().Str("profile", p.Name).Msg("profile applied")
	return p, nil
}

func (s *profileService) FindByName(ctx context.Context, name string) (models.Profile, error) {
	name = strings.TrimSpace(name)
	p, err := s.find(ctx, func(p models.Profile) bool { return p.Name == name })
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %q", err, name)
	}
	return p, nil
}

func (s *profileService) Export(ctx context.Context, id uuid.UUID, path string) error {
	p, err := s.find(ctx, func(p models.Profile) bool { return p.ID == id })
	if err != nil {
		return fmt.Errorf("%w: %s", err, id)
	}
	return s.storage.Export(ctx, p, path)
}

func (s *profileService) Import(ctx context.Context, path string) (models.Profile, error) {
	imported, err := s.storage.Import(ctx, path)
	if err != nil {
		return models.Profile{}, err
	}

	base, err := normalizeProfileName(imported.Name)
	if err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := s.storage.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	p := models.NewProfile(s.ids.Generate(), uniqueProfileName(profiles, base), imported.Settings(), s.now())
	if err = s.storage.Save(ctx, append(profiles, p)); err != nil {
		return models.Profile{}, err
	}

	s.logger.Info().Str("profile", p.Name).Str("path", path).Msg("profile imported")
	return p, nil
}

func (s *profileService) find(ctx context.Context, match func(models.Profile) bool) (models.Profile, error) {
	profiles, err := s.storage.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	idx := slices.IndexFunc(profiles, match)
	if idx < 0 {
		return models.Profile{}, ErrProfileNotFound
	}
	return profiles[idx], nil
}

func normalizeProfileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrProfileNameEmpty
	}
	return name, nil
}

func indexByID(profiles []models.Profile, id uuid.UUID) int {
	return slices.IndexFunc(profiles, func(p models.Profile) bool { return p.ID == id })
}

func indexByName(profiles []models.Profile, name string) int {
	return slices.IndexFunc(profiles, func(p models.Profile) bool { return p.Name == name })
}

// uniqueProfileName returns base, or base with the smallest " (n)" suffix
// that no stored profile uses.
func uniqueProfileName(profiles []models.Profile, base string) string {
	if indexByName(profiles, base) < 0 {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", base, n)
		if indexByName(profiles, candidate) < 0 {
			return candidate
		}
	}
}
