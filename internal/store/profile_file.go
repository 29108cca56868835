// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/utils"
	"github.com/MKhiriev/tidy-finder/models"
)

const profileFileMode = 0o644

type profileFileStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewProfileFileStorage returns a [ProfileStorage] keeping every profile in
// one JSON array file at path. The file is read in full on Load and replaced
// in full on Save.
func NewProfileFileStorage(path string, log *logger.Logger) ProfileStorage {
	return &profileFileStorage{
		path:   path,
		logger: log,
	}
}

func (s *profileFileStorage) Load(ctx context.Context) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Profile{}, nil
		}
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	profiles := make([]models.Profile, 0)
	if len(strings.TrimSpace(string(data))) == 0 {
		return profiles, nil
	}
	if err = json.Unmarshal(data, &profiles); err != nil {
		logger.FromContext(ctx).Err(err).Str("path", s.path).Msg("failed to decode profiles file")
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProfileFile, s.path, err)
	}

	return profiles, nil
}

func (s *profileFileStorage) Save(ctx context.Context, profiles []models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profiles == nil {
		profiles = []models.Profile{}
	}

	payload, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	if err = utils.WriteFileAtomic(s.path, payload, profileFileMode); err != nil {
		logger.FromContext(ctx).Err(err).Str("path", s.path).Msg("failed to write profiles file")
		return fmt.Errorf("write profiles file: %w", err)
	}

	s.logger.Debug().Int("count", len(profiles)).Str("path", s.path).Msg("profiles saved")
	return nil
}

func (s *profileFileStorage) Export(_ context.Context, p models.Profile, path string) error {
	payload, err := encodeProfile(p, path)
	if err != nil {
		return err
	}

	if err = utils.WriteFileAtomic(path, payload, profileFileMode); err != nil {
		return fmt.Errorf("write profile export: %w", err)
	}

	s.logger.Info().Str("profile", p.Name).Str("path", path).Msg("profile exported")
	return nil
}

func (s *profileFileStorage) Import(_ context.Context, path string) (models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read profile file: %w", err)
	}

	p, err := decodeProfile(data, path)
	if err != nil {
		return models.Profile{}, err
	}

	s.logger.Info().Str("profile", p.Name).Str("path", path).Msg("profile read for import")
	return p, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func encodeProfile(p models.Profile, path string) ([]byte, error) {
	var (
		payload []byte
		err     error
	)
	if isYAMLPath(path) {
		payload, err = yaml.Marshal(p)
	} else {
		payload, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	return payload, nil
}

func decodeProfile(data []byte, path string) (models.Profile, error) {
	var (
		p   models.Profile
		err error
	)
	if isYAMLPath(path) {
		err = yaml.Unmarshal(data, &p)
	} else {
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %s: %w", ErrInvalidProfileFile, path, err)
	}

	return p, nil
}
