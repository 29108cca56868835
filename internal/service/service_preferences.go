// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/internal/shell"
	"github.com/MKhiriev/tidy-finder/internal/store"
	"github.com/MKhiriev/tidy-finder/models"
)

const viewStyleKey = "FXPreferredViewStyle"

// relaunchCommand restarts Finder; launchd brings it back up.
var relaunchCommand = shell.NewCommand("killall", "Finder")

type preferencesService struct {
	store    store.PreferenceStore
	executor shell.Executor
	domain   string
	logger   *logger.Logger
}

// NewPreferencesService returns a [PreferencesService] for the given
// preferences domain.
func NewPreferencesService(prefs store.PreferenceStore, executor shell.Executor, domain string, log *logger.Logger) PreferencesService {
	return &preferencesService{
		store:    prefs,
		executor: executor,
		domain:   domain,
		logger:   log,
	}
}

func (p *preferencesService) ViewStyle(ctx context.Context) (models.ViewStyle, bool, error) {
	raw, err := p.store.ReadString(ctx, p.domain, viewStyleKey)
	if err != nil {
		if errors.Is(err, store.ErrPreferenceAbsent) {
			return "", false, nil
		}
		return "", false, err
	}

	style := models.ViewStyle(raw)
	if !style.Valid() {
		p.logger.Warn().Str("value", raw).Msg("unrecognized view style preference")
		return "", false, nil
	}
	return style, true, nil
}

func (p *preferencesService) SetViewStyle(ctx context.Context, style models.ViewStyle) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownViewStyle, string(style))
	}
	if err := p.store.WriteString(ctx, p.domain, viewStyleKey, string(style)); err != nil {
		return err
	}

	p.logger.Info().Str("view_style", style.DisplayName()).Msg("default view style updated")
	return nil
}

func (p *preferencesService) Option(ctx context.Context, option models.FinderOption) (bool, error) {
	raw, err := p.store.ReadString(ctx, p.domain, option.Key())
	if err != nil {
		if errors.Is(err, store.ErrPreferenceAbsent) {
			return false, nil
		}
		return false, err
	}

	raw = strings.TrimSpace(raw)
	return raw == "1" || strings.EqualFold(raw, "true"), nil
}

func (p *preferencesService) SetOption(ctx context.Context, option models.FinderOption, enabled bool) error {
	if err := p.store.WriteBool(ctx, p.domain, option.Key(), enabled); err != nil {
		return err
	}

	p.logger.Info().Str("option", option.Key()).Bool("enabled", enabled).Msg("finder option updated")
	return nil
}

func (p *preferencesService) CurrentSettings(ctx context.Context) (models.FinderSettings, error) {
	settings := models.FinderSettings{ShowToolbar: true, ShowTabBar: true}

	style, ok, err := p.ViewStyle(ctx)
	if err != nil {
		return models.FinderSettings{}, err
	}
	if ok {
		settings.ViewStyle = style
	}

	for _, option := range models.AllFinderOptions() {
		enabled, optErr := p.Option(ctx, option)
		if optErr != nil {
			return models.FinderSettings{}, optErr
		}
		settings.SetOption(option, enabled)
	}

	return settings, nil
}

func (p *preferencesService) ApplySettings(ctx context.Context, settings models.FinderSettings) error {
	if settings.ViewStyle.Valid() {
		if err := p.SetViewStyle(ctx, settings.ViewStyle); err != nil {
			return err
		}
	}

	for _, option := range models.AllFinderOptions() {
		if err := p.SetOption(ctx, option, settings.Option(option)); err != nil {
			return err
		}
	}

	return nil
}

func (p *preferencesService) RelaunchFinder(ctx context.Context) error {
	if _, err := p.executor.Execute(ctx, relaunchCommand); err != nil {
		p.logger.Err(err).Msg("failed to relaunch Finder")
		return fmt.Errorf("relaunch Finder: %w", err)
	}

	p.logger.Info().Msg("Finder relaunched")
	return nil
}

func (p *preferencesService) ResetAllViews(ctx context.Context, root string) (propagation.ResetReport, error) {
	return propagation.ResetViews(ctx, root, p.logger)
}

func (p *preferencesService) ApplyToAllFolders(ctx context.Context, settings models.FinderSettings, root string) (propagation.ResetReport, error) {
	if err := p.ApplySettings(ctx, settings); err != nil {
		return propagation.ResetReport{Root: root}, err
	}
	return p.ResetAllViews(ctx, root)
}
