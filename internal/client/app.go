// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/tidy-finder/internal/config"
	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/service"
	"github.com/MKhiriev/tidy-finder/internal/shell"
	"github.com/MKhiriev/tidy-finder/internal/store"
	"github.com/MKhiriev/tidy-finder/internal/tui"
	"github.com/MKhiriev/tidy-finder/models"
)

// App owns every long-lived component of a TidyFinder process.
type App struct {
	cfg      config.StructuredConfig
	storages *store.ClientStorages
	services *service.ClientServices
	ui       UI
	out      io.Writer
	logger   *logger.Logger
}

// NewApp opens the storages and wires the services and the terminal UI.
// The caller must Close the returned App.
func NewApp(ctx context.Context, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	executor := shell.WithTimeout(shell.NewExecutor(log), cfg.App.CommandTimeout)

	storages, err := store.NewClientStorages(ctx, cfg, executor, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services := service.NewClientServices(cfg.App, storages, executor, log)

	ui, err := tui.New(services, tui.Options{
		BuildInfo:       buildInfo,
		DefaultTemplate: cfg.Propagation.DefaultTemplate,
		ResetRoot:       resetRoot(),
		HistoryLimit:    cfg.Propagation.HistoryLimit,
	}, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		ui:       ui,
		out:      os.Stdout,
		logger:   log,
	}, nil
}

// Run starts the interactive UI, or runs the headless command taken from the
// command line when there is one.
func (a *App) Run(ctx context.Context) error {
	if len(a.cfg.Command) == 0 {
		a.logger.Info().Msg("starting interactive ui")
		return a.ui.Run(ctx)
	}

	a.logger.Info().Strs("command", a.cfg.Command).Msg("running headless command")
	commander := NewCommander(a.services, a.out, a.cfg.Propagation.HistoryLimit)
	return commander.Execute(ctx, a.cfg.Command)
}

// Close releases the storages.
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}

// resetRoot is the folder swept by "reset all folder views": the user's home
// directory, or the file system root when it cannot be determined.
func resetRoot() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "/"
	}
	return home
}
