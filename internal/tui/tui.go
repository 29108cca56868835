// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of TidyFinder on
// top of bubbletea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/service"
	"github.com/MKhiriev/tidy-finder/models"
)

// Options configures what the interface shows on start.
type Options struct {
	BuildInfo models.AppBuildInfo

	// DefaultTemplate prefills the template folder field.
	DefaultTemplate string

	// ResetRoot is the folder whose subtree "reset all folder views" and
	// "apply to all folders" sweep.
	ResetRoot string

	// HistoryLimit caps the number of runs listed on the history screen.
	HistoryLimit int
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, opts: opts, logger: log}, nil
}

// Run shows the interface and blocks until the user quits or ctx is done.
// A propagation still running on exit is canceled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.opts)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	result.cancelRun()

	t.logger.Debug().Msg("interface closed")
	return nil
}
