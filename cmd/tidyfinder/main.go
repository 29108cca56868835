// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/tidy-finder/internal/client"
	"github.com/MKhiriev/tidy-finder/internal/config"
	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, "tidyfinder:", err)
		return 2
	}

	log := logger.NewClientLogger("tidyfinder", cfg.Log.File, cfg.Log.Level)
	log.Info().Str("build", buildInfo.String()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, *cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		fmt.Fprintln(os.Stderr, "tidyfinder:", err)
		return 1
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close storages")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("run error")
		fmt.Fprintln(os.Stderr, "tidyfinder:", err)
		return 1
	}
	return 0
}
