// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/tidy-finder/internal/config"
	"github.com/MKhiriev/tidy-finder/internal/logger"
	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/internal/shell"
	"github.com/MKhiriev/tidy-finder/internal/store"
)

// ClientServices groups every service the user interfaces depend on.
type ClientServices struct {
	Preferences PreferencesService
	Templates   TemplateService
	Profiles    ProfileService
}

// NewClientServices wires the services on top of storages. Shell commands
// issued by the services go through executor.
func NewClientServices(cfg config.App, storages *store.ClientStorages, executor shell.Executor, log *logger.Logger) *ClientServices {
	prefs := NewPreferencesService(storages.Preferences, executor, cfg.FinderDomain, log)
	engine := propagation.NewEngine(propagation.NewCommandHider(executor), log)

	return &ClientServices{
		Preferences: prefs,
		Templates:   NewTemplateService(engine, storages.History, log),
		Profiles:    NewProfileService(storages.Profiles, prefs, log),
	}
}
