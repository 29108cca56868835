// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/models"
)

type settingsLoadedMsg struct {
	settings models.FinderSettings
	err      error
}

type settingsSavedMsg struct {
	relaunched bool
	err        error
}

type resetDoneMsg struct {
	report propagation.ResetReport
	err    error
}

// progressMsg and applyDoneMsg arrive through the channel fed by a running
// propagation.
type progressMsg struct {
	progress propagation.Progress
}

type applyDoneMsg struct {
	report models.PropagationReport
	err    error
}

type profilesLoadedMsg struct {
	items []models.Profile
	err   error
}

type profileChangedMsg struct {
	status string
	err    error
}

type historyLoadedMsg struct {
	runs []models.PropagationRun
	err  error
}

type runLoadedMsg struct {
	run models.PropagationRun
	err error
}

type errMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
