// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/tidy-finder/models"
)

type settingsAction int

const (
	actionSave settingsAction = iota
	actionSaveRelaunch
	actionApplyToAll
	actionResetViews
)

var settingsActions = []struct {
	action settingsAction
	title  string
}{
	{actionSave, "Save"},
	{actionSaveRelaunch, "Save and relaunch Finder"},
	{actionApplyToAll, "Apply to all folders"},
	{actionResetViews, "Reset all folder views"},
}

// settingsModel edits a copy of the Finder settings. Rows are the view style,
// then one row per option, then the actions.
type settingsModel struct {
	settings models.FinderSettings
	idx      int
	loading  bool
	busy     bool
	spinner  spinner.Model
	status   string
}

func newSettingsModel() settingsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return settingsModel{spinner: s, loading: true}
}

func (m settingsModel) rows() int {
	return 1 + len(models.AllFinderOptions()) + len(settingsActions)
}

// option returns the option under the cursor, if any.
func (m settingsModel) option() (models.FinderOption, bool) {
	i := m.idx - 1
	options := models.AllFinderOptions()
	if i < 0 || i >= len(options) {
		return "", false
	}
	return options[i], true
}

// action returns the action under the cursor, if any.
func (m settingsModel) action() (settingsAction, bool) {
	i := m.idx - 1 - len(models.AllFinderOptions())
	if i < 0 || i >= len(settingsActions) {
		return 0, false
	}
	return settingsActions[i].action, true
}

// cycleStyle moves the view style by step, wrapping around. An unset style
// starts from List.
func (m *settingsModel) cycleStyle(step int) {
	styles := models.AllViewStyles()
	i := slices.Index(styles, m.settings.ViewStyle)
	if i < 0 {
		m.settings.ViewStyle = models.ViewStyleList
		return
	}
	i = (i + step + len(styles)) % len(styles)
	m.settings.ViewStyle = styles[i]
}

func (m settingsModel) View() string {
	if m.loading {
		return renderPage("FINDER SETTINGS", m.spinner.View()+" Reading Finder preferences...", "esc: back")
	}

	var b strings.Builder
	row := 0

	style := "not set"
	if m.settings.ViewStyle.Valid() {
		style = m.settings.ViewStyle.DisplayName()
	}
	b.WriteString(fmt.Sprintf("%sDefault view:  ‹ %s ›\n\n", cursor(m.idx == row), style))
	row++

	for _, o := range models.AllFinderOptions() {
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor(m.idx == row), checkbox(m.settings.Option(o)), o.DisplayName()))
		row++
	}
	b.WriteString("\n")

	for _, a := range settingsActions {
		line := cursor(m.idx == row) + a.title
		if m.idx == row {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
		row++
	}

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " Working...")
	} else if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status))
	}

	return renderPage("FINDER SETTINGS", b.String(), "↑/↓: move  ←/→: view style  space: toggle  enter: select  esc: back")
}
