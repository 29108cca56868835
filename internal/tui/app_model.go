// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/internal/service"
	"github.com/MKhiriev/tidy-finder/models"
)

type screen int

const (
	screenMenu screen = iota
	screenSettings
	screenTemplate
	screenReport
	screenProfiles
	screenHistory
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	opts          Options
	currentScreen screen

	menu     menuModel
	settings settingsModel
	template templateModel
	report   reportModel
	profiles profilesModel
	history  historyModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, opts Options) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		opts:          opts,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		settings:      newSettingsModel(),
		template:      newTemplateModel(opts.DefaultTemplate),
		profiles:      newProfilesModel(),
		history:       newHistoryModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelRun()
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				cmd := m.confirm.onYes
				m.showConfirm = false
				m.confirm = confirmModel{}
				if m.currentScreen == screenSettings {
					m.settings.busy = true
					return m, tea.Batch(m.settings.spinner.Tick, cmd)
				}
				return m, cmd
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
	case errMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case settingsLoadedMsg:
		m.settings.loading = false
		if msg.err != nil {
			m.currentScreen = screenMenu
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.settings.settings = msg.settings
		return m, nil
	case settingsSavedMsg:
		m.settings.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.settings.status = "Settings saved"
		if msg.relaunched {
			m.settings.status = "Settings saved, Finder relaunched"
		}
		return m, cmdClearStatus()
	case resetDoneMsg:
		m.settings.busy = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.settings.status = fmt.Sprintf("Reset %d folder views", msg.report.Removed)
		if n := len(msg.report.Failures); n > 0 {
			m.settings.status += fmt.Sprintf(", %d could not be reset", n)
		}
		return m, cmdClearStatus()
	case progressMsg:
		m.template.done = msg.progress.Done
		m.template.total = msg.progress.Total
		m.template.current = msg.progress.Outcome.FolderName()
		return m, waitForEvent(m.template.events)
	case applyDoneMsg:
		m.finishRun()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.report = reportModel{report: msg.report}
		m.currentScreen = screenReport
		return m, nil
	case profilesLoadedMsg:
		m.profiles.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.profiles.items = msg.items
		if m.profiles.idx >= len(m.profiles.items) {
			m.profiles.idx = len(m.profiles.items) - 1
		}
		if m.profiles.idx < 0 {
			m.profiles.idx = 0
		}
		return m, nil
	case profileChangedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.profiles.status = msg.status
		return m, tea.Batch(m.cmdLoadProfiles(), cmdClearStatus())
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history.runs = msg.runs
		if m.history.idx >= len(m.history.runs) {
			m.history.idx = 0
		}
		return m, nil
	case runLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		run := msg.run
		m.history.detail = &run
		return m, nil
	case copiedMsg:
		m.report.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.settings.status = ""
		m.profiles.status = ""
		m.report.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenTemplate:
		return m.updateTemplate(msg)
	case screenReport:
		return m.updateReport(msg)
	case screenProfiles:
		return m.updateProfiles(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.opts.BuildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View()
	case screenSettings:
		body = m.settings.View()
	case screenTemplate:
		body = m.template.View()
	case screenReport:
		body = m.report.View()
	case screenProfiles:
		body = m.profiles.View()
		if m.profiles.prompt.active() {
			body += "\n\n" + m.profiles.prompt.View()
		}
	case screenHistory:
		body = m.history.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) askConfirm(message string, onYes tea.Cmd) {
	m.showConfirm = true
	m.confirm = confirmModel{message: message, onYes: onYes}
}

// cancelRun stops a running propagation at the next target boundary.
func (m *appModel) cancelRun() {
	if m.template.cancel != nil {
		m.template.cancel()
	}
}

func (m *appModel) finishRun() {
	m.cancelRun()
	m.template.running = false
	m.template.cancel = nil
	m.template.events = nil
	m.template.current = ""
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.open(m.menu.current().target)
	case key.Matches(keyMsg, keys.about):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
		return m, tea.Quit
	}
	return m, nil
}

// open switches to s and starts loading whatever the screen shows.
func (m appModel) open(s screen) (tea.Model, tea.Cmd) {
	m.currentScreen = s

	switch s {
	case screenSettings:
		m.settings.loading = true
		m.settings.status = ""
		return m, tea.Batch(m.settings.spinner.Tick, m.cmdLoadSettings())
	case screenTemplate:
		m.template.setFocus(focusTemplate)
		return m, nil
	case screenProfiles:
		m.profiles.loading = true
		return m, m.cmdLoadProfiles()
	case screenHistory:
		m.history.loading = true
		m.history.detail = nil
		return m, m.cmdLoadHistory()
	}
	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.settings.loading || m.settings.busy {
			var cmd tea.Cmd
			m.settings.spinner, cmd = m.settings.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if m.settings.loading || m.settings.busy {
			if key.Matches(msg, keys.esc) && m.settings.loading {
				m.currentScreen = screenMenu
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenMenu
		case key.Matches(msg, keys.up):
			if m.settings.idx > 0 {
				m.settings.idx--
			}
		case key.Matches(msg, keys.down):
			if m.settings.idx < m.settings.rows()-1 {
				m.settings.idx++
			}
		case key.Matches(msg, keys.left):
			if m.settings.idx == 0 {
				m.settings.cycleStyle(-1)
			}
		case key.Matches(msg, keys.right):
			if m.settings.idx == 0 {
				m.settings.cycleStyle(1)
			}
		case key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
			if m.settings.idx == 0 {
				m.settings.cycleStyle(1)
				return m, nil
			}
			if o, ok := m.settings.option(); ok {
				m.settings.settings.SetOption(o, !m.settings.settings.Option(o))
				return m, nil
			}
			if a, ok := m.settings.action(); ok && key.Matches(msg, keys.enter) {
				return m.runSettingsAction(a)
			}
		}
	}
	return m, nil
}

func (m appModel) runSettingsAction(a settingsAction) (tea.Model, tea.Cmd) {
	settings := m.settings.settings
	root := m.opts.ResetRoot

	switch a {
	case actionSave, actionSaveRelaunch:
		m.settings.busy = true
		m.settings.status = ""
		return m, tea.Batch(m.settings.spinner.Tick, m.cmdSaveSettings(settings, a == actionSaveRelaunch))
	case actionApplyToAll:
		m.askConfirm(fmt.Sprintf("Save these settings and reset the view of every folder under %s?", root), m.cmdApplyToAll(settings, root))
	case actionResetViews:
		m.askConfirm(fmt.Sprintf("Reset the view of every folder under %s?", root), m.cmdResetViews(root))
	}
	return m, nil
}

func (m appModel) updateTemplate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if m.template.running {
		if ok && key.Matches(keyMsg, keys.esc) {
			m.cancelRun()
			m.template.current = "Canceling..."
		}
		return m, nil
	}

	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.run):
			return m.startApply()
		case key.Matches(keyMsg, keys.tab):
			m.template.syncTemplate()
			m.template.setFocus((m.template.focus + 1) % templateFocusCount)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.template.syncTemplate()
			m.template.setFocus((m.template.focus - 1 + templateFocusCount) % templateFocusCount)
			return m, nil
		}

		switch m.template.focus {
		case focusTemplate:
			if key.Matches(keyMsg, keys.enter) {
				m.template.syncTemplate()
				m.template.setFocus(focusTarget)
				return m, nil
			}
		case focusTarget:
			if key.Matches(keyMsg, keys.enter) {
				m.template.status = m.template.addTarget()
				return m, nil
			}
		case focusTargetList:
			switch {
			case key.Matches(keyMsg, keys.up):
				if m.template.idx > 0 {
					m.template.idx--
				}
			case key.Matches(keyMsg, keys.down):
				if m.template.idx < m.template.targets.Len()-1 {
					m.template.idx++
				}
			case key.Matches(keyMsg, keys.remove):
				m.template.removeSelected()
			case key.Matches(keyMsg, keys.clear):
				m.template.targets.Clear()
				m.template.idx = 0
			}
			return m, nil
		}
	}

	if m.template.focus >= len(m.template.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.template.inputs[m.template.focus], cmd = m.template.inputs[m.template.focus].Update(msg)
	return m, cmd
}

// startApply launches the propagation on its own goroutine. Progress and the
// final report come back through template.events, one message per receive.
func (m appModel) startApply() (tea.Model, tea.Cmd) {
	m.template.syncTemplate()
	template := m.template.template()
	targets := m.template.targets.Paths()

	ctx, cancel := context.WithCancel(m.ctx)
	events := make(chan tea.Msg, len(targets)+1)

	m.template.running = true
	m.template.done = 0
	m.template.total = len(targets)
	m.template.status = ""
	m.template.events = events
	m.template.cancel = cancel

	svc := m.services.Templates
	return m, func() tea.Msg {
		go func() {
			defer close(events)
			report, err := svc.Apply(ctx, template, targets, func(p propagation.Progress) {
				events <- progressMsg{progress: p}
			})
			events <- applyDoneMsg{report: report, err: err}
		}()
		return <-events
	}
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (m appModel) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTemplate
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(reportText(m.report.report))
	}
	return m, nil
}

func (m appModel) updateProfiles(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.profiles.prompt.active() {
		return m.updateProfilePrompt(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	p, selected := m.profiles.current()
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.profiles.idx > 0 {
			m.profiles.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.profiles.idx < len(m.profiles.items)-1 {
			m.profiles.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.profiles.prompt = newPrompt(promptCreate, "Save the current Finder settings as", "")
	case key.Matches(keyMsg, keys.imports):
		m.profiles.prompt = newPrompt(promptImport, "Import profile from file", "")
	case !selected:
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m, m.cmdApplyProfile(p.ID)
	case key.Matches(keyMsg, keys.rename):
		m.profiles.prompt = newPrompt(promptRename, "Rename profile", p.Name)
	case key.Matches(keyMsg, keys.delete):
		m.askConfirm(fmt.Sprintf("Delete profile %q?", p.Name), m.cmdDeleteProfile(p))
	case key.Matches(keyMsg, keys.exports):
		m.profiles.prompt = newPrompt(promptExport, "Export profile to file (.json or .yaml)", "~/"+p.Name+".json")
	}
	return m, nil
}

func (m appModel) updateProfilePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.profiles.prompt = promptModel{}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			kind := m.profiles.prompt.kind
			value := m.profiles.prompt.input.Value()
			m.profiles.prompt = promptModel{}
			return m, m.submitProfilePrompt(kind, value)
		}
	}

	var cmd tea.Cmd
	m.profiles.prompt.input, cmd = m.profiles.prompt.input.Update(msg)
	return m, cmd
}

func (m appModel) submitProfilePrompt(kind promptKind, value string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Profiles
	p, selected := m.profiles.current()

	switch kind {
	case promptCreate:
		return func() tea.Msg {
			created, err := svc.CaptureCurrent(ctx, value)
			return profileChangedMsg{status: "Saved profile " + created.Name, err: err}
		}
	case promptImport:
		path := expandPath(value)
		return func() tea.Msg {
			imported, err := svc.Import(ctx, path)
			return profileChangedMsg{status: "Imported profile " + imported.Name, err: err}
		}
	case promptRename:
		if !selected {
			return nil
		}
		return func() tea.Msg {
			renamed, err := svc.Rename(ctx, p.ID, value)
			return profileChangedMsg{status: "Renamed to " + renamed.Name, err: err}
		}
	case promptExport:
		if !selected {
			return nil
		}
		path := expandPath(value)
		return func() tea.Msg {
			err := svc.Export(ctx, p.ID, path)
			return profileChangedMsg{status: "Exported to " + filepath.Base(path), err: err}
		}
	}
	return nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.history.detail != nil {
		if key.Matches(keyMsg, keys.esc) {
			m.history.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.history.idx > 0 {
			m.history.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.history.idx < len(m.history.runs)-1 {
			m.history.idx++
		}
	case key.Matches(keyMsg, keys.reload):
		m.history.loading = true
		return m, m.cmdLoadHistory()
	case key.Matches(keyMsg, keys.enter):
		if run, ok := m.history.current(); ok {
			return m, m.cmdLoadRun(run.ID)
		}
	}
	return m, nil
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	prefs := m.services.Preferences
	return func() tea.Msg {
		settings, err := prefs.CurrentSettings(ctx)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdSaveSettings(settings models.FinderSettings, relaunch bool) tea.Cmd {
	ctx := m.ctx
	prefs := m.services.Preferences
	return func() tea.Msg {
		if err := prefs.ApplySettings(ctx, settings); err != nil {
			return settingsSavedMsg{err: err}
		}
		if relaunch {
			if err := prefs.RelaunchFinder(ctx); err != nil {
				return settingsSavedMsg{err: err}
			}
		}
		return settingsSavedMsg{relaunched: relaunch}
	}
}

func (m appModel) cmdApplyToAll(settings models.FinderSettings, root string) tea.Cmd {
	ctx := m.ctx
	prefs := m.services.Preferences
	return func() tea.Msg {
		report, err := prefs.ApplyToAllFolders(ctx, settings, root)
		return resetDoneMsg{report: report, err: err}
	}
}

func (m appModel) cmdResetViews(root string) tea.Cmd {
	ctx := m.ctx
	prefs := m.services.Preferences
	return func() tea.Msg {
		report, err := prefs.ResetAllViews(ctx, root)
		return resetDoneMsg{report: report, err: err}
	}
}

func (m appModel) cmdLoadProfiles() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Profiles
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return profilesLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdApplyProfile(id uuid.UUID) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Profiles
	return func() tea.Msg {
		p, err := svc.Apply(ctx, id)
		return profileChangedMsg{status: "Applied profile " + p.Name, err: err}
	}
}

func (m appModel) cmdDeleteProfile(p models.Profile) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Profiles
	return func() tea.Msg {
		err := svc.Delete(ctx, p.ID)
		return profileChangedMsg{status: "Deleted profile " + p.Name, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Templates
	limit := m.opts.HistoryLimit
	return func() tea.Msg {
		runs, err := svc.History(ctx, limit)
		return historyLoadedMsg{runs: runs, err: err}
	}
}

func (m appModel) cmdLoadRun(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Templates
	return func() tea.Msg {
		run, err := svc.Run(ctx, id)
		return runLoadedMsg{run: run, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(strings.TrimRight(text, "\n")); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
