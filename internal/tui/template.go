// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/tidy-finder/models"
)

const (
	focusTemplate = iota
	focusTarget
	focusTargetList
	templateFocusCount
)

// templateModel collects a template folder and its targets and tracks a
// running propagation.
type templateModel struct {
	inputs  []textinput.Model
	focus   int
	targets *models.TargetSet
	idx     int
	status  string

	running bool
	done    int
	total   int
	bar     progress.Model
	events  <-chan tea.Msg
	cancel  context.CancelFunc
	current string
}

func newTemplateModel(defaultTemplate string) templateModel {
	tpl := textinput.New()
	tpl.Placeholder = "/path/to/template folder"
	tpl.Prompt = "Template: "
	tpl.SetValue(defaultTemplate)
	tpl.Focus()

	target := textinput.New()
	target.Placeholder = "/path/to/folder (enter to add)"
	target.Prompt = "Add target: "

	return templateModel{
		inputs:  []textinput.Model{tpl, target},
		targets: models.NewTargetSet(expandPath(defaultTemplate)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m templateModel) template() string {
	return expandPath(m.inputs[focusTemplate].Value())
}

func (m *templateModel) setFocus(focus int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if focus < len(m.inputs) {
		m.inputs[focus].Focus()
	}
}

// syncTemplate keeps the target set's excluded folder in step with the
// template input.
func (m *templateModel) syncTemplate() {
	m.targets.SetTemplate(m.template())
	m.clampIdx()
}

// addTarget adds the target input's value to the set. It reports a status
// message for the user.
func (m *templateModel) addTarget() string {
	path := expandPath(m.inputs[focusTarget].Value())
	if path == "" {
		return ""
	}
	m.syncTemplate()
	m.inputs[focusTarget].SetValue("")
	if m.targets.Add(path) == 0 {
		return "Folder already added or is the template"
	}
	return "Added " + filepath.Base(path)
}

func (m *templateModel) removeSelected() {
	paths := m.targets.Paths()
	if m.idx < 0 || m.idx >= len(paths) {
		return
	}
	m.targets.Remove(paths[m.idx])
	m.clampIdx()
}

func (m *templateModel) clampIdx() {
	if m.idx >= m.targets.Len() {
		m.idx = m.targets.Len() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m templateModel) View() string {
	var b strings.Builder

	b.WriteString(m.inputs[focusTemplate].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[focusTarget].View())
	b.WriteString("\n\n")

	header := fmt.Sprintf("Targets (%d)", m.targets.Len())
	if m.focus == focusTargetList {
		header = selectedStyle.Render(header)
	}
	b.WriteString(header + "\n")

	paths := m.targets.Paths()
	if len(paths) == 0 {
		b.WriteString(helpStyle.Render("  no folders added") + "\n")
	}
	for i, p := range paths {
		sel := m.focus == focusTargetList && i == m.idx
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor(sel), filepath.Base(p), helpStyle.Render(fitText(filepath.Dir(p), 40))))
	}

	if m.status != "" && !m.running {
		b.WriteString("\n" + helpStyle.Render(m.status) + "\n")
	}

	if m.running {
		percent := 0.0
		if m.total > 0 {
			percent = float64(m.done) / float64(m.total)
		}
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(percent))
		b.WriteString(fmt.Sprintf("  %d/%d", m.done, m.total))
		if m.current != "" {
			b.WriteString("\n" + helpStyle.Render(m.current))
		}
	}

	hotKeys := "tab: next field  enter: add  d: remove  x: clear  ctrl+r: apply  esc: back"
	if m.running {
		hotKeys = "esc: cancel"
	}
	return renderPage("COPY FOLDER VIEW", b.String(), hotKeys)
}

// reportModel shows the outcome of the last propagation.
type reportModel struct {
	report models.PropagationReport
	idx    int
	status string
}

func (m reportModel) View() string {
	var b strings.Builder

	summary := fmt.Sprintf("Copied to %d of %d folders", m.report.CopiedCount(), m.report.Total())
	if m.report.Succeeded() {
		b.WriteString(okStyle.Render(summary))
	} else {
		b.WriteString(errorStyle.Render(summary))
	}
	b.WriteString("\n" + helpStyle.Render("Template: "+m.report.Template) + "\n\n")

	for _, o := range m.report.Outcomes {
		if o.Copied() {
			b.WriteString(okStyle.Render("✓ ") + o.FolderName() + "\n")
			continue
		}
		b.WriteString(errorStyle.Render("✗ ") + o.FolderName() + ": " + o.Reason() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("RESULT", b.String(), "c: copy report  esc: back")
}

// reportText renders the report as plain text for the clipboard.
func reportText(r models.PropagationReport) string {
	var b strings.Builder
	b.WriteString("Template: " + r.Template + "\n")
	b.WriteString(r.Summary() + "\n")
	for _, o := range r.Outcomes {
		status := "copied"
		if !o.Copied() {
			status = "failed: " + o.Reason()
		}
		b.WriteString(fmt.Sprintf("- %s (%s)\n", o.Target, status))
	}
	return b.String()
}

// expandPath trims path and resolves a leading "~".
func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
