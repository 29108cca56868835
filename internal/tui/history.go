// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/tidy-finder/models"
)

type historyModel struct {
	runs    []models.PropagationRun
	idx     int
	loading bool
	detail  *models.PropagationRun
}

func newHistoryModel() historyModel {
	return historyModel{loading: true}
}

func (m historyModel) current() (models.PropagationRun, bool) {
	if len(m.runs) == 0 || m.idx < 0 || m.idx >= len(m.runs) {
		return models.PropagationRun{}, false
	}
	return m.runs[m.idx], true
}

func (m historyModel) View() string {
	if m.detail != nil {
		return renderRunDetail(*m.detail)
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.runs) == 0:
		b.WriteString("No folder views copied yet.\n")
	default:
		for i, r := range m.runs {
			line := fmt.Sprintf("%s%s  %-20s %d/%d", cursor(i == m.idx), r.StartedAt.Local().Format("2006-01-02 15:04"), fitText(filepath.Base(r.Template), 20), r.Copied, r.Total)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	return renderPage("HISTORY", b.String(), "enter: details  ctrl+l: reload  esc: back")
}

func renderRunDetail(r models.PropagationRun) string {
	var b strings.Builder

	b.WriteString("Template: " + r.Template + "\n")
	b.WriteString(fmt.Sprintf("Started:  %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Took:     %s\n", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond)))
	b.WriteString(fmt.Sprintf("Copied %d of %d, %d failed\n\n", r.Copied, r.Total, r.Failed))

	for _, o := range r.Outcomes {
		if o.Status == models.OutcomeCopied {
			b.WriteString(okStyle.Render("✓ ") + o.Target + "\n")
			continue
		}
		b.WriteString(errorStyle.Render("✗ ") + o.Target + ": " + o.Reason + "\n")
	}

	return renderPage(fmt.Sprintf("RUN #%d", r.ID), b.String(), "esc: back")
}
