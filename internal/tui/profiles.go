// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/tidy-finder/models"
)

type profilesModel struct {
	items   []models.Profile
	idx     int
	loading bool
	status  string
	prompt  promptModel
}

func newProfilesModel() profilesModel {
	return profilesModel{loading: true}
}

func (m profilesModel) current() (models.Profile, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Profile{}, false
	}
	return m.items[m.idx], true
}

func (m profilesModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No profiles yet. Press n to save the current Finder settings.\n")
	default:
		for i, p := range m.items {
			line := fmt.Sprintf("%s%-24s %-8s %s", cursor(i == m.idx), fitText(p.Name, 24), p.ViewStyle.DisplayName(), p.CreatedDate.Local().Format("2006-01-02 15:04"))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
		if p, ok := m.current(); ok {
			enabled := p.Settings().EnabledOptions()
			if len(enabled) == 0 {
				enabled = []string{"none"}
			}
			b.WriteString("\n" + helpStyle.Render("Enabled: "+strings.Join(enabled, ", ")) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + okStyle.Render(m.status))
	}

	return renderPage("PROFILES", b.String(), "enter: apply  n: new from current  r: rename  d: delete  i: import  e: export  esc: back")
}
