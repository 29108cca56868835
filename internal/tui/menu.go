// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

type menuItem struct {
	title  string
	target screen
}

type menuModel struct {
	items []menuItem
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{
		items: []menuItem{
			{title: "Finder settings", target: screenSettings},
			{title: "Copy folder view to other folders", target: screenTemplate},
			{title: "Profiles", target: screenProfiles},
			{title: "History", target: screenHistory},
		},
	}
}

func (m menuModel) current() menuItem {
	return m.items[m.idx]
}

func (m menuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		line := cursor(i == m.idx) + item.title
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return renderPage("TIDYFINDER", strings.TrimRight(b.String(), "\n"), "↑/↓: choose  enter: open  v: about  q: quit")
}
