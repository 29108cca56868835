// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptCreate
	promptRename
	promptImport
	promptExport
)

// promptModel is a single-line input shown over the profiles screen.
type promptModel struct {
	kind  promptKind
	title string
	input textinput.Model
}

func newPrompt(kind promptKind, title, value string) promptModel {
	in := textinput.New()
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return promptModel{kind: kind, title: title, input: in}
}

func (m promptModel) active() bool {
	return m.kind != promptNone
}

func (m promptModel) View() string {
	return overlayBoxStyle.Render(m.title + "\n\n" + m.input.View() + "\n\nenter confirm    esc cancel")
}
