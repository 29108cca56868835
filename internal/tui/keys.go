// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	toggle  key.Binding
	quit    key.Binding
	about   key.Binding
	run     key.Binding
	remove  key.Binding
	clear   key.Binding
	copy    key.Binding
	newItem key.Binding
	rename  key.Binding
	delete  key.Binding
	imports key.Binding
	exports key.Binding
	reload  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	toggle:  key.NewBinding(key.WithKeys(" ")),
	quit:    key.NewBinding(key.WithKeys("q")),
	about:   key.NewBinding(key.WithKeys("v")),
	run:     key.NewBinding(key.WithKeys("ctrl+r")),
	remove:  key.NewBinding(key.WithKeys("d", "delete")),
	clear:   key.NewBinding(key.WithKeys("x")),
	copy:    key.NewBinding(key.WithKeys("c")),
	newItem: key.NewBinding(key.WithKeys("n")),
	rename:  key.NewBinding(key.WithKeys("r")),
	delete:  key.NewBinding(key.WithKeys("d")),
	imports: key.NewBinding(key.WithKeys("i")),
	exports: key.NewBinding(key.WithKeys("e")),
	reload:  key.NewBinding(key.WithKeys("ctrl+l")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
