// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	search  key.Binding
	logout  key.Binding
	newItem key.Binding
	sync    key.Binding
	study   key.Binding
	refresh key.Binding
	delete  key.Binding
	copy    key.Binding
	add     key.Binding
	access  key.Binding
	push    key.Binding
	pull    key.Binding
	clear   key.Binding
	unlink  key.Binding
	unlock  key.Binding
	edit    key.Binding
	editSet key.Binding
	yes     key.Binding
	no      key.Binding
	space   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	search:  key.NewBinding(key.WithKeys("/")),
	logout:  key.NewBinding(key.WithKeys("L")),
	newItem: key.NewBinding(key.WithKeys("n")),
	sync:    key.NewBinding(key.WithKeys("s")),
	study:   key.NewBinding(key.WithKeys("t")),
	refresh: key.NewBinding(key.WithKeys("r")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	add:     key.NewBinding(key.WithKeys("a")),
	access:  key.NewBinding(key.WithKeys("A")),
	push:    key.NewBinding(key.WithKeys("p")),
	pull:    key.NewBinding(key.WithKeys("f")),
	clear:   key.NewBinding(key.WithKeys("C")),
	unlink:  key.NewBinding(key.WithKeys("x")),
	unlock:  key.NewBinding(key.WithKeys("R")),
	edit:    key.NewBinding(key.WithKeys("e")),
	editSet: key.NewBinding(key.WithKeys("E")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
	space:   key.NewBinding(key.WithKeys(" ")),
}
