// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastTTL = 4 * time.Second

type toast struct {
	id   int
	kind toastKind
	key  string
	text string
}

type expireToastMsg struct {
	id int
}

// toastsModel is the stack of visible notifications. Loading toasts stay
// until dismissed; a loading toast replaces an earlier one with the same
// key.
type toastsModel struct {
	items  []toast
	nextID int
}

func (t *toastsModel) push(msg toastMsg) tea.Cmd {
	t.nextID++
	item := toast{id: t.nextID, kind: msg.kind, key: msg.key, text: msg.text}

	if msg.kind == toastLoading && msg.key != "" {
		for i := range t.items {
			if t.items[i].kind == toastLoading && t.items[i].key == msg.key {
				t.items[i] = item
				return nil
			}
		}
		t.items = append(t.items, item)
		return nil
	}

	t.items = append(t.items, item)
	id := item.id
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return expireToastMsg{id: id} })
}

func (t *toastsModel) dismiss(key string) {
	out := t.items[:0]
	for _, item := range t.items {
		if item.kind == toastLoading && item.key == key {
			continue
		}
		out = append(out, item)
	}
	t.items = out
}

func (t *toastsModel) expire(id int) {
	out := t.items[:0]
	for _, item := range t.items {
		if item.id != id {
			out = append(out, item)
		}
	}
	t.items = out
}

func (t toastsModel) View() string {
	if len(t.items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(t.items))
	for _, item := range t.items {
		switch item.kind {
		case toastLoading:
			lines = append(lines, loadingStyle.Render("… "+item.text))
		case toastSuccess:
			lines = append(lines, successStyle.Render("✓ "+item.text))
		default:
			lines = append(lines, errorStyle.Render("✗ "+item.text))
		}
	}
	return strings.Join(lines, "\n")
}
