// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// sender is the part of *tea.Program the bridges use.
type sender interface {
	Send(msg tea.Msg)
}

// programRef holds the running program once it exists.
type programRef struct {
	mu      sync.RWMutex
	program sender
}

func (r *programRef) Attach(p sender) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

func (r *programRef) get() sender {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.program
}

// send delivers msg to the program. It reports false when no program is
// attached.
func (r *programRef) send(msg tea.Msg) bool {
	p := r.get()
	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

type toastKind int

const (
	toastLoading toastKind = iota
	toastSuccess
	toastError
)

type toastMsg struct {
	kind toastKind
	key  string
	text string
}

type dismissToastMsg struct {
	key string
}

// Notifier shows service notifications as toasts in the running program.
// Notifications sent before Attach are only logged. Methods must not be
// called from inside Update, since Send waits for the event loop.
type Notifier struct {
	programRef
	logger *logger.Logger
}

func NewNotifier(log *logger.Logger) *Notifier {
	return &Notifier{logger: log.Component("notifier")}
}

func (n *Notifier) Loading(key, message string) {
	n.deliver(toastMsg{kind: toastLoading, key: key, text: message})
}

func (n *Notifier) Dismiss(key string) {
	n.deliver(dismissToastMsg{key: key})
}

func (n *Notifier) Success(message string) {
	n.deliver(toastMsg{kind: toastSuccess, text: message})
}

func (n *Notifier) Error(message string) {
	n.deliver(toastMsg{kind: toastError, text: message})
}

func (n *Notifier) deliver(msg tea.Msg) {
	if !n.send(msg) {
		n.logger.Debug().Interface("notification", msg).Msg("no program attached, notification dropped")
	}
}
