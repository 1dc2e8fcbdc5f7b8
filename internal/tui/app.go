// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/intellicard-client/internal/environment"
	"github.com/MKhiriev/intellicard-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the toasts and the password modal
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	toasts   toastsModel
	password *passwordModal

	buildInfo     models.AppBuildInfo
	runtime       environment.Runtime
	unavailable   func() []models.UnavailableFeature
	showBuildInfo bool

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, rt environment.Runtime, unavailable func() []models.UnavailableFeature) RootModel {
	return RootModel{
		pages:       pages,
		current:     startPage,
		buildInfo:   buildInfo,
		runtime:     rt,
		unavailable: unavailable,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			if r.password != nil {
				r.password.Cancel()
				r.password = nil
			}
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.password != nil {
			done, cmd := r.password.Update(key)
			if done {
				r.password = nil
			}
			return r, cmd
		}

		switch key.String() {
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case passwordRequestMsg:
		if r.password != nil {
			r.password.Cancel()
		}
		r.password = newPasswordModal(msg)
		return r, nil

	case toastMsg:
		return r, r.toasts.push(msg)
	case dismissToastMsg:
		r.toasts.dismiss(msg.key)
		return r, nil
	case expireToastMsg:
		r.toasts.expire(msg.id)
		return r, nil

	case NavigateTo:
		return r, r.navigate(msg)

	case sessionExpiredMsg, loggedOutMsg:
		return r, r.navigate(NavigateTo{Page: pageMenu})

	case syncStatusMsg, networkMsg, syncDoneMsg, syncActionDoneMsg:
		// the sync panel keeps its state fresh while hidden
		return r, r.updatePage(pageSync, msg)
	}

	return r, r.updatePage(r.current, msg)
}

func (r *RootModel) navigate(nav NavigateTo) tea.Cmd {
	next, exists := r.pages[nav.Page]
	if !exists {
		return nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	if nav.Payload != nil {
		payload := nav.Payload
		return func() tea.Msg { return payload }
	}
	return next.Init()
}

func (r *RootModel) updatePage(name string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[name]
	if !ok {
		return nil
	}

	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return cmd
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) View() string {
	if r.password != nil {
		return r.password.View()
	}

	var view string
	switch {
	case r.showBuildInfo:
		var unavailable []models.UnavailableFeature
		if r.unavailable != nil {
			unavailable = r.unavailable()
		}
		view = renderBuildInfoWindow(r.buildInfo, r.runtime, unavailable)
	case r.page() == nil:
		view = renderPage("INTELLICARD", "", "")
	default:
		view = r.page().View()
	}

	if toasts := r.toasts.View(); toasts != "" {
		view += "\n\n" + toasts
	}
	return view
}
