// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/intellicard-client/models"
)

// Page names accepted by [NavigateTo].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pageCardSet   = "cardset"
	pageAddCard   = "add-card"
	pageCreateSet = "create-set"
	pageEditSet   = "edit-set"
	pageEditCard  = "edit-card"
	pageStudy     = "study"
	pageSync      = "sync"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// openCardSetMsg selects the card set shown by the detail, add-card and
// study pages.
type openCardSetMsg struct {
	set models.CardSet
}

// editCardMsg opens the card form on an existing card.
type editCardMsg struct {
	set  models.CardSet
	card models.Card
}

// cardSetFetchedMsg carries the current server copy of a card set.
type cardSetFetchedMsg struct {
	set models.CardSet
	err error
}

type loggedInMsg struct {
	user models.User
	err  error
}

type registeredMsg struct {
	username string
	err      error
}

type loggedOutMsg struct{}

// sessionExpiredMsg is sent when the backend rejected the session token.
type sessionExpiredMsg struct{}

type cardSetsLoadedMsg struct {
	sets []models.CardSet
	err  error
}

type cardsLoadedMsg struct {
	cards []models.Card
	err   error
}

type cardSetSavedMsg struct {
	set models.CardSet
	err error
}

type cardSavedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type dueCardsLoadedMsg struct {
	cards    []models.Card
	overview models.StudyOverview
	err      error
}

type reviewedMsg struct {
	err error
}

type overviewLoadedMsg struct {
	overview models.StudyOverview
	err      error
}

// syncStatusMsg carries a sync status snapshot from the refresher.
type syncStatusMsg struct {
	status models.SyncStatus
}

type syncDoneMsg struct {
	push *models.PushResult
	pull *models.PullResult
	err  error
}

type networkMsg struct {
	online bool
}
