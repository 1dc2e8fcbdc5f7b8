// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is a snapshot of the local-to-cloud sync state. It is derived on
// every request and never persisted.
type SyncStatus struct {
	// HasCloudToken reports whether a cloud bearer token is stored.
	HasCloudToken bool `json:"hasCloudToken"`

	// LastSync is the completion time of the last push or pull, nil if none.
	LastSync *time.Time `json:"lastSync,omitempty"`

	// TotalCardSets is the number of card sets on the local backend.
	TotalCardSets int `json:"totalCardSets"`

	// TotalCards is the sum of card counts across the local card sets.
	TotalCards int `json:"totalCards"`
}

// PushResult summarises a local-to-cloud sync run.
type PushResult struct {
	Success      bool `json:"success"`
	CardSets     int  `json:"cardSets"`
	SuccessCount int  `json:"successCount"`
	ErrorCount   int  `json:"errorCount"`
}

// PullResult summarises a cloud-to-local sync run.
type PullResult struct {
	Success         bool `json:"success"`
	CardSetsUpdated int  `json:"cardSetsUpdated"`
	CardsUpdated    int  `json:"cardsUpdated"`
	ErrorCount      int  `json:"errorCount"`
}
