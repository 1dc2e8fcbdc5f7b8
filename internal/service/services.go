// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Services groups the services consumed by the user interfaces.
type Services struct {
	Sync    SyncService
	Session SessionService
	Library LibraryService
}
