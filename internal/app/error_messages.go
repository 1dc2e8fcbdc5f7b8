// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the service
// layer, the terminal UI and the syncctl tool.
//
// Keeping them in one place keeps the wording consistent between the toast
// shown by the TUI and the line printed by syncctl.
package app

// Sync progress and outcome notifications.
const (
	// MsgAuthenticatingWithCloud is shown while the cloud token is checked or
	// a new one is requested.
	MsgAuthenticatingWithCloud = "Authenticating with cloud..."

	MsgSyncingToCloud   = "Syncing to cloud..."
	MsgSyncingFromCloud = "Syncing from cloud..."

	// MsgNoCardSetsToSync is shown when a push finds nothing in the local
	// backend.
	MsgNoCardSetsToSync = "No card sets to sync"

	// MsgNoCardSetsInCloud is shown when a pull finds nothing in the cloud.
	MsgNoCardSetsInCloud = "No card sets found in cloud"

	// MsgPushCompleteFormat takes the number of card sets and cards copied.
	MsgPushCompleteFormat = "Successfully synced %d card sets with %d cards to cloud!"

	// MsgPullCompleteFormat takes the number of card sets and cards copied.
	MsgPullCompleteFormat = "Synced %d card sets and %d cards from cloud!"

	// MsgSyncedWithErrorsFormat takes the number of card sets that failed.
	MsgSyncedWithErrorsFormat = "Synced with %d errors"

	MsgSyncToCloudFailed   = "Failed to sync to cloud"
	MsgSyncFromCloudFailed = "Failed to sync from cloud"

	MsgLocalDataCleared     = "Local data cleared"
	MsgClearLocalDataFailed = "Failed to clear local data"

	// MsgInternetRequired is shown when a sync is attempted offline.
	MsgInternetRequired = "Internet connection required for sync"

	// MsgDesktopOnly is shown when a sync feature is used outside the
	// desktop build.
	MsgDesktopOnly = "Sync is only available in the desktop app"
)

// Cloud authentication errors.
const (
	MsgNoStoredUser        = "No user found. Please login first."
	MsgPasswordPromptUnset = "Password callback not set"
	MsgPasswordRequired    = "Password required for cloud sync"
	MsgCloudAuthFailed     = "Failed to authenticate with cloud. Please check your credentials."
	MsgSyncInProgress      = "Sync already in progress"
)

// Session messages.
const (
	MsgLoginFailed          = "Login failed"
	MsgRegistrationFailed   = "Registration failed"
	MsgRegistrationSuccess  = "Registration successful! Please log in."
	MsgLoggedOut            = "Logged out successfully"
	MsgSessionExpired       = "Session expired. Please log in again."
	MsgUsernameNotAvailable = "Username is not available"
)

// Library messages.
const (
	MsgCardSetCreated      = "Card set created successfully!"
	MsgCardSetCreateFailed = "Failed to create card set"
	MsgCardSetUpdated      = "Card set updated successfully!"
	MsgCardSetUpdateFailed = "Failed to update card set"
	MsgCardSetDeleted      = "Card set deleted successfully"
	MsgCardSetDeleteFailed = "Failed to delete card set"
	MsgCardAdded           = "Card added successfully!"
	MsgCardAddFailed       = "Failed to add card"
	MsgCardUpdated         = "Card updated successfully"
	MsgCardUpdateFailed    = "Failed to update card"
	MsgCardDeleted         = "Card deleted successfully"
	MsgCardDeleteFailed    = "Failed to delete card"
	MsgReviewFailed        = "Failed to record review"
	MsgCopiedToClipboard   = "Copied to clipboard"
)
