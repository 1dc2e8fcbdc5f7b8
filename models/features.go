// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Feature names a capability that may be switched on or off depending on the
// execution environment.
type Feature string

const (
	FeatureAIGeneration         Feature = "aiGeneration"
	FeatureGoogleDrive          Feature = "googleDrive"
	FeatureOfflineMode          Feature = "offlineMode"
	FeatureLocalBackend         Feature = "localBackend"
	FeatureDesktopNotifications Feature = "desktopNotifications"
	FeatureAutoUpdater          Feature = "autoUpdater"
	FeatureFileSystemAccess     Feature = "fileSystemAccess"
	FeatureManualCardCreation   Feature = "manualCardCreation"
	FeatureStudyMode            Feature = "studyMode"
	FeatureCardSets             Feature = "cardSets"
	FeatureUserAuth             Feature = "userAuth"
	FeatureManualSync           Feature = "manualSync"
)

// FeatureFlags maps each feature to whether it is available right now.
type FeatureFlags map[Feature]bool

// Enabled reports whether f is switched on. Unknown features are off.
func (f FeatureFlags) Enabled(feature Feature) bool {
	return f[feature]
}

// UnavailableFeature describes a switched-off feature for display.
type UnavailableFeature struct {
	Feature     Feature
	Description string
	Reason      string
}
