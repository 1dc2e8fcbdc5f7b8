// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"github.com/MKhiriev/intellicard-client/models"
)

// Reasons reported for unavailable features.
const (
	ReasonWebOnly         = "Web version only"
	ReasonDesktopOnly     = "Desktop version only"
	ReasonRequiresNetwork = "Requires internet connection"
	ReasonNotAvailable    = "Not available"
)

// Flags returns the feature switches for the given context.
func Flags(desktop, online bool) models.FeatureFlags {
	return models.FeatureFlags{
		models.FeatureAIGeneration: online,
		models.FeatureGoogleDrive:  online,

		models.FeatureOfflineMode:  desktop,
		models.FeatureLocalBackend: desktop,
		models.FeatureManualSync:   desktop,

		models.FeatureDesktopNotifications: desktop,
		models.FeatureAutoUpdater:          desktop,
		models.FeatureFileSystemAccess:     desktop,

		models.FeatureManualCardCreation: true,
		models.FeatureStudyMode:          true,
		models.FeatureCardSets:           true,
		models.FeatureUserAuth:           true,
	}
}

type featureDescription struct {
	feature          models.Feature
	name             string
	requiresInternet bool
	webOnly          bool
	desktopOnly      bool
}

var describedFeatures = []featureDescription{
	{feature: models.FeatureAIGeneration, name: "AI Card Generation", requiresInternet: true, webOnly: true},
	{feature: models.FeatureGoogleDrive, name: "Google Drive Integration", requiresInternet: true, webOnly: true},
	{feature: models.FeatureOfflineMode, name: "Offline Study", desktopOnly: true},
	{feature: models.FeatureLocalBackend, name: "Local Storage", desktopOnly: true},
	{feature: models.FeatureManualSync, name: "Cloud Sync", desktopOnly: true},
	{feature: models.FeatureDesktopNotifications, name: "Desktop Notifications", desktopOnly: true},
}

// UnavailableFeatures lists the described features that are switched off,
// each with the reason shown to the user.
func UnavailableFeatures(desktop, online bool) []models.UnavailableFeature {
	flags := Flags(desktop, online)

	var unavailable []models.UnavailableFeature
	for _, d := range describedFeatures {
		if flags.Enabled(d.feature) {
			continue
		}

		reason := ReasonNotAvailable
		switch {
		case d.webOnly && desktop:
			reason = ReasonWebOnly
		case d.desktopOnly && !desktop:
			reason = ReasonDesktopOnly
		case d.requiresInternet && !online:
			reason = ReasonRequiresNetwork
		}

		unavailable = append(unavailable, models.UnavailableFeature{
			Feature:     d.feature,
			Description: d.name,
			Reason:      reason,
		})
	}

	return unavailable
}
