// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StudyOverview summarises the learning state of a card set.
type StudyOverview struct {
	CardSetID     int64  `json:"cardSetId"`
	CardSetName   string `json:"cardSetName"`
	TotalCards    int    `json:"totalCards"`
	DueCards      int    `json:"dueCards"`
	MasteredCards int    `json:"masteredCards"`
	LearningCards int    `json:"learningCards"`
}

// Review difficulty bounds accepted by the study endpoint (1 = easy, 5 = hard).
const (
	MinReviewDifficulty = 1
	MaxReviewDifficulty = 5

	DefaultReviewDifficulty = 3
)

// Review is a single answer given during a study session.
type Review struct {
	CardID     int64 `validate:"required"`
	Correct    bool
	Difficulty int `validate:"min=1,max=5"`
}
