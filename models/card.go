// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CardStatus is the learning state the backend assigns to a card.
type CardStatus string

const (
	CardStatusNew      CardStatus = "NEW"
	CardStatusLearning CardStatus = "LEARNING"
	CardStatusMastered CardStatus = "MASTERED"
)

// Card is a single flashcard. A card always belongs to exactly one card set;
// the owning set is given by the URL path on creation, not by a body field.
type Card struct {
	ID             int64      `json:"id,omitempty"`
	Term           string     `json:"term"`
	Definition     string     `json:"definition"`
	TimesReviewed  int        `json:"timesReviewed,omitempty"`
	TimesCorrect   int        `json:"timesCorrect,omitempty"`
	NextReviewDate *Timestamp `json:"nextReviewDate,omitempty"`
	Status         CardStatus `json:"status,omitempty"`
}

// CardInput is the writable subset of [Card]. The 255-character limit is a
// form-level contract; the sync path copies values as they are.
type CardInput struct {
	Term       string `json:"term" validate:"required,max=255"`
	Definition string `json:"definition" validate:"required,max=255"`
}

// Input returns the writable part of the card.
func (c Card) Input() CardInput {
	return CardInput{Term: c.Term, Definition: c.Definition}
}
