// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessType describes how the current user reaches a card set.
type AccessType string

const (
	// AccessOwner marks card sets created by the current user.
	AccessOwner AccessType = "OWNER"
	// AccessAccessible marks private card sets shared with the current user
	// through an approved access request.
	AccessAccessible AccessType = "ACCESSIBLE"
	// AccessPublic marks public card sets owned by someone else.
	AccessPublic AccessType = "PUBLIC"
)

// CardSet is a named collection of flashcards as returned by the backend
// /cardsets endpoints.
//
// The identifier belongs to the id-space of the backend that produced the
// record. A card set copied to another backend gets a new ID there; no
// mapping between the two is kept.
type CardSet struct {
	// ID is assigned by the backend that created the record.
	ID int64 `json:"id,omitempty"`

	// Name is the display name of the set.
	Name string `json:"name"`

	// Description is an optional free-text description.
	Description string `json:"description,omitempty"`

	// IsPublic makes the set visible to every user of the backend.
	IsPublic bool `json:"isPublic"`

	// CreatorID is the backend user id of the owner. Read-only.
	CreatorID int64 `json:"creatorId,omitempty"`

	// CreatorName is the username of the owner. Read-only.
	CreatorName string `json:"creatorName,omitempty"`

	// AccessType tells how the requesting user reaches the set. Read-only.
	AccessType AccessType `json:"accessType,omitempty"`

	// TotalCards is the number of cards in the set. Read-only.
	TotalCards int `json:"totalCards,omitempty"`
}

// CardSetInput is the writable subset of [CardSet] sent on create and update.
// Only these fields are copied between backends during a sync.
type CardSetInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1000"`
	IsPublic    bool   `json:"isPublic"`
}

// Input returns the writable part of the card set.
func (c CardSet) Input() CardSetInput {
	return CardSetInput{
		Name:        c.Name,
		Description: c.Description,
		IsPublic:    c.IsPublic,
	}
}

// CardSetFilter narrows a card-set listing by how the user reaches a set.
type CardSetFilter string

const (
	FilterAll    CardSetFilter = "all"
	FilterOwned  CardSetFilter = "owned"
	FilterShared CardSetFilter = "shared"
	FilterPublic CardSetFilter = "public"
)

// Matches reports whether set passes the filter. Unknown filters match
// every set.
func (f CardSetFilter) Matches(set CardSet) bool {
	switch f {
	case FilterOwned:
		return set.AccessType == AccessOwner
	case FilterShared:
		return set.AccessType == AccessAccessible
	case FilterPublic:
		return set.AccessType == AccessPublic
	default:
		return true
	}
}
