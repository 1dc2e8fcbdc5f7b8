// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/intellicard-client/models"
)

func cardSetPath(id int64) string {
	return "/cardsets/" + strconv.FormatInt(id, 10)
}

// ListCardSets implements [BackendAdapter]. The cloud probe in the sync
// service relies on this call failing with [ErrUnauthorized] or
// [ErrForbidden] when the bearer token is no longer accepted.
func (h *httpBackendAdapter) ListCardSets(ctx context.Context) ([]models.CardSet, error) {
	resp, err := h.request(ctx).Get("/cardsets")
	if err != nil {
		return nil, fmt.Errorf("list card sets request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}

	var sets []models.CardSet
	if err = decodeBody(resp, &sets); err != nil {
		return nil, fmt.Errorf("decode card sets response: %w", err)
	}
	return sets, nil
}

// GetCardSet implements [BackendAdapter].
func (h *httpBackendAdapter) GetCardSet(ctx context.Context, id int64) (models.CardSet, error) {
	resp, err := h.request(ctx).Get(cardSetPath(id))
	if err != nil {
		return models.CardSet{}, fmt.Errorf("get card set request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.CardSet{}, err
	}

	var set models.CardSet
	if err = decodeBody(resp, &set); err != nil {
		return models.CardSet{}, fmt.Errorf("decode card set response: %w", err)
	}
	return set, nil
}

// CreateCardSet implements [BackendAdapter].
func (h *httpBackendAdapter) CreateCardSet(ctx context.Context, in models.CardSetInput) (models.CardSet, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Post("/cardsets")
	if err != nil {
		return models.CardSet{}, fmt.Errorf("create card set request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.CardSet{}, err
	}

	var set models.CardSet
	if err = decodeBody(resp, &set); err != nil {
		return models.CardSet{}, fmt.Errorf("decode created card set: %w", err)
	}
	return set, nil
}

// UpdateCardSet implements [BackendAdapter].
func (h *httpBackendAdapter) UpdateCardSet(ctx context.Context, id int64, in models.CardSetInput) (models.CardSet, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Put(cardSetPath(id))
	if err != nil {
		return models.CardSet{}, fmt.Errorf("update card set request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.CardSet{}, err
	}

	var set models.CardSet
	if err = decodeBody(resp, &set); err != nil {
		return models.CardSet{}, fmt.Errorf("decode updated card set: %w", err)
	}
	return set, nil
}

// DeleteCardSet implements [BackendAdapter].
func (h *httpBackendAdapter) DeleteCardSet(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(cardSetPath(id))
	if err != nil {
		return fmt.Errorf("delete card set request: %w", err)
	}

	return h.check(resp)
}
