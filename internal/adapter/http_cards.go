// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/intellicard-client/models"
)

func cardsOfSetPath(cardSetID int64) string {
	return "/cards/cardset/" + strconv.FormatInt(cardSetID, 10)
}

func cardPath(id int64) string {
	return "/cards/" + strconv.FormatInt(id, 10)
}

// ListCards implements [BackendAdapter].
func (h *httpBackendAdapter) ListCards(ctx context.Context, cardSetID int64) ([]models.Card, error) {
	resp, err := h.request(ctx).Get(cardsOfSetPath(cardSetID))
	if err != nil {
		return nil, fmt.Errorf("list cards request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}

	var cards []models.Card
	if err = decodeBody(resp, &cards); err != nil {
		return nil, fmt.Errorf("decode cards response: %w", err)
	}
	return cards, nil
}

// CreateCard implements [BackendAdapter].
func (h *httpBackendAdapter) CreateCard(ctx context.Context, cardSetID int64, in models.CardInput) (models.Card, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Post(cardsOfSetPath(cardSetID))
	if err != nil {
		return models.Card{}, fmt.Errorf("create card request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.Card{}, err
	}

	var card models.Card
	if err = decodeBody(resp, &card); err != nil {
		return models.Card{}, fmt.Errorf("decode created card: %w", err)
	}
	return card, nil
}

// UpdateCard implements [BackendAdapter].
func (h *httpBackendAdapter) UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error) {
	resp, err := h.request(ctx).
		SetBody(in).
		Put(cardPath(id))
	if err != nil {
		return models.Card{}, fmt.Errorf("update card request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.Card{}, err
	}

	var card models.Card
	if err = decodeBody(resp, &card); err != nil {
		return models.Card{}, fmt.Errorf("decode updated card: %w", err)
	}
	return card, nil
}

// DeleteCard implements [BackendAdapter].
func (h *httpBackendAdapter) DeleteCard(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(cardPath(id))
	if err != nil {
		return fmt.Errorf("delete card request: %w", err)
	}

	return h.check(resp)
}
