// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/intellicard-client/models"
)

// DueCards implements [BackendAdapter].
func (h *httpBackendAdapter) DueCards(ctx context.Context, cardSetID int64) ([]models.Card, error) {
	resp, err := h.request(ctx).Get("/study/cardset/" + strconv.FormatInt(cardSetID, 10) + "/due")
	if err != nil {
		return nil, fmt.Errorf("due cards request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}

	var cards []models.Card
	if err = decodeBody(resp, &cards); err != nil {
		return nil, fmt.Errorf("decode due cards: %w", err)
	}
	return cards, nil
}

// StudyOverview implements [BackendAdapter].
func (h *httpBackendAdapter) StudyOverview(ctx context.Context, cardSetID int64) (models.StudyOverview, error) {
	resp, err := h.request(ctx).Get("/study/cardset/" + strconv.FormatInt(cardSetID, 10) + "/overview")
	if err != nil {
		return models.StudyOverview{}, fmt.Errorf("study overview request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.StudyOverview{}, err
	}

	var overview models.StudyOverview
	if err = decodeBody(resp, &overview); err != nil {
		return models.StudyOverview{}, fmt.Errorf("decode study overview: %w", err)
	}
	return overview, nil
}

// ReviewCard implements [BackendAdapter]. The outcome travels as query
// parameters; the response has no body.
func (h *httpBackendAdapter) ReviewCard(ctx context.Context, review models.Review) error {
	resp, err := h.request(ctx).
		SetQueryParam("correct", strconv.FormatBool(review.Correct)).
		SetQueryParam("difficulty", strconv.Itoa(review.Difficulty)).
		Post("/study/card/" + strconv.FormatInt(review.CardID, 10) + "/review")
	if err != nil {
		return fmt.Errorf("review card request: %w", err)
	}

	return h.check(resp)
}
