// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/intellicard-client/models"
)

func accessRequestsPath(cardSetID int64) string {
	return cardSetPath(cardSetID) + "/access-requests"
}

// RequestAccess implements [BackendAdapter].
func (h *httpBackendAdapter) RequestAccess(ctx context.Context, cardSetID int64) (models.MessageResponse, error) {
	resp, err := h.request(ctx).Post(accessRequestsPath(cardSetID))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("request access request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return decodeMessage(resp.Body()), nil
}

// PendingAccessRequests implements [BackendAdapter].
func (h *httpBackendAdapter) PendingAccessRequests(ctx context.Context, cardSetID int64) ([]models.AccessRequest, error) {
	resp, err := h.request(ctx).Get(accessRequestsPath(cardSetID))
	if err != nil {
		return nil, fmt.Errorf("pending access requests request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return nil, err
	}

	var requests []models.AccessRequest
	if err = decodeBody(resp, &requests); err != nil {
		return nil, fmt.Errorf("decode access requests: %w", err)
	}
	return requests, nil
}

// RespondAccessRequest implements [BackendAdapter].
func (h *httpBackendAdapter) RespondAccessRequest(ctx context.Context, cardSetID, requestID int64, approve bool) (models.MessageResponse, error) {
	resp, err := h.request(ctx).
		SetQueryParam("approve", strconv.FormatBool(approve)).
		Put(accessRequestsPath(cardSetID) + "/" + strconv.FormatInt(requestID, 10))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("respond access request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return decodeMessage(resp.Body()), nil
}

// RevokeAccess implements [BackendAdapter].
func (h *httpBackendAdapter) RevokeAccess(ctx context.Context, cardSetID int64) (models.MessageResponse, error) {
	resp, err := h.request(ctx).Delete(accessRequestsPath(cardSetID) + "/revoke")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("revoke access request: %w", err)
	}
	if err = h.check(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return decodeMessage(resp.Body()), nil
}

// decodeMessage accepts a {"message": ...} object or plain text.
func decodeMessage(body []byte) models.MessageResponse {
	return models.MessageResponse{Message: extractMessage(body)}
}
