// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/intellicard-client/models"
)

// Login implements [BackendAdapter]. The backend answers with the raw token
// as the response body. A JSON string or a {"token": "..."} object is also
// accepted.
func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := parseTokenBody(resp.Body())
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

func parseTokenBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	switch text[0] {
	case '"':
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return strings.TrimSpace(s)
		}
	case '{':
		var payload struct {
			Token       string `json:"token"`
			AccessToken string `json:"accessToken"`
		}
		if err := json.Unmarshal([]byte(text), &payload); err == nil {
			if payload.Token != "" {
				return payload.Token
			}
			return payload.AccessToken
		}
	}

	return text
}

// Register implements [BackendAdapter]. A 409 means the username is taken; the
// backend's explanation is available through [BackendMessage].
func (h *httpBackendAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// CheckUsername implements [BackendAdapter].
func (h *httpBackendAdapter) CheckUsername(ctx context.Context, username string) (bool, error) {
	var available bool

	resp, err := h.request(ctx).
		SetQueryParam("username", username).
		Get("/auth/check-username")
	if err != nil {
		return false, fmt.Errorf("check username request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}
	if err = decodeBody(resp, &available); err != nil {
		return false, fmt.Errorf("decode check username response: %w", err)
	}

	return available, nil
}
