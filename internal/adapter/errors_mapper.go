// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(resp.StatusCode(), extractMessage(resp.Body()))
}

// NewResponseError builds the error for a non-2xx answer with the given
// status code and backend message.
func NewResponseError(statusCode int, message string) *ResponseError {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Message:    message,
	}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusConflict:
		respErr.kind = ErrConflict
	case http.StatusRequestEntityTooLarge:
		respErr.kind = ErrPayloadTooLarge
	case http.StatusBadGateway:
		respErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		if respErr.Message == "" {
			respErr.Message = http.StatusText(statusCode)
		}
	}

	return respErr
}

// extractMessage returns the "message" (or "error") field of a JSON error
// body, the string of a JSON string body, or the trimmed body text.
func extractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	switch text[0] {
	case '{':
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal([]byte(text), &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	case '"':
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return s
		}
	}

	return text
}
