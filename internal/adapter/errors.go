// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrEmptyToken is returned by Login when the backend answers 2xx with
	// an empty body.
	ErrEmptyToken = errors.New("backend returned an empty token")
)

// ResponseError is a non-2xx answer from a backend. It unwraps to the
// sentinel matching its status code, if any.
type ResponseError struct {
	StatusCode int
	// Message is the backend's explanation: the "message" field of a JSON
	// body or the plain-text body.
	Message string

	kind error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return "http " + strconv.Itoa(e.StatusCode) + ": " + e.Message
	}
	if e.Message == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// IsAuthError reports whether err is a 401 or 403 answer.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// BackendMessage returns the backend-provided explanation carried by err, or
// fallback when err is not a backend answer or the answer had no body.
func BackendMessage(err error, fallback string) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) && strings.TrimSpace(respErr.Message) != "" {
		return respErr.Message
	}
	return fallback
}
