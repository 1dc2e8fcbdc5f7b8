// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusRequestEntityTooLarge, ErrPayloadTooLarge},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		err := mapHTTPError(respond(t, tt.status, "boom"))
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
		assert.Contains(t, err.Error(), "boom")
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, mapHTTPError(respond(t, http.StatusOK, "")))
	assert.NoError(t, mapHTTPError(respond(t, http.StatusCreated, "Registration successful")))
}

func TestMapHTTPError_Unmapped(t *testing.T) {
	err := mapHTTPError(respond(t, http.StatusTeapot, ""))

	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusTeapot, respErr.StatusCode)
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"", ""},
		{"  Invalid credentials \n", "Invalid credentials"},
		{`{"message":"Card set not found"}`, "Card set not found"},
		{`{"error":"Bad Request","status":400}`, "Bad Request"},
		{`"quoted"`, "quoted"},
		{`{"other":1}`, `{"other":1}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractMessage([]byte(tt.body)))
	}
}

func TestBackendMessage_Fallback(t *testing.T) {
	assert.Equal(t, "Login failed", BackendMessage(errors.New("dial tcp: refused"), "Login failed"))
	assert.Equal(t, "Login failed", BackendMessage(&ResponseError{StatusCode: 500, kind: ErrInternalServerError}, "Login failed"))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&ResponseError{kind: ErrUnauthorized}))
	assert.True(t, IsAuthError(&ResponseError{kind: ErrForbidden}))
	assert.False(t, IsAuthError(&ResponseError{kind: ErrNotFound}))
	assert.False(t, IsAuthError(errors.New("other")))
}
