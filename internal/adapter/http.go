// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// BackendConfig locates one backend.
type BackendConfig struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api/v1.
	BaseURL string
	// Timeout bounds every request. Zero disables the limit.
	Timeout time.Duration
}

// TokenSource returns the bearer token to attach to the next request. It is
// evaluated per request so that a token stored after construction is picked
// up. A nil source, or an empty token, sends no Authorization header.
type TokenSource func() string

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func() string { return token }
}

// Option customises an adapter built by [NewHTTPBackendAdapter].
type Option func(*httpBackendAdapter)

// WithUnauthorizedHandler registers fn to be called whenever the backend
// answers 401. The session client uses it to drop a stale session.
func WithUnauthorizedHandler(fn func()) Option {
	return func(h *httpBackendAdapter) {
		h.onUnauthorized = fn
	}
}

type httpBackendAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	onUnauthorized func()

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates cfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPBackendAdapter(cfg BackendConfig, tokens TokenSource, log *logger.Logger, opts ...Option) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	h := &httpBackendAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		tokens: tokens,
		logger: log,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBackendAdapter) request(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewCorrelationID()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)

	if h.tokens != nil {
		if token := strings.TrimSpace(h.tokens()); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	return req
}

// check maps a non-2xx response to an error and fires the unauthorized hook
// on 401.
func (h *httpBackendAdapter) check(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if err == nil {
		return nil
	}

	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Msg("backend returned error status")

	if errors.Is(err, ErrUnauthorized) && h.onUnauthorized != nil {
		h.onUnauthorized()
	}
	return err
}

func decodeBody(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(body, v)
}

var errEmptyBody = errors.New("empty response body")
