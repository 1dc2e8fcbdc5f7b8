// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpBackendAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string, token string, opts ...Option) *httpBackendAdapter {
	t.Helper()

	a, err := NewHTTPBackendAdapter(BackendConfig{BaseURL: serverURL}, StaticToken(token), logger.Nop(), opts...)
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPBackendAdapter(BackendConfig{BaseURL: "   "}, nil, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"localhost:8080/api/v1", "http://localhost:8080/api/v1"},
		{"https://cloud.example.com/api/v1/", "https://cloud.example.com/api/v1"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

// ── Headers ─────────────────────────────────────────────────────────────────

func TestRequest_BearerAndRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cloud-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		writeJSON(t, w, http.StatusOK, []models.CardSet{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "cloud-token").ListCardSets(context.Background())
	require.NoError(t, err)
}

func TestRequest_NoTokenNoAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.CardSet{})
	}))
	defer srv.Close()

	a, err := NewHTTPBackendAdapter(BackendConfig{BaseURL: srv.URL}, nil, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListCardSets(context.Background())
	require.NoError(t, err)
}

func TestRequest_TokenSourceEvaluatedPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.CardSet{})
	}))
	defer srv.Close()

	token := ""
	a, err := NewHTTPBackendAdapter(BackendConfig{BaseURL: srv.URL}, func() string { return token }, logger.Nop())
	require.NoError(t, err)

	_, _ = a.ListCardSets(context.Background())
	token = "later"
	_, _ = a.ListCardSets(context.Background())

	assert.Equal(t, []string{"", "Bearer later"}, seen)
}

func TestRequest_RequestIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sync-42", r.Header.Get(RequestIDHeader))
		writeJSON(t, w, http.StatusOK, []models.CardSet{})
	}))
	defer srv.Close()

	ctx := utils.WithRequestID(context.Background(), "sync-42")
	_, err := newTestAdapter(t, srv.URL, "").ListCardSets(ctx)
	require.NoError(t, err)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestLogin_RawTokenBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username)
		assert.Equal(t, "secret", creds.Password)

		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("raw-token-value"))
	}))
	defer srv.Close()

	token, err := newTestAdapter(t, srv.URL, "").Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "raw-token-value", token)
}

func TestLogin_JSONBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json string", `"tok"`},
		{"token object", `{"token":"tok"}`},
		{"access token object", `{"accessToken":"tok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			token, err := newTestAdapter(t, srv.URL, "").Login(context.Background(), models.Credentials{})
			require.NoError(t, err)
			assert.Equal(t, "tok", token)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Invalid credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "", WithUnauthorizedHandler(func() { called = true }))
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", BackendMessage(err, "Login failed"))
	assert.False(t, called, "login failure must not be treated as an expired session")
}

func TestLogin_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("Username already exists"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "").Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username already exists", BackendMessage(err, "Registration failed"))
}

func TestRegister_DoesNotSendConfirmPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "ConfirmPassword")
		assert.Equal(t, "Alice A", body["fullName"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Registration successful"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "").Register(context.Background(), models.RegisterRequest{
		FullName: "Alice A", Username: "alice", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
}

func TestCheckUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/check-username", r.URL.Path)
		writeJSON(t, w, http.StatusOK, r.URL.Query().Get("username") == "free")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")

	available, err := a.CheckUsername(context.Background(), "free")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = a.CheckUsername(context.Background(), "taken")
	require.NoError(t, err)
	assert.False(t, available)
}

// ── Card sets ───────────────────────────────────────────────────────────────

func TestListCardSets_Success(t *testing.T) {
	sets := []models.CardSet{
		{ID: 1, Name: "Spanish", IsPublic: true, AccessType: models.AccessOwner, TotalCards: 2},
		{ID: 2, Name: "German", AccessType: models.AccessAccessible},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cardsets", r.URL.Path)
		writeJSON(t, w, http.StatusOK, sets)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "t").ListCardSets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sets, got)
}

func TestListCardSets_AuthErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestAdapter(t, srv.URL, "stale").ListCardSets(context.Background())
		srv.Close()

		require.Error(t, err)
		assert.True(t, IsAuthError(err), "status %d", status)
	}
}

func TestListCardSets_UnauthorizedHandler(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "stale", WithUnauthorizedHandler(func() { calls++ }))
	_, err := a.ListCardSets(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

func TestCreateCardSet_SendsWritableFieldsOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cardsets", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body, 3)
		assert.Equal(t, "Spanish", body["name"])
		assert.Equal(t, true, body["isPublic"])

		writeJSON(t, w, http.StatusCreated, models.CardSet{ID: 77, Name: "Spanish", IsPublic: true})
	}))
	defer srv.Close()

	set, err := newTestAdapter(t, srv.URL, "t").CreateCardSet(context.Background(),
		models.CardSetInput{Name: "Spanish", Description: "verbs", IsPublic: true})

	require.NoError(t, err)
	assert.Equal(t, int64(77), set.ID)
}

func TestGetUpdateDeleteCardSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cardsets/5", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, models.CardSet{ID: 5, Name: "Old"})
		case http.MethodPut:
			writeJSON(t, w, http.StatusOK, models.CardSet{ID: 5, Name: "New"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	ctx := context.Background()

	got, err := a.GetCardSet(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Old", got.Name)

	got, err = a.UpdateCardSet(ctx, 5, models.CardSetInput{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)

	require.NoError(t, a.DeleteCardSet(ctx, 5))
}

func TestGetCardSet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Card set not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "t").GetCardSet(context.Background(), 9)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Card set not found", BackendMessage(err, "x"))
}

// ── Cards ───────────────────────────────────────────────────────────────────

func TestListCards_DecodesLocalDateTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/cardset/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"term":"hola","definition":"hello","timesReviewed":2,"timesCorrect":1,"nextReviewDate":"2026-03-01T10:15:30","status":"LEARNING"},{"id":2,"term":"adiós","definition":"bye","nextReviewDate":null,"status":"NEW"}]`))
	}))
	defer srv.Close()

	cards, err := newTestAdapter(t, srv.URL, "t").ListCards(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.NotNil(t, cards[0].NextReviewDate)
	assert.Equal(t, 10, cards[0].NextReviewDate.Hour())
	assert.Nil(t, cards[1].NextReviewDate)
	assert.Equal(t, models.CardStatusNew, cards[1].Status)
}

func TestCreateCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cards/cardset/3", r.URL.Path)

		var in models.CardInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(t, w, http.StatusCreated, models.Card{ID: 10, Term: in.Term, Definition: in.Definition})
	}))
	defer srv.Close()

	card, err := newTestAdapter(t, srv.URL, "t").CreateCard(context.Background(), 3, models.CardInput{Term: "hola", Definition: "hello"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), card.ID)
	assert.Equal(t, "hola", card.Term)
}

func TestUpdateDeleteCard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cards/10", r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(t, w, http.StatusOK, models.Card{ID: 10, Term: "new"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")

	card, err := a.UpdateCard(context.Background(), 10, models.CardInput{Term: "new", Definition: "d"})
	require.NoError(t, err)
	assert.Equal(t, "new", card.Term)

	require.NoError(t, a.DeleteCard(context.Background(), 10))
}

func TestCreateCard_PayloadTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "t").CreateCard(context.Background(), 1, models.CardInput{})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

// ── Study ───────────────────────────────────────────────────────────────────

func TestStudyEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/study/cardset/4/due":
			writeJSON(t, w, http.StatusOK, []models.Card{{ID: 1, Term: "a"}})
		case "/study/cardset/4/overview":
			writeJSON(t, w, http.StatusOK, models.StudyOverview{CardSetID: 4, TotalCards: 3, DueCards: 1})
		case "/study/card/1/review":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "true", r.URL.Query().Get("correct"))
			assert.Equal(t, "2", r.URL.Query().Get("difficulty"))
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	ctx := context.Background()

	due, err := a.DueCards(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, due, 1)

	overview, err := a.StudyOverview(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, overview.TotalCards)

	require.NoError(t, a.ReviewCard(ctx, models.Review{CardID: 1, Correct: true, Difficulty: 2}))
}

// ── Access requests ─────────────────────────────────────────────────────────

func TestAccessRequestEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/cardsets/8/access-requests":
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Access request sent"})
		case r.Method == http.MethodGet && r.URL.Path == "/cardsets/8/access-requests":
			writeJSON(t, w, http.StatusOK, []models.AccessRequest{{ID: 3, CardSetID: 8, RequesterUsername: "bob", Status: models.AccessRequestPending}})
		case r.Method == http.MethodPut && r.URL.Path == "/cardsets/8/access-requests/3":
			assert.Equal(t, "false", r.URL.Query().Get("approve"))
			_, _ = w.Write([]byte("Access request rejected"))
		case r.Method == http.MethodDelete && r.URL.Path == "/cardsets/8/access-requests/revoke":
			writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Access revoked"})
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "t")
	ctx := context.Background()

	msg, err := a.RequestAccess(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "Access request sent", msg.Message)

	pending, err := a.PendingAccessRequests(ctx, 8)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "bob", pending[0].RequesterUsername)

	msg, err = a.RespondAccessRequest(ctx, 8, 3, false)
	require.NoError(t, err)
	assert.Equal(t, "Access request rejected", msg.Message)

	msg, err = a.RevokeAccess(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "Access revoked", msg.Message)
}

// ── Factory ─────────────────────────────────────────────────────────────────

func TestFactory_CloudNotConfigured(t *testing.T) {
	f := NewFactory(BackendConfig{BaseURL: "http://localhost:8080"}, BackendConfig{}, logger.Nop())

	_, err := f.Cloud("tok")
	assert.ErrorIs(t, err, ErrCloudNotConfigured)

	local, err := f.Local(nil)
	require.NoError(t, err)
	assert.NotNil(t, local)
}

func TestFactory_CloudCarriesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer cloud-1", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.CardSet{})
	}))
	defer srv.Close()

	f := NewFactory(BackendConfig{BaseURL: "http://localhost:1"}, BackendConfig{BaseURL: srv.URL}, logger.Nop())
	cloud, err := f.Cloud("cloud-1")
	require.NoError(t, err)

	_, err = cloud.ListCardSets(context.Background())
	require.NoError(t, err)
}
