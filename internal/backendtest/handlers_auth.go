// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) issue(username string) (string, error) {
	token, err := utils.GenerateJWTToken(s.issuer, username, s.ttl, s.signKey)
	if err != nil {
		return "", err
	}
	return token.SignedString, nil
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteText(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		utils.WriteText(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.users[req.Username]; taken {
		utils.WriteText(w, ErrUsernameTaken.Error(), http.StatusConflict)
		return
	}
	s.users[req.Username] = req.Password
	s.ensureUser(req.Username)

	utils.WriteText(w, "Registration successful", http.StatusCreated)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.WriteText(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	password, ok := s.users[creds.Username]
	if !ok || password != creds.Password {
		log.Info().Str("username", creds.Username).Msg("rejected login")
		utils.WriteText(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		return
	}

	token, err := s.issue(creds.Username)
	if err != nil {
		log.Err(err).Msg("issue token")
		utils.WriteText(w, "Login failed", http.StatusInternalServerError)
		return
	}

	utils.WriteText(w, token, http.StatusOK)
}

func (s *Server) checkUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	s.mu.Lock()
	_, taken := s.users[username]
	s.mu.Unlock()

	utils.WriteJSON(w, !taken && username != "", http.StatusOK)
}

// ── request helpers ─────────────────────────────────────────────────────────

func currentUser(r *http.Request) string {
	username, _ := utils.GetUsernameFromContext(r.Context())
	return username
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
