// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
)

func (s *Server) requestAccess(w http.ResponseWriter, r *http.Request) {
	username := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}
	rec, ok := s.sets[id]
	if !ok {
		writeMessage(w, ErrCardSetNotFound.Error(), http.StatusNotFound)
		return
	}
	if rec.Owner == username {
		writeMessage(w, "You already own this card set", http.StatusBadRequest)
		return
	}
	for _, req := range s.requests {
		if req.CardSetID == id && req.RequesterUsername == username && req.Status != models.AccessRequestRejected {
			writeMessage(w, "Access request already exists", http.StatusConflict)
			return
		}
	}

	req := &accessRecord{
		AccessRequest: models.AccessRequest{
			ID:                s.id(),
			CardSetID:         id,
			CardSetName:       rec.Name,
			RequesterID:       s.userIDs[username],
			RequesterUsername: username,
			Status:            models.AccessRequestPending,
		},
		Owner: rec.Owner,
	}
	s.requests[req.ID] = req

	writeMessage(w, "Access request sent", http.StatusOK)
}

func (s *Server) pendingAccessRequests(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ownedSet(w, r)
	if rec == nil {
		return
	}

	out := []models.AccessRequest{}
	for _, req := range s.requests {
		if req.CardSetID == rec.ID && req.Status == models.AccessRequestPending {
			out = append(out, req.AccessRequest)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) respondAccessRequest(w http.ResponseWriter, r *http.Request) {
	approve, err := strconv.ParseBool(r.URL.Query().Get("approve"))
	if err != nil {
		writeMessage(w, "approve must be true or false", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ownedSet(w, r)
	if rec == nil {
		return
	}
	requestID, ok := pathID(r, "requestId")
	if !ok {
		writeMessage(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}
	req, ok := s.requests[requestID]
	if !ok || req.CardSetID != rec.ID {
		writeMessage(w, ErrAccessRequestNotFound.Error(), http.StatusNotFound)
		return
	}

	if approve {
		req.Status = models.AccessRequestApproved
		writeMessage(w, "Access request approved", http.StatusOK)
		return
	}
	req.Status = models.AccessRequestRejected
	writeMessage(w, "Access request rejected", http.StatusOK)
}

func (s *Server) revokeAccess(w http.ResponseWriter, r *http.Request) {
	username := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}

	revoked := false
	for reqID, req := range s.requests {
		if req.CardSetID == id && req.RequesterUsername == username && req.Status == models.AccessRequestApproved {
			delete(s.requests, reqID)
			revoked = true
		}
	}
	if !revoked {
		writeMessage(w, "No access to revoke", http.StatusNotFound)
		return
	}

	writeMessage(w, "Access revoked", http.StatusOK)
}
