// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
)

func (s *Server) listCardSets(w http.ResponseWriter, r *http.Request) {
	username := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failList != 0 {
		writeMessage(w, http.StatusText(s.failList), s.failList)
		return
	}

	out := []models.CardSet{}
	for _, rec := range s.sortedSets() {
		if s.accessTypeFor(rec, username) != "" {
			out = append(out, s.viewCardSet(rec, username))
		}
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) createCardSet(w http.ResponseWriter, r *http.Request) {
	var in models.CardSetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeMessage(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if status := s.failSetNames[in.Name]; status != 0 {
		writeMessage(w, http.StatusText(status), status)
		return
	}

	rec := s.insertCardSet(currentUser(r), in)
	utils.WriteJSON(w, s.viewCardSet(rec, rec.Owner), http.StatusCreated)
}

// visibleSet resolves the {id} card set and checks that the caller may read
// it. It writes the error response itself and returns nil on failure.
func (s *Server) visibleSet(w http.ResponseWriter, r *http.Request) *cardSetRecord {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return nil
	}
	rec, ok := s.sets[id]
	if !ok {
		writeMessage(w, ErrCardSetNotFound.Error(), http.StatusNotFound)
		return nil
	}
	if s.accessTypeFor(rec, currentUser(r)) == "" {
		writeMessage(w, ErrAccessDenied.Error(), http.StatusForbidden)
		return nil
	}
	return rec
}

// ownedSet is visibleSet restricted to the owner.
func (s *Server) ownedSet(w http.ResponseWriter, r *http.Request) *cardSetRecord {
	rec := s.visibleSet(w, r)
	if rec == nil {
		return nil
	}
	if rec.Owner != currentUser(r) {
		writeMessage(w, ErrAccessDenied.Error(), http.StatusForbidden)
		return nil
	}
	return rec
}

func (s *Server) getCardSet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.visibleSet(w, r); rec != nil {
		utils.WriteJSON(w, s.viewCardSet(rec, currentUser(r)), http.StatusOK)
	}
}

func (s *Server) updateCardSet(w http.ResponseWriter, r *http.Request) {
	var in models.CardSetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeMessage(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ownedSet(w, r)
	if rec == nil {
		return
	}
	rec.Name = in.Name
	rec.Description = in.Description
	rec.IsPublic = in.IsPublic

	utils.WriteJSON(w, s.viewCardSet(rec, rec.Owner), http.StatusOK)
}

func (s *Server) deleteCardSet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ownedSet(w, r)
	if rec == nil {
		return
	}

	for id, card := range s.cards {
		if card.CardSetID == rec.ID {
			delete(s.cards, id)
		}
	}
	for id, req := range s.requests {
		if req.CardSetID == rec.ID {
			delete(s.requests, id)
		}
	}
	delete(s.sets, rec.ID)

	w.WriteHeader(http.StatusNoContent)
}
