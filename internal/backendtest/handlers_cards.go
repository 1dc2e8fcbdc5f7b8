// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
)

func (s *Server) injectedCardFailure(w http.ResponseWriter, cardSetID int64) bool {
	if status := s.failCardSets[cardSetID]; status != 0 {
		writeMessage(w, http.StatusText(status), status)
		return true
	}
	return false
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.visibleSet(w, r)
	if rec == nil || s.injectedCardFailure(w, rec.ID) {
		return
	}

	utils.WriteJSON(w, s.cardsOf(rec.ID), http.StatusOK)
}

func (s *Server) createCard(w http.ResponseWriter, r *http.Request) {
	var in models.CardInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Term == "" || in.Definition == "" {
		writeMessage(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ownedSet(w, r)
	if rec == nil || s.injectedCardFailure(w, rec.ID) {
		return
	}
	if status := s.failTerms[in.Term]; status != 0 {
		writeMessage(w, http.StatusText(status), status)
		return
	}

	card := s.insertCard(rec.ID, in)
	utils.WriteJSON(w, card.Card, http.StatusCreated)
}

// ownedCard resolves the {id} card and checks that the caller owns its set.
func (s *Server) ownedCard(w http.ResponseWriter, r *http.Request) *cardRecord {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return nil
	}
	card, ok := s.cards[id]
	if !ok {
		writeMessage(w, ErrCardNotFound.Error(), http.StatusNotFound)
		return nil
	}
	if set := s.sets[card.CardSetID]; set == nil || set.Owner != currentUser(r) {
		writeMessage(w, ErrAccessDenied.Error(), http.StatusForbidden)
		return nil
	}
	return card
}

func (s *Server) updateCard(w http.ResponseWriter, r *http.Request) {
	var in models.CardInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Term == "" || in.Definition == "" {
		writeMessage(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.ownedCard(w, r)
	if card == nil {
		return
	}
	card.Term = in.Term
	card.Definition = in.Definition

	utils.WriteJSON(w, card.Card, http.StatusOK)
}

func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.ownedCard(w, r)
	if card == nil {
		return
	}
	delete(s.cards, card.ID)

	w.WriteHeader(http.StatusNoContent)
}
